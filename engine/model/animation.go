package model

// KeyframeKind identifies which node property an animation clip drives.
type KeyframeKind int

const (
	// KeyframeTranslation animates the node's position.
	KeyframeTranslation KeyframeKind = iota

	// KeyframeOther marks channels the renderer does not apply (rotation,
	// scale, morph weights). Clips of this kind are sampled but ignored.
	KeyframeOther
)

// AnimationClip holds one channel of keyframe data. Timestamps are in
// seconds, sorted ascending, and parallel to Translations when Kind is
// KeyframeTranslation.
type AnimationClip struct {
	// Name is the clip identifier.
	Name string

	// Kind identifies the animated property.
	Kind KeyframeKind

	// Translations are the per-keyframe positions for KeyframeTranslation
	// clips. Empty otherwise.
	Translations [][3]float32

	// Timestamps are the keyframe times in seconds, sorted ascending.
	Timestamps []float32
}

// Sampler resolves a playback time to a keyframe index within a clip. It
// keeps a cursor between calls so sampling stays O(1) per frame while time
// advances; a backward jump in time resets the cursor and scans forward
// from the start.
type Sampler struct {
	cursor   int
	lastTime float32
}

// FrameIndex returns the index of the keyframe active at time t.
//
// The index starts at 0 for times before the first timestamp, advances past
// each timestamp at or before t, and clamps to the last keyframe for times at
// or beyond the final timestamp.
//
// Parameters:
//   - clip: the clip to sample
//   - t: the playback time in seconds
//
// Returns:
//   - int: the active keyframe index, 0 when the clip has no timestamps
func (s *Sampler) FrameIndex(clip *AnimationClip, t float32) int {
	n := len(clip.Timestamps)
	if n == 0 {
		return 0
	}

	if t < s.lastTime {
		s.cursor = 0
	}
	s.lastTime = t

	if s.cursor > n-1 {
		s.cursor = n - 1
	}
	for s.cursor < n-1 && clip.Timestamps[s.cursor] <= t {
		s.cursor++
	}
	return s.cursor
}

// Reset rewinds the sampler to the start of the clip.
func (s *Sampler) Reset() {
	s.cursor = 0
	s.lastTime = 0
}
