package light

// Light is a single point light source. The renderer mirrors it into a
// GPULight uniform every frame; the position typically tracks the scene's
// designated light node.
type Light struct {
	// Position is the world-space position of the light.
	Position [3]float32

	// Color is the RGB emission color.
	Color [3]float32
}

// New creates a white light at the given position.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - *Light: the new light
func New(x, y, z float32) *Light {
	return &Light{
		Position: [3]float32{x, y, z},
		Color:    [3]float32{1, 1, 1},
	}
}

// GPU returns the GPU-aligned mirror of the light's current state.
//
// Returns:
//   - GPULight: the uniform payload for this light
func (l *Light) GPU() GPULight {
	return GPULight{
		Position: l.Position,
		Color:    l.Color,
	}
}
