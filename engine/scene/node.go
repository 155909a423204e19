package scene

import (
	"github.com/tern3d/tern/engine/model"
)

// Node is a renderable scene entity pairing a model asset with instance
// transforms and per-frame uniform state. Nodes are created at scene setup
// and live for the whole session; only their locals change frame to frame.
//
// The scene graph is flat: nodes carry no parent reference and no transform
// composition happens between them.
type Node struct {
	// Name is the node identifier (for debugging).
	Name string

	// Locals is the per-node uniform block, mutated every update.
	Locals GPULocals

	// Model is the mesh/material/animation asset this node draws.
	Model *model.Model

	// Instances are the world-space copies of the model to render.
	Instances []Instance

	// samplers track playback state per animation clip, parallel to
	// Model.Animations. Grown lazily on first update.
	samplers []model.Sampler
}

// NewNode creates a node drawing the given model at the given instances.
//
// Parameters:
//   - name: the node identifier
//   - m: the model asset
//   - instances: the instance transforms, at least one
//
// Returns:
//   - *Node: the new node
func NewNode(name string, m *model.Model, instances []Instance) *Node {
	return &Node{
		Name:      name,
		Model:     m,
		Instances: instances,
		Locals: GPULocals{
			Color: [4]float32{1, 1, 1, 1},
		},
	}
}

// InstanceCount returns the number of instances this node renders.
func (n *Node) InstanceCount() uint32 {
	return uint32(len(n.Instances))
}

// animate samples every translation clip on the node's model at time t and
// writes the active keyframe into Locals.Position. Non-translation clips
// are skipped.
func (n *Node) animate(t float32) {
	if n.Model == nil {
		return
	}
	clips := n.Model.Animations
	for len(n.samplers) < len(clips) {
		n.samplers = append(n.samplers, model.Sampler{})
	}
	for i, clip := range clips {
		if clip.Kind != model.KeyframeTranslation || len(clip.Translations) == 0 {
			continue
		}
		idx := n.samplers[i].FrameIndex(clip, t)
		if idx >= len(clip.Translations) {
			idx = len(clip.Translations) - 1
		}
		frame := clip.Translations[idx]
		n.Locals.Position[0] = frame[0]
		n.Locals.Position[1] = frame[1]
		n.Locals.Position[2] = frame[2]
	}
}
