package scene

import (
	"github.com/tern3d/tern/common"
	"github.com/tern3d/tern/engine/light"
)

// Scene holds the flat node list plus the light source. The light
// visualization node is designated explicitly rather than by list position,
// so node ordering carries no rendering semantics.
type Scene struct {
	// Nodes are the renderable entities, drawn in list order.
	Nodes []*Node

	// LightSource is the scene's point light, orbited each update.
	LightSource *light.Light

	// lightNode is the node drawn with the light visualization pipeline.
	lightNode *Node

	// lightOrbitSpeed is the light's orbit rate around the Y axis in
	// radians per second. Zero disables the orbit.
	lightOrbitSpeed float32
}

// NewScene creates an empty scene with a white light at (2, 4, 2) orbiting
// at half a radian per second.
//
// Returns:
//   - *Scene: the new scene
func NewScene() *Scene {
	return &Scene{
		LightSource:     light.New(2, 4, 2),
		lightOrbitSpeed: 0.5,
	}
}

// AddNode appends a node to the scene's draw list.
//
// Parameters:
//   - n: the node to add
func (s *Scene) AddNode(n *Node) {
	s.Nodes = append(s.Nodes, n)
}

// SetLightNode designates the node drawn as the light's visual marker. The
// node is appended to the draw list if not already present.
//
// Parameters:
//   - n: the node to designate, or nil to clear the designation
func (s *Scene) SetLightNode(n *Node) {
	s.lightNode = n
	if n == nil {
		return
	}
	for _, existing := range s.Nodes {
		if existing == n {
			return
		}
	}
	s.Nodes = append(s.Nodes, n)
}

// LightNode returns the designated light visualization node, or nil.
func (s *Scene) LightNode() *Node {
	return s.lightNode
}

// SetLightOrbitSpeed sets the light's orbit rate in radians per second.
func (s *Scene) SetLightOrbitSpeed(radiansPerSecond float32) {
	s.lightOrbitSpeed = radiansPerSecond
}

// Update advances all CPU-side per-frame state: the light orbit and every
// node's animation-driven locals. GPU uploads happen later in the render
// pass, after this returns.
//
// Parameters:
//   - elapsed: seconds since session start, monotonic
//   - delta: seconds since the previous update
func (s *Scene) Update(elapsed, delta float32) {
	if s.LightSource != nil && s.lightOrbitSpeed != 0 {
		s.LightSource.Position = common.RotateY(s.LightSource.Position, s.lightOrbitSpeed*delta)
	}

	for _, n := range s.Nodes {
		n.animate(elapsed)
	}

	// The marker node follows the light.
	if s.lightNode != nil && s.LightSource != nil {
		s.lightNode.Locals.Position[0] = s.LightSource.Position[0]
		s.lightNode.Locals.Position[1] = s.LightSource.Position[1]
		s.lightNode.Locals.Position[2] = s.LightSource.Position[2]
	}
}
