package renderer

// PhongPassOption is a functional option for configuring a PhongPass at
// construction time.
type PhongPassOption func(*phongPassImpl)

// WithAmbient sets the ambient light color applied to every fragment.
//
// Parameters:
//   - ambient: RGBA ambient color, default (0.1, 0.1, 0.1, 1.0)
//
// Returns:
//   - PhongPassOption: the option to apply
func WithAmbient(ambient [4]float32) PhongPassOption {
	return func(p *phongPassImpl) {
		p.ambient = ambient
	}
}

// WithWireframe renders geometry as line lists instead of filled triangles.
//
// Returns:
//   - PhongPassOption: the option to apply
func WithWireframe() PhongPassOption {
	return func(p *phongPassImpl) {
		p.wireframe = true
	}
}
