package model

import (
	"github.com/tern3d/tern/common"
	"github.com/tern3d/tern/engine/renderer/backend"
)

// Material holds a named diffuse texture for a mesh.
type Material struct {
	// Name is the material identifier.
	Name string

	// Diffuse is the CPU-side staging data for the diffuse texture.
	Diffuse common.TextureStagingData

	// DiffuseView is the GPU texture view, set once the material is uploaded.
	DiffuseView backend.TextureView
}

// Mesh holds the geometry for a single drawable piece of a model.
type Mesh struct {
	// Name is the mesh identifier (for debugging).
	Name string

	// Vertices is the CPU-side vertex data.
	Vertices []GPUVertex

	// Indices is the CPU-side uint32 index data.
	Indices []uint32

	// MaterialIndex is the index into the owning model's Materials.
	MaterialIndex int

	// VertexBuffer and IndexBuffer are the GPU buffers, set once the mesh
	// is uploaded.
	VertexBuffer backend.Buffer
	IndexBuffer  backend.Buffer
}

// IndexCount returns the number of indices to draw for this mesh.
func (m *Mesh) IndexCount() uint32 {
	return uint32(len(m.Indices))
}

// MaterialFor resolves the material a mesh references through its
// MaterialIndex.
//
// Parameters:
//   - mesh: the mesh whose material to look up
//
// Returns:
//   - *Material: the referenced material, or nil when the index is out of range
func (m *Model) MaterialFor(mesh *Mesh) *Material {
	if mesh == nil || mesh.MaterialIndex < 0 || mesh.MaterialIndex >= len(m.Materials) {
		return nil
	}
	return m.Materials[mesh.MaterialIndex]
}

// Model groups meshes, their materials, and any animations that target the
// node the model is attached to.
type Model struct {
	// Name is the model identifier.
	Name string

	// Meshes is the drawable geometry.
	Meshes []*Mesh

	// Materials are referenced by mesh MaterialIndex.
	Materials []*Material

	// Animations are the clips available for this model.
	Animations []*AnimationClip
}

// New creates a single-mesh model with one material.
//
// Parameters:
//   - name: the model identifier
//   - mesh: the model's geometry
//   - material: the material mesh index 0 refers to, or nil for an untextured model
//
// Returns:
//   - *Model: the assembled model
func New(name string, mesh *Mesh, material *Material) *Model {
	m := &Model{
		Name:   name,
		Meshes: []*Mesh{mesh},
	}
	if material != nil {
		m.Materials = []*Material{material}
	}
	return m
}
