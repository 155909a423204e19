package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tern3d/tern/common"
	"github.com/tern3d/tern/engine/model"
	"github.com/tern3d/tern/engine/renderer/backend"
)

// UploadModel creates the GPU-side buffers and textures for a model: one
// vertex and one index buffer per mesh, one texture view per material.
// Materials without staging pixels get a 1x1 white texture so the lit
// shader always has something to sample. Safe to call once per model before
// its first draw; already-uploaded resources are not recreated.
//
// Parameters:
//   - b: the backend to upload through
//   - m: the model to upload
//
// Returns:
//   - error: an error if any resource creation fails
func UploadModel(b backend.Backend, m *model.Model) error {
	for _, mesh := range m.Meshes {
		if mesh.VertexBuffer == nil {
			data := common.SliceToBytes(mesh.Vertices)
			buf, err := b.CreateBuffer(
				fmt.Sprintf("%s/%s Vertex Buffer", m.Name, mesh.Name),
				uint64(len(data)),
				wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst,
			)
			if err != nil {
				return fmt.Errorf("failed to create vertex buffer for mesh %q: %w", mesh.Name, err)
			}
			b.WriteBuffer(buf, 0, data)
			mesh.VertexBuffer = buf
		}

		if mesh.IndexBuffer == nil {
			data := common.SliceToBytes(mesh.Indices)
			buf, err := b.CreateBuffer(
				fmt.Sprintf("%s/%s Index Buffer", m.Name, mesh.Name),
				uint64(len(data)),
				wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst,
			)
			if err != nil {
				return fmt.Errorf("failed to create index buffer for mesh %q: %w", mesh.Name, err)
			}
			b.WriteBuffer(buf, 0, data)
			mesh.IndexBuffer = buf
		}
	}

	for _, mat := range m.Materials {
		if mat.DiffuseView != nil {
			continue
		}
		staging := mat.Diffuse
		if len(staging.Pixels) == 0 {
			staging = common.SolidTexture(255, 255, 255, 255)
		}
		view, err := b.CreateTextureView(
			fmt.Sprintf("%s/%s Diffuse", m.Name, mat.Name),
			staging.Pixels, staging.Width, staging.Height,
		)
		if err != nil {
			return fmt.Errorf("failed to create diffuse texture for material %q: %w", mat.Name, err)
		}
		mat.DiffuseView = view
	}

	return nil
}
