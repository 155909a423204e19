package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ModelVertexLayout returns the vertex buffer layout for model.GPUVertex:
// position, texcoord, and normal at shader locations 0 through 2, 32 bytes
// per vertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-vertex layout for slot 0
func ModelVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 32,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Offset:         0,
				ShaderLocation: 0,
				Format:         wgpu.VertexFormatFloat32x3,
			},
			{
				Offset:         12,
				ShaderLocation: 1,
				Format:         wgpu.VertexFormatFloat32x2,
			},
			{
				Offset:         20,
				ShaderLocation: 2,
				Format:         wgpu.VertexFormatFloat32x3,
			},
		},
	}
}

// InstanceLayout returns the vertex buffer layout for scene.GPUInstance: a
// 4x4 model matrix spread across shader locations 5 through 8, 64 bytes per
// instance, stepped per instance.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-instance layout for slot 1
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 64,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{
				Offset:         0,
				ShaderLocation: 5,
				Format:         wgpu.VertexFormatFloat32x4,
			},
			{
				Offset:         16,
				ShaderLocation: 6,
				Format:         wgpu.VertexFormatFloat32x4,
			},
			{
				Offset:         32,
				ShaderLocation: 7,
				Format:         wgpu.VertexFormatFloat32x4,
			},
			{
				Offset:         48,
				ShaderLocation: 8,
				Format:         wgpu.VertexFormatFloat32x4,
			},
		},
	}
}
