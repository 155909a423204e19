package backend

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is an opaque handle to a GPU buffer allocation.
type Buffer interface {
	// Size returns the allocation size of the buffer in bytes.
	Size() uint64

	// Release frees the underlying GPU buffer.
	Release()
}

// TextureView is an opaque handle to a sampleable GPU texture view.
type TextureView interface {
	Release()
}

// Sampler is an opaque handle to a GPU texture sampler.
type Sampler interface {
	Release()
}

// BindGroupLayout is an opaque handle to a GPU bind group layout.
type BindGroupLayout interface {
	Release()
}

// BindGroup is an opaque handle to a GPU bind group.
type BindGroup interface {
	Release()
}

// RenderPipeline is an opaque handle to a compiled GPU render pipeline.
type RenderPipeline interface {
	Release()
}

// BindingResource pairs a shader binding index with exactly one GPU resource.
// Exactly one of Buffer, TextureView, or Sampler must be non-nil.
type BindingResource struct {
	Binding     uint32
	Buffer      Buffer
	TextureView TextureView
	Sampler     Sampler
}

// RenderPipelineDescriptor describes a render pipeline to be compiled from a
// single WGSL module. Color output targets the surface format, depth targets
// Depth24Plus with LessEqual compare, and blending is replace.
type RenderPipelineDescriptor struct {
	Label             string
	Source            string
	VertexEntry       string
	FragmentEntry     string
	BindGroupLayouts  []BindGroupLayout
	VertexBuffers     []wgpu.VertexBufferLayout
	Topology          wgpu.PrimitiveTopology
	CullMode          wgpu.CullMode
	DepthWriteEnabled bool
}

// RenderPass records draw commands for the frame currently in flight.
type RenderPass interface {
	// SetPipeline binds a render pipeline for subsequent draw commands.
	SetPipeline(p RenderPipeline)

	// SetBindGroup binds a bind group at the given group index.
	SetBindGroup(index uint32, group BindGroup)

	// SetVertexBuffer binds a vertex buffer at the given slot.
	SetVertexBuffer(slot uint32, buf Buffer)

	// SetIndexBuffer binds a uint32 index buffer.
	SetIndexBuffer(buf Buffer)

	// DrawIndexed encodes an instanced indexed draw command.
	DrawIndexed(indexCount, instanceCount uint32)
}

// Backend abstracts the GPU device, queue, and presentation surface behind
// handle-returning resource constructors and a per-frame pass, so render
// passes can be exercised without a live adapter.
type Backend interface {
	// ConfigureSurface reconfigures the presentation surface and recreates the
	// depth texture for the given size. Required after every window resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SurfaceSize returns the size the surface was last configured with.
	SurfaceSize() (width, height int)

	// CreateBuffer allocates a GPU buffer of the given size and usage.
	//
	// Parameters:
	//   - label: a debug label for the buffer
	//   - size: the allocation size in bytes
	//   - usage: the wgpu buffer usage flags
	//
	// Returns:
	//   - Buffer: the created buffer handle
	//   - error: an error if allocation fails
	CreateBuffer(label string, size uint64, usage wgpu.BufferUsage) (Buffer, error)

	// WriteBuffer queues a write of data into buf at the given byte offset.
	// The write is flushed before the next frame's commands execute.
	WriteBuffer(buf Buffer, offset uint64, data []byte)

	// CreateBindGroupLayout creates a bind group layout from wgpu entries.
	CreateBindGroupLayout(label string, entries []wgpu.BindGroupLayoutEntry) (BindGroupLayout, error)

	// CreateBindGroup creates a bind group binding the given resources against
	// a layout previously created by CreateBindGroupLayout.
	CreateBindGroup(label string, layout BindGroupLayout, resources []BindingResource) (BindGroup, error)

	// CreateTextureView uploads RGBA8 staging pixels into a new sampleable
	// texture and returns a view of it.
	CreateTextureView(label string, pixels []byte, width, height uint32) (TextureView, error)

	// CreateSampler creates a repeat-addressed linear-filtering sampler.
	CreateSampler(label string) (Sampler, error)

	// CreateRenderPipeline compiles a render pipeline. ConfigureSurface must
	// have been called at least once so the surface format is known.
	CreateRenderPipeline(desc RenderPipelineDescriptor) (RenderPipeline, error)

	// BeginFrame acquires the next surface texture and opens a render pass
	// that clears color and depth.
	//
	// Returns:
	//   - RenderPass: the open pass for this frame's draw commands
	//   - error: ErrSurfaceLost, ErrSurfaceOutdated, ErrSurfaceTimeout, or
	//     ErrOutOfMemory when surface acquisition fails in a classifiable way
	BeginFrame() (RenderPass, error)

	// EndFrame ends the open pass and submits the frame's command buffer.
	EndFrame()

	// Present presents the submitted frame to the surface.
	Present()

	// Release frees the device, queue, and surface resources.
	Release()
}
