package backend

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor
	surfaceWidth         int
	surfaceHeight        int

	presentMode wgpu.PresentMode
	clearColor  wgpu.Color

	// Frame state held between BeginFrame and Present.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ Backend = &wgpuBackendImpl{}

type wgpuOptions struct {
	presentMode          wgpu.PresentMode
	clearColor           wgpu.Color
	forceFallbackAdapter bool
}

// WGPUOption configures the wgpu backend at construction time.
type WGPUOption func(*wgpuOptions)

// WithPresentMode sets the surface present mode. Defaults to Fifo (vsync).
func WithPresentMode(mode wgpu.PresentMode) WGPUOption {
	return func(o *wgpuOptions) {
		o.presentMode = mode
	}
}

// WithClearColor sets the color the render pass clears to each frame.
func WithClearColor(c wgpu.Color) WGPUOption {
	return func(o *wgpuOptions) {
		o.clearColor = c
	}
}

// WithForceFallbackAdapter forces the software fallback adapter.
func WithForceFallbackAdapter() WGPUOption {
	return func(o *wgpuOptions) {
		o.forceFallbackAdapter = true
	}
}

// NewWGPU creates a Backend on the first suitable adapter compatible with the
// given surface. It panics if no adapter or device can be acquired, since
// nothing can render without one.
//
// Parameters:
//   - surfaceDescriptor: the platform surface to present to
//   - options: optional present mode, clear color, and adapter overrides
//
// Returns:
//   - Backend: the initialized backend
func NewWGPU(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...WGPUOption) Backend {
	runtime.LockOSThread()

	opts := &wgpuOptions{
		presentMode: wgpu.PresentModeFifo,
		clearColor:  wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}
	for _, opt := range options {
		opt(opts)
	}

	b := &wgpuBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: opts.presentMode,
		clearColor:  opts.clearColor,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	adapter, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	b.device = device
	b.queue = device.GetQueue()

	return b
}

func (b *wgpuBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.surfaceWidth = width
	b.surfaceHeight = height

	// Reconfiguring replaces the depth attachment wholesale, so the previous
	// view and its backing texture are released first.
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// Cached descriptor for the main pass. The color attachment View is set
	// per-frame to the acquired swapchain view.
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
}

func (b *wgpuBackendImpl) SurfaceSize() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surfaceWidth, b.surfaceHeight
}

type wgpuBuffer struct {
	buf  *wgpu.Buffer
	size uint64
}

func (w *wgpuBuffer) Size() uint64 { return w.size }
func (w *wgpuBuffer) Release()     { w.buf.Release() }

func (b *wgpuBackendImpl) CreateBuffer(label string, size uint64, usage wgpu.BufferUsage) (Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, err
	}
	return &wgpuBuffer{buf: buf, size: size}, nil
}

func (b *wgpuBackendImpl) WriteBuffer(buf Buffer, offset uint64, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue.WriteBuffer(buf.(*wgpuBuffer).buf, offset, data)
}

type wgpuBindGroupLayout struct {
	layout *wgpu.BindGroupLayout
}

func (w *wgpuBindGroupLayout) Release() { w.layout.Release() }

func (b *wgpuBackendImpl) CreateBindGroupLayout(label string, entries []wgpu.BindGroupLayoutEntry) (BindGroupLayout, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return &wgpuBindGroupLayout{layout: layout}, nil
}

type wgpuBindGroup struct {
	group *wgpu.BindGroup
}

func (w *wgpuBindGroup) Release() { w.group.Release() }

func (b *wgpuBackendImpl) CreateBindGroup(label string, layout BindGroupLayout, resources []BindingResource) (BindGroup, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := make([]wgpu.BindGroupEntry, len(resources))
	for i, res := range resources {
		switch {
		case res.Buffer != nil:
			entries[i] = wgpu.BindGroupEntry{
				Binding: res.Binding,
				Buffer:  res.Buffer.(*wgpuBuffer).buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			}
		case res.TextureView != nil:
			entries[i] = wgpu.BindGroupEntry{
				Binding:     res.Binding,
				TextureView: res.TextureView.(*wgpuTextureView).view,
			}
		case res.Sampler != nil:
			entries[i] = wgpu.BindGroupEntry{
				Binding: res.Binding,
				Sampler: res.Sampler.(*wgpuSampler).sampler,
			}
		default:
			return nil, fmt.Errorf("binding %d has no resource", res.Binding)
		}
	}

	group, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  layout.(*wgpuBindGroupLayout).layout,
		Entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return &wgpuBindGroup{group: group}, nil
}

type wgpuTextureView struct {
	view *wgpu.TextureView
}

func (w *wgpuTextureView) Release() { w.view.Release() }

func (b *wgpuBackendImpl) CreateTextureView(label string, pixels []byte, width, height uint32) (TextureView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     label,
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, err
	}
	return &wgpuTextureView{view: view}, nil
}

type wgpuSampler struct {
	sampler *wgpu.Sampler
}

func (w *wgpuSampler) Release() { w.sampler.Release() }

func (b *wgpuBackendImpl) CreateSampler(label string) (Sampler, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0.0,
		LodMaxClamp:   32.0,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, err
	}
	return &wgpuSampler{sampler: samp}, nil
}

type wgpuRenderPipeline struct {
	pipeline *wgpu.RenderPipeline
}

func (w *wgpuRenderPipeline) Release() { w.pipeline.Release() }

func (b *wgpuBackendImpl) CreateRenderPipeline(desc RenderPipelineDescriptor) (RenderPipeline, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return nil, fmt.Errorf("surface not configured before creating pipeline %q", desc.Label)
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: desc.Label + " Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: desc.Source,
		},
	})
	if err != nil {
		return nil, err
	}
	defer module.Release()

	layouts := make([]*wgpu.BindGroupLayout, len(desc.BindGroupLayouts))
	for i, l := range desc.BindGroupLayouts {
		layouts[i] = l.(*wgpuBindGroupLayout).layout
	}
	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            desc.Label + " Layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return nil, err
	}
	defer pipelineLayout.Release()

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: desc.VertexEntry,
			Buffers:    desc.VertexBuffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  desc.Topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  desc.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: desc.DepthWriteEnabled,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return &wgpuRenderPipeline{pipeline: created}, nil
}

type wgpuRenderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (p *wgpuRenderPass) SetPipeline(pl RenderPipeline) {
	p.pass.SetPipeline(pl.(*wgpuRenderPipeline).pipeline)
}

func (p *wgpuRenderPass) SetBindGroup(index uint32, group BindGroup) {
	p.pass.SetBindGroup(index, group.(*wgpuBindGroup).group, nil)
}

func (p *wgpuRenderPass) SetVertexBuffer(slot uint32, buf Buffer) {
	p.pass.SetVertexBuffer(slot, buf.(*wgpuBuffer).buf, 0, wgpu.WholeSize)
}

func (p *wgpuRenderPass) SetIndexBuffer(buf Buffer) {
	p.pass.SetIndexBuffer(buf.(*wgpuBuffer).buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
}

func (p *wgpuRenderPass) DrawIndexed(indexCount, instanceCount uint32) {
	p.pass.DrawIndexed(indexCount, instanceCount, 0, 0, 0)
}

func (b *wgpuBackendImpl) BeginFrame() (RenderPass, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface != nil {
		return nil, fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifySurfaceError(err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return nil, err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return nil, err
	}

	b.renderPassDescriptor.ColorAttachments[0].View = view
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return &wgpuRenderPass{pass: pass}, nil
}

func (b *wgpuBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
