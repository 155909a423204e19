package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tern3d/tern/common"
	"github.com/tern3d/tern/engine/camera"
	"github.com/tern3d/tern/engine/renderer/backend"
	"github.com/tern3d/tern/engine/scene"
)

// phongShaderSource is the WGSL module for the lit pipeline.
//
//go:embed shaders/phong.wgsl
var phongShaderSource string

// lightShaderSource is the WGSL module for the light visualization pipeline.
//
//go:embed shaders/light.wgsl
var lightShaderSource string

const (
	globalsSize = 96
	lightSize   = 32
	localsSize  = 64
)

type phongPassImpl struct {
	mu *sync.Mutex

	backend backend.Backend
	camera  camera.Camera

	ambient   [4]float32
	wireframe bool

	globalLayout    backend.BindGroupLayout
	localLayout     backend.BindGroupLayout
	globalBuffer    backend.Buffer
	lightBuffer     backend.Buffer
	sampler         backend.Sampler
	globalBindGroup backend.BindGroup
	defaultDiffuse  backend.TextureView

	litPipeline   backend.RenderPipeline
	lightPipeline backend.RenderPipeline

	uniformPool *UniformPool

	// Per-node caches, keyed by node index. Bind groups reference pool
	// buffers by identity, so the bind group cache is dropped whenever the
	// pool reallocates.
	localBindGroups map[int]backend.BindGroup
	instanceBuffers map[int]backend.Buffer
}

// PhongPass owns all GPU pipeline state for the scene: the lit and
// light-visualization pipelines, the global bind group, the per-node uniform
// pool, and the per-node bind-group and instance-buffer caches. It executes
// the full two-stage draw for a frame.
type PhongPass interface {
	// Draw renders one frame of the scene: queues the global, light, and
	// per-node uniform writes, lazily creates missing per-node resources,
	// encodes the light visualization draw followed by the lit draws in
	// node order, then submits and presents.
	//
	// Parameters:
	//   - s: the scene to render
	//
	// Returns:
	//   - error: a backend surface error when frame acquisition fails;
	//     match with errors.Is against the backend sentinels
	Draw(s *scene.Scene) error

	// Resize reconfigures the surface and depth texture for a new window
	// size. Zero or negative dimensions are ignored.
	//
	// Parameters:
	//   - width, height: the new surface size in pixels
	Resize(width, height int)

	// Camera returns the camera whose matrices feed the global uniforms.
	Camera() camera.Camera

	// Release frees all GPU resources owned by the pass.
	Release()
}

var _ PhongPass = &phongPassImpl{}

// NewPhongPass creates the render pass for a configured backend and camera.
// The surface must already be configured so pipelines can target its format.
// Any resource creation failure during setup panics; there is no partial
// pipeline to recover to.
//
// Parameters:
//   - b: the configured backend
//   - cam: the scene camera
//   - options: functional options for ambient color and wireframe mode
//
// Returns:
//   - PhongPass: the initialized pass
func NewPhongPass(b backend.Backend, cam camera.Camera, options ...PhongPassOption) PhongPass {
	p := &phongPassImpl{
		mu:              &sync.Mutex{},
		backend:         b,
		camera:          cam,
		ambient:         [4]float32{0.1, 0.1, 0.1, 1.0},
		uniformPool:     NewUniformPool("Phong Locals", localsSize),
		localBindGroups: make(map[int]backend.BindGroup),
		instanceBuffers: make(map[int]backend.Buffer),
	}
	for _, option := range options {
		option(p)
	}

	var err error

	p.globalLayout, err = b.CreateBindGroupLayout("Phong Globals", []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: globalsSize,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: lightSize,
			},
		},
		{
			Binding:    2,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	})
	if err != nil {
		panic(fmt.Errorf("failed to create global bind group layout: %w", err))
	}

	p.localLayout, err = b.CreateBindGroupLayout("Phong Locals", []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: localsSize,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
			},
		},
	})
	if err != nil {
		panic(fmt.Errorf("failed to create local bind group layout: %w", err))
	}

	p.globalBuffer, err = b.CreateBuffer("Phong Globals", globalsSize, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	if err != nil {
		panic(fmt.Errorf("failed to create global uniform buffer: %w", err))
	}

	p.lightBuffer, err = b.CreateBuffer("Phong Lights", lightSize, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	if err != nil {
		panic(fmt.Errorf("failed to create light uniform buffer: %w", err))
	}

	p.sampler, err = b.CreateSampler("Phong Sampler")
	if err != nil {
		panic(fmt.Errorf("failed to create sampler: %w", err))
	}

	p.globalBindGroup, err = b.CreateBindGroup("Phong Globals", p.globalLayout, []backend.BindingResource{
		{Binding: 0, Buffer: p.globalBuffer},
		{Binding: 1, Buffer: p.lightBuffer},
		{Binding: 2, Sampler: p.sampler},
	})
	if err != nil {
		panic(fmt.Errorf("failed to create global bind group: %w", err))
	}

	white := common.SolidTexture(255, 255, 255, 255)
	p.defaultDiffuse, err = b.CreateTextureView("Phong Default Diffuse", white.Pixels, white.Width, white.Height)
	if err != nil {
		panic(fmt.Errorf("failed to create default diffuse texture: %w", err))
	}

	topology := wgpu.PrimitiveTopologyTriangleList
	if p.wireframe {
		topology = wgpu.PrimitiveTopologyLineList
	}

	p.litPipeline, err = b.CreateRenderPipeline(backend.RenderPipelineDescriptor{
		Label:             "Phong Lit Pipeline",
		Source:            phongShaderSource,
		VertexEntry:       "vs_main",
		FragmentEntry:     "fs_main",
		BindGroupLayouts:  []backend.BindGroupLayout{p.globalLayout, p.localLayout},
		VertexBuffers:     []wgpu.VertexBufferLayout{ModelVertexLayout(), InstanceLayout()},
		Topology:          topology,
		CullMode:          wgpu.CullModeBack,
		DepthWriteEnabled: true,
	})
	if err != nil {
		panic(fmt.Errorf("failed to create lit pipeline: %w", err))
	}

	p.lightPipeline, err = b.CreateRenderPipeline(backend.RenderPipelineDescriptor{
		Label:             "Phong Light Pipeline",
		Source:            lightShaderSource,
		VertexEntry:       "vs_main",
		FragmentEntry:     "fs_main",
		BindGroupLayouts:  []backend.BindGroupLayout{p.globalLayout, p.localLayout},
		VertexBuffers:     []wgpu.VertexBufferLayout{ModelVertexLayout()},
		Topology:          topology,
		CullMode:          wgpu.CullModeBack,
		DepthWriteEnabled: true,
	})
	if err != nil {
		panic(fmt.Errorf("failed to create light pipeline: %w", err))
	}

	return p
}

func (p *phongPassImpl) Camera() camera.Camera {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.camera
}

func (p *phongPassImpl) Resize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	p.backend.ConfigureSurface(width, height)
}

func (p *phongPassImpl) Draw(s *scene.Scene) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	nodes := s.Nodes

	// Queue all uniform writes for the frame before encoding any draw that
	// reads them; queue submission order makes them visible to the draws.
	ex, ey, ez := p.camera.Eye()
	globals := GPUGlobals{
		ViewPosition: [4]float32{ex, ey, ez, 1},
		ViewProj:     p.camera.ViewProjectionMatrix(),
		Ambient:      p.ambient,
	}
	p.backend.WriteBuffer(p.globalBuffer, 0, globals.Marshal())

	if s.LightSource != nil {
		gl := s.LightSource.GPU()
		p.backend.WriteBuffer(p.lightBuffer, 0, gl.Marshal())
	}

	// Grow the uniform pool wholesale when the scene outgrows it. The old
	// buffers die with the reallocation, so every cached bind group that
	// referenced them is dropped too.
	if p.uniformPool.Len() < len(nodes) {
		if err := p.uniformPool.Alloc(p.backend, len(nodes)); err != nil {
			panic(err)
		}
		for idx, bg := range p.localBindGroups {
			bg.Release()
			delete(p.localBindGroups, idx)
		}
	}

	for i, node := range nodes {
		p.uniformPool.Update(p.backend, i, node.Locals.Marshal())
	}

	if err := p.ensureNodeResources(nodes); err != nil {
		panic(err)
	}

	pass, err := p.backend.BeginFrame()
	if err != nil {
		return err
	}

	// Light marker first, then the lit pass over every node in order.
	if lightIdx := nodeIndex(nodes, s.LightNode()); lightIdx >= 0 {
		pass.SetPipeline(p.lightPipeline)
		pass.SetBindGroup(0, p.globalBindGroup)
		pass.SetBindGroup(1, p.localBindGroups[lightIdx])
		lightNode := nodes[lightIdx]
		for _, mesh := range lightNode.Model.Meshes {
			pass.SetVertexBuffer(0, mesh.VertexBuffer)
			pass.SetIndexBuffer(mesh.IndexBuffer)
			pass.DrawIndexed(mesh.IndexCount(), lightNode.InstanceCount())
		}
	}

	pass.SetPipeline(p.litPipeline)
	pass.SetBindGroup(0, p.globalBindGroup)
	for i, node := range nodes {
		pass.SetVertexBuffer(1, p.instanceBuffers[i])
		pass.SetBindGroup(1, p.localBindGroups[i])
		for _, mesh := range node.Model.Meshes {
			pass.SetVertexBuffer(0, mesh.VertexBuffer)
			pass.SetIndexBuffer(mesh.IndexBuffer)
			pass.DrawIndexed(mesh.IndexCount(), node.InstanceCount())
		}
	}

	p.backend.EndFrame()
	p.backend.Present()

	return nil
}

// ensureNodeResources lazily creates the local bind group and instance
// buffer for any node index not yet cached. Creation happens at most once
// per node until the uniform pool reallocates.
func (p *phongPassImpl) ensureNodeResources(nodes []*scene.Node) error {
	for i, node := range nodes {
		if _, ok := p.localBindGroups[i]; !ok {
			// The local bind group carries one texture per node, taken from
			// the material the node's first mesh references.
			diffuse := p.defaultDiffuse
			if node.Model != nil && len(node.Model.Meshes) > 0 {
				if mat := node.Model.MaterialFor(node.Model.Meshes[0]); mat != nil && mat.DiffuseView != nil {
					diffuse = mat.DiffuseView
				}
			}
			bg, err := p.backend.CreateBindGroup(
				fmt.Sprintf("Phong Locals %d", i),
				p.localLayout,
				[]backend.BindingResource{
					{Binding: 0, Buffer: p.uniformPool.Buffer(i)},
					{Binding: 1, TextureView: diffuse},
				},
			)
			if err != nil {
				return fmt.Errorf("failed to create local bind group for node %d: %w", i, err)
			}
			p.localBindGroups[i] = bg
		}

		if _, ok := p.instanceBuffers[i]; !ok {
			data := scene.FlattenInstances(node.Instances)
			buf, err := p.backend.CreateBuffer(
				fmt.Sprintf("Instance Buffer %d", i),
				uint64(len(data)),
				wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst,
			)
			if err != nil {
				return fmt.Errorf("failed to create instance buffer for node %d: %w", i, err)
			}
			p.backend.WriteBuffer(buf, 0, data)
			p.instanceBuffers[i] = buf
		}
	}
	return nil
}

// nodeIndex returns the position of target in nodes, or -1.
func nodeIndex(nodes []*scene.Node, target *scene.Node) int {
	if target == nil {
		return -1
	}
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

func (p *phongPassImpl) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, bg := range p.localBindGroups {
		bg.Release()
	}
	p.localBindGroups = make(map[int]backend.BindGroup)
	for _, buf := range p.instanceBuffers {
		buf.Release()
	}
	p.instanceBuffers = make(map[int]backend.Buffer)

	p.uniformPool.Release()

	if p.litPipeline != nil {
		p.litPipeline.Release()
	}
	if p.lightPipeline != nil {
		p.lightPipeline.Release()
	}
	if p.globalBindGroup != nil {
		p.globalBindGroup.Release()
	}
	if p.defaultDiffuse != nil {
		p.defaultDiffuse.Release()
	}
	if p.sampler != nil {
		p.sampler.Release()
	}
	if p.globalBuffer != nil {
		p.globalBuffer.Release()
	}
	if p.lightBuffer != nil {
		p.lightBuffer.Release()
	}
	if p.globalLayout != nil {
		p.globalLayout.Release()
	}
	if p.localLayout != nil {
		p.localLayout.Release()
	}
}
