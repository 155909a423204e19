package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tern3d/tern/engine/renderer/backend"
)

// fakeBackend is an in-memory backend.Backend that records every resource
// creation, buffer write, and encoded command so tests can assert on frame
// structure without a GPU.

type fakeBuffer struct {
	label    string
	size     uint64
	usage    wgpu.BufferUsage
	data     []byte
	released bool
}

func (b *fakeBuffer) Size() uint64 { return b.size }
func (b *fakeBuffer) Release()     { b.released = true }

type fakeTextureView struct {
	label    string
	width    uint32
	height   uint32
	released bool
}

func (v *fakeTextureView) Release() { v.released = true }

type fakeSampler struct {
	label    string
	released bool
}

func (s *fakeSampler) Release() { s.released = true }

type fakeBindGroupLayout struct {
	label    string
	entries  []wgpu.BindGroupLayoutEntry
	released bool
}

func (l *fakeBindGroupLayout) Release() { l.released = true }

type fakeBindGroup struct {
	label     string
	layout    *fakeBindGroupLayout
	resources []backend.BindingResource
	released  bool
}

func (g *fakeBindGroup) Release() { g.released = true }

type fakePipeline struct {
	desc     backend.RenderPipelineDescriptor
	released bool
}

func (p *fakePipeline) Release() { p.released = true }

// fakeOp is one encoded render pass command.
type fakeOp struct {
	kind          string
	pipeline      *fakePipeline
	groupIndex    uint32
	group         *fakeBindGroup
	slot          uint32
	buffer        *fakeBuffer
	indexCount    uint32
	instanceCount uint32
}

type fakePass struct {
	b *fakeBackend
}

func (p *fakePass) SetPipeline(pl backend.RenderPipeline) {
	p.b.ops = append(p.b.ops, fakeOp{kind: "pipeline", pipeline: pl.(*fakePipeline)})
}

func (p *fakePass) SetBindGroup(index uint32, group backend.BindGroup) {
	p.b.ops = append(p.b.ops, fakeOp{kind: "bindgroup", groupIndex: index, group: group.(*fakeBindGroup)})
}

func (p *fakePass) SetVertexBuffer(slot uint32, buf backend.Buffer) {
	p.b.ops = append(p.b.ops, fakeOp{kind: "vertex", slot: slot, buffer: buf.(*fakeBuffer)})
}

func (p *fakePass) SetIndexBuffer(buf backend.Buffer) {
	p.b.ops = append(p.b.ops, fakeOp{kind: "index", buffer: buf.(*fakeBuffer)})
}

func (p *fakePass) DrawIndexed(indexCount, instanceCount uint32) {
	p.b.ops = append(p.b.ops, fakeOp{kind: "draw", indexCount: indexCount, instanceCount: instanceCount})
}

type fakeBackend struct {
	width, height int
	configures    int

	buffers    []*fakeBuffer
	views      []*fakeTextureView
	samplers   []*fakeSampler
	layouts    []*fakeBindGroupLayout
	bindGroups []*fakeBindGroup
	pipelines  []*fakePipeline

	ops      []fakeOp
	frames   int
	submits  int
	presents int
	released bool

	beginErr error
}

var _ backend.Backend = &fakeBackend{}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{}
	b.ConfigureSurface(640, 480)
	return b
}

func (b *fakeBackend) ConfigureSurface(width, height int) {
	b.width, b.height = width, height
	b.configures++
}

func (b *fakeBackend) SurfaceSize() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) CreateBuffer(label string, size uint64, usage wgpu.BufferUsage) (backend.Buffer, error) {
	buf := &fakeBuffer{label: label, size: size, usage: usage, data: make([]byte, size)}
	b.buffers = append(b.buffers, buf)
	return buf, nil
}

func (b *fakeBackend) WriteBuffer(buf backend.Buffer, offset uint64, data []byte) {
	fb := buf.(*fakeBuffer)
	if need := offset + uint64(len(data)); need > uint64(len(fb.data)) {
		grown := make([]byte, need)
		copy(grown, fb.data)
		fb.data = grown
	}
	copy(fb.data[offset:], data)
}

func (b *fakeBackend) CreateBindGroupLayout(label string, entries []wgpu.BindGroupLayoutEntry) (backend.BindGroupLayout, error) {
	l := &fakeBindGroupLayout{label: label, entries: entries}
	b.layouts = append(b.layouts, l)
	return l, nil
}

func (b *fakeBackend) CreateBindGroup(label string, layout backend.BindGroupLayout, resources []backend.BindingResource) (backend.BindGroup, error) {
	g := &fakeBindGroup{label: label, layout: layout.(*fakeBindGroupLayout), resources: resources}
	b.bindGroups = append(b.bindGroups, g)
	return g, nil
}

func (b *fakeBackend) CreateTextureView(label string, pixels []byte, width, height uint32) (backend.TextureView, error) {
	v := &fakeTextureView{label: label, width: width, height: height}
	b.views = append(b.views, v)
	return v, nil
}

func (b *fakeBackend) CreateSampler(label string) (backend.Sampler, error) {
	s := &fakeSampler{label: label}
	b.samplers = append(b.samplers, s)
	return s, nil
}

func (b *fakeBackend) CreateRenderPipeline(desc backend.RenderPipelineDescriptor) (backend.RenderPipeline, error) {
	p := &fakePipeline{desc: desc}
	b.pipelines = append(b.pipelines, p)
	return p, nil
}

func (b *fakeBackend) BeginFrame() (backend.RenderPass, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.frames++
	return &fakePass{b: b}, nil
}

func (b *fakeBackend) EndFrame() { b.submits++ }

func (b *fakeBackend) Present() { b.presents++ }

func (b *fakeBackend) Release() { b.released = true }

// bufferByLabel returns the most recently created buffer with the label.
func (b *fakeBackend) bufferByLabel(label string) *fakeBuffer {
	for i := len(b.buffers) - 1; i >= 0; i-- {
		if b.buffers[i].label == label {
			return b.buffers[i]
		}
	}
	return nil
}

// pipelineByLabel returns the pipeline created with the label, or nil.
func (b *fakeBackend) pipelineByLabel(label string) *fakePipeline {
	for _, p := range b.pipelines {
		if p.desc.Label == label {
			return p
		}
	}
	return nil
}
