package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tern3d/tern/engine/renderer/backend"
)

// UniformPool maps node index to a persistent GPU uniform buffer, one
// fixed-size buffer per node. Allocation is wholesale: growing the pool
// discards every existing buffer, which invalidates any bind group created
// against them. Callers owning such bind groups must drop them whenever
// Alloc runs.
type UniformPool struct {
	label       string
	elementSize uint64
	buffers     []backend.Buffer
}

// NewUniformPool creates an empty pool whose buffers will all be
// elementSize bytes.
//
// Parameters:
//   - label: a debug label prefix for the pool's buffers
//   - elementSize: the byte size of each buffer
//
// Returns:
//   - *UniformPool: the empty pool
func NewUniformPool(label string, elementSize uint64) *UniformPool {
	return &UniformPool{
		label:       label,
		elementSize: elementSize,
	}
}

// Alloc releases all existing buffers and creates count fresh ones.
//
// Parameters:
//   - b: the backend to allocate on
//   - count: the number of buffers the pool must hold
//
// Returns:
//   - error: an error if any buffer allocation fails
func (p *UniformPool) Alloc(b backend.Backend, count int) error {
	for _, buf := range p.buffers {
		buf.Release()
	}
	p.buffers = make([]backend.Buffer, 0, count)

	for i := 0; i < count; i++ {
		buf, err := b.CreateBuffer(
			fmt.Sprintf("%s %d", p.label, i),
			p.elementSize,
			wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst,
		)
		if err != nil {
			return fmt.Errorf("failed to allocate pool buffer %d: %w", i, err)
		}
		p.buffers = append(p.buffers, buf)
	}
	return nil
}

// Update queues a write of data into the buffer at index. Out-of-range
// indices are a silent no-op so scenes can be built incrementally without
// tripping hard errors.
//
// Parameters:
//   - b: the backend owning the queue
//   - index: the node index
//   - data: the uniform payload to write
func (p *UniformPool) Update(b backend.Backend, index int, data []byte) {
	if index < 0 || index >= len(p.buffers) {
		return
	}
	b.WriteBuffer(p.buffers[index], 0, data)
}

// Len returns the number of buffers currently allocated.
func (p *UniformPool) Len() int {
	return len(p.buffers)
}

// Buffer returns the buffer at index, or nil when out of range.
func (p *UniformPool) Buffer(index int) backend.Buffer {
	if index < 0 || index >= len(p.buffers) {
		return nil
	}
	return p.buffers[index]
}

// Release frees every buffer in the pool.
func (p *UniformPool) Release() {
	for _, buf := range p.buffers {
		buf.Release()
	}
	p.buffers = nil
}
