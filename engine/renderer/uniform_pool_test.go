package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoolAlloc(t *testing.T) {
	b := newFakeBackend()
	pool := NewUniformPool("Test Pool", 64)
	assert.Zero(t, pool.Len())

	assert.NoError(t, pool.Alloc(b, 3))
	assert.Equal(t, 3, pool.Len())
	for i := 0; i < 3; i++ {
		buf := pool.Buffer(i)
		assert.NotNil(t, buf)
		assert.Equal(t, uint64(64), buf.Size())
	}
	assert.Equal(t, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst, b.buffers[0].usage)
}

func TestUniformPoolAllocReleasesOld(t *testing.T) {
	b := newFakeBackend()
	pool := NewUniformPool("Test Pool", 64)

	assert.NoError(t, pool.Alloc(b, 2))
	old0 := pool.Buffer(0).(*fakeBuffer)

	assert.NoError(t, pool.Alloc(b, 4))
	assert.True(t, old0.released)
	assert.Equal(t, 4, pool.Len())
	assert.NotSame(t, old0, pool.Buffer(0))
}

func TestUniformPoolUpdate(t *testing.T) {
	b := newFakeBackend()
	pool := NewUniformPool("Test Pool", 8)
	assert.NoError(t, pool.Alloc(b, 1))

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	pool.Update(b, 0, payload)
	assert.Equal(t, payload, pool.Buffer(0).(*fakeBuffer).data)

	// Out-of-range indices are ignored.
	pool.Update(b, 1, payload)
	pool.Update(b, -1, payload)
}

func TestUniformPoolBufferOutOfRange(t *testing.T) {
	b := newFakeBackend()
	pool := NewUniformPool("Test Pool", 8)
	assert.NoError(t, pool.Alloc(b, 1))

	assert.Nil(t, pool.Buffer(-1))
	assert.Nil(t, pool.Buffer(1))
}

func TestUniformPoolRelease(t *testing.T) {
	b := newFakeBackend()
	pool := NewUniformPool("Test Pool", 8)
	assert.NoError(t, pool.Alloc(b, 2))

	bufs := []*fakeBuffer{pool.Buffer(0).(*fakeBuffer), pool.Buffer(1).(*fakeBuffer)}
	pool.Release()
	assert.Zero(t, pool.Len())
	for _, buf := range bufs {
		assert.True(t, buf.released)
	}
}
