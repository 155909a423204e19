package renderer

import (
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestModelVertexLayout(t *testing.T) {
	layout := ModelVertexLayout()
	assert.Equal(t, uint64(32), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	assert.Len(t, layout.Attributes, 3)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint64(20), layout.Attributes[2].Offset)
}

func TestInstanceLayout(t *testing.T) {
	layout := InstanceLayout()
	assert.Equal(t, uint64(64), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	assert.Len(t, layout.Attributes, 4)
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint64(i*16), attr.Offset)
		assert.Equal(t, uint32(i+5), attr.ShaderLocation)
		assert.Equal(t, wgpu.VertexFormatFloat32x4, attr.Format)
	}
}

func TestGPUGlobalsMarshal(t *testing.T) {
	g := GPUGlobals{
		ViewPosition: [4]float32{1, 2, 3, 1},
		Ambient:      [4]float32{0.1, 0.1, 0.1, 1},
	}
	for i := range g.ViewProj {
		g.ViewProj[i] = float32(i)
	}

	data := g.Marshal()
	assert.Len(t, data, 96)
	assert.Equal(t, 96, g.Size())

	read := func(offset int) float32 {
		bits := uint32(data[offset]) | uint32(data[offset+1])<<8 |
			uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
		return math.Float32frombits(bits)
	}
	assert.Equal(t, float32(1), read(0))
	assert.Equal(t, float32(0), read(16))
	assert.Equal(t, float32(15), read(16+15*4))
	assert.Equal(t, float32(0.1), read(80))
}
