package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPULightLayout(t *testing.T) {
	g := GPULight{
		Position: [3]float32{1, 2, 3},
		Color:    [3]float32{0.5, 0.25, 0.125},
	}
	assert.Equal(t, 32, g.Size())

	buf := g.Marshal()
	assert.Len(t, buf, 32)

	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[12:16]))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[28:32]))
}

func TestLightGPUMirror(t *testing.T) {
	l := New(0, 4, 0)
	l.Color = [3]float32{1, 0.9, 0.8}

	g := l.GPU()
	assert.Equal(t, l.Position, g.Position)
	assert.Equal(t, l.Color, g.Color)
}
