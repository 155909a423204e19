package renderer

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUGlobals is the GPU-aligned scene-wide uniform block shared by every
// draw in a frame. Matches the WGSL Globals struct layout exactly.
// Size: 96 bytes.
type GPUGlobals struct {
	ViewPosition [4]float32  // offset  0: homogeneous camera eye position (16 bytes)
	ViewProj     [16]float32 // offset 16: column-major view-projection matrix (64 bytes)
	Ambient      [4]float32  // offset 80: ambient light RGBA (16 bytes)
}

// Size returns the size of the GPUGlobals struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUGlobals) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUGlobals struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUGlobals) Marshal() []byte {
	buf := make([]byte, 96)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(g.ViewPosition[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:16+i*4+4], math.Float32bits(g.ViewProj[i]))
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buf[80+i*4:80+i*4+4], math.Float32bits(g.Ambient[i]))
	}
	return buf
}
