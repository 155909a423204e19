package scene

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULocals is the GPU-aligned per-node uniform block. Every slot is a full
// vec4 to satisfy the 16-byte uniform alignment rule.
// Matches the WGSL Locals struct layout exactly.
// Size: 64 bytes.
type GPULocals struct {
	Position [4]float32 // offset  0: node position, w unused (16 bytes)
	Color    [4]float32 // offset 16: node RGBA tint (16 bytes)
	Normal   [4]float32 // offset 32: node normal bias, w unused (16 bytes)
	Lights   [4]float32 // offset 48: light factor slots (16 bytes)
}

// Size returns the size of the GPULocals struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULocals) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULocals struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULocals) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:16+i*4+4], math.Float32bits(g.Color[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:32+i*4+4], math.Float32bits(g.Normal[i]))
		binary.LittleEndian.PutUint32(buf[48+i*4:48+i*4+4], math.Float32bits(g.Lights[i]))
	}
	return buf
}

// GPUInstance is the GPU-aligned per-instance transform, a full 4x4
// column-major model matrix fed through the instance vertex buffer.
// Size: 64 bytes.
type GPUInstance struct {
	Model [16]float32
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(g.Model[i]))
	}
	return buf
}
