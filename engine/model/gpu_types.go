package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly.
// Size: 32 bytes (no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoord [2]float32 // offset 12: UV texture coordinate (8 bytes)
	Normal   [3]float32 // offset 20: vertex normal for lighting (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Normal[2]))
	return buf
}
