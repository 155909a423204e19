package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULight is the GPU-aligned representation of a single point light.
// Matches the WGSL Light struct layout exactly.
// Size: 32 bytes (vec3 + pad, vec3 + pad, std140 aligned).
type GPULight struct {
	Position [3]float32 // offset  0: world-space position (12 bytes)
	_pad0    uint32     // offset 12: padding for 16-byte alignment
	Color    [3]float32 // offset 16: RGB color (12 bytes)
	_pad1    uint32     // offset 28: padding for 16-byte alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	return buf
}
