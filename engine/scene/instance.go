package scene

import (
	"github.com/tern3d/tern/common"
)

// Instance is one positioned and rotated copy of a node's mesh. Instances
// are fixed after scene construction; per-frame motion lives in node locals
// instead.
type Instance struct {
	// Position is the instance's world-space translation.
	Position [3]float32

	// Rotation is the instance's orientation as a quaternion (x, y, z, w).
	Rotation [4]float32
}

// GPU flattens the instance into its GPU transform.
//
// Returns:
//   - GPUInstance: the instance's model matrix payload
func (in *Instance) GPU() GPUInstance {
	var g GPUInstance
	common.QuatModelMatrix(g.Model[:], in.Position, in.Rotation)
	return g
}

// FlattenInstances marshals every instance transform into one contiguous
// buffer for upload as an instance vertex buffer.
//
// Parameters:
//   - instances: the instances to flatten
//
// Returns:
//   - []byte: len(instances) * 64 bytes of packed model matrices
func FlattenInstances(instances []Instance) []byte {
	buf := make([]byte, 0, len(instances)*64)
	for i := range instances {
		g := instances[i].GPU()
		buf = append(buf, g.Marshal()...)
	}
	return buf
}
