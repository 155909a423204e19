package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix mapping into the
// WebGPU clip space convention (depth in [0, 1]).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt creates a right-handed view matrix that positions and orients the
// camera. The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	lenSq := z0*z0 + z1*z1 + z2*z2
	if lenSq == 0 {
		lenSq = 1
	}
	invLen := 1.0 / math32.Sqrt(lenSq)
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	lenSq = x0*x0 + x1*x1 + x2*x2
	if lenSq == 0 {
		lenSq = 1
	}
	invLen = 1.0 / math32.Sqrt(lenSq)
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// QuatModelMatrix constructs a 4x4 column-major model matrix from a world
// position and a unit rotation quaternion (x, y, z, w).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - quat: rotation as a unit quaternion (x, y, z, w)
func QuatModelMatrix(out []float32, pos [3]float32, quat [4]float32) {
	x, y, z, w := quat[0], quat[1], quat[2], quat[3]

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	out[0] = 1 - 2*(yy+zz)
	out[1] = 2 * (xy + wz)
	out[2] = 2 * (xz - wy)
	out[3] = 0

	out[4] = 2 * (xy - wz)
	out[5] = 1 - 2*(xx+zz)
	out[6] = 2 * (yz + wx)
	out[7] = 0

	out[8] = 2 * (xz + wy)
	out[9] = 2 * (yz - wx)
	out[10] = 1 - 2*(xx+yy)
	out[11] = 0

	out[12] = pos[0]
	out[13] = pos[1]
	out[14] = pos[2]
	out[15] = 1
}

// AxisAngleQuat builds a unit quaternion (x, y, z, w) rotating by angle
// radians around the given axis. The axis does not need to be normalized;
// a zero axis yields the identity quaternion.
//
// Parameters:
//   - axis: rotation axis
//   - angle: rotation in radians
//
// Returns:
//   - [4]float32: the unit quaternion (x, y, z, w)
func AxisAngleQuat(axis [3]float32, angle float32) [4]float32 {
	length := Length3(axis)
	if length == 0 {
		return [4]float32{0, 0, 0, 1}
	}
	s := math32.Sin(angle/2) / length
	return [4]float32{axis[0] * s, axis[1] * s, axis[2] * s, math32.Cos(angle / 2)}
}

// Radians converts an angle in degrees to radians.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func Radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// RotateY rotates a 3D vector around the world Y axis by angle radians.
//
// Parameters:
//   - v: the vector to rotate
//   - angle: rotation in radians
//
// Returns:
//   - [3]float32: the rotated vector
func RotateY(v [3]float32, angle float32) [3]float32 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return [3]float32{
		c*v[0] + s*v[2],
		v[1],
		-s*v[0] + c*v[2],
	}
}

// Length3 returns the Euclidean length of a 3D vector.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - float32: the vector length
func Length3(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize3 returns the unit-length direction of a 3D vector.
// A zero vector is returned unchanged.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - [3]float32: the normalized vector
func Normalize3(v [3]float32) [3]float32 {
	length := Length3(v)
	if length == 0 {
		return v
	}
	inv := 1.0 / length
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Cross3 returns the cross product a x b.
//
// Parameters:
//   - a: left-hand vector
//   - b: right-hand vector
//
// Returns:
//   - [3]float32: the cross product
func Cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
