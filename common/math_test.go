package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// mulVec4 applies a column-major 4x4 matrix to a vec4.
func mulVec4(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[0*4+row]*v[0] + m[1*4+row]*v[1] + m[2*4+row]*v[2] + m[3*4+row]*v[3]
	}
	return out
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)

	v := [4]float32{1, 2, 3, 1}
	assert.Equal(t, v, mulVec4(m, v))
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i)
	}

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)
	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4Translation(t *testing.T) {
	// Two translations compose by adding their offsets.
	ta := make([]float32, 16)
	tb := make([]float32, 16)
	Identity(ta)
	Identity(tb)
	ta[12], ta[13], ta[14] = 1, 2, 3
	tb[12], tb[13], tb[14] = 10, 20, 30

	out := make([]float32, 16)
	Mul4(out, ta, tb)

	got := mulVec4(out, [4]float32{0, 0, 0, 1})
	assert.Equal(t, [4]float32{11, 22, 33, 1}, got)
}

func TestMul4Aliasing(t *testing.T) {
	// out may alias an input.
	a := make([]float32, 16)
	Identity(a)
	a[12] = 5

	Mul4(a, a, a)
	got := mulVec4(a, [4]float32{0, 0, 0, 1})
	assert.Equal(t, float32(10), got[0])
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, math32.Pi/4, 16.0/9.0, 0.1, 100)

	// A point on the near plane maps to depth 0 after perspective divide.
	near := mulVec4(m, [4]float32{0, 0, -0.1, 1})
	assert.InDelta(t, 0, near[2]/near[3], 1e-5)

	// A point on the far plane maps to depth 1.
	far := mulVec4(m, [4]float32{0, 0, -100, 1})
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)
}

func TestLookAtTransformsTargetToViewAxis(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	eye := mulVec4(m, [4]float32{0, 0, 5, 1})
	assert.InDelta(t, 0, eye[0], 1e-5)
	assert.InDelta(t, 0, eye[1], 1e-5)
	assert.InDelta(t, 0, eye[2], 1e-5)

	// The target lies straight ahead on the negative view Z axis.
	target := mulVec4(m, [4]float32{0, 0, 0, 1})
	assert.InDelta(t, 0, target[0], 1e-5)
	assert.InDelta(t, 0, target[1], 1e-5)
	assert.InDelta(t, -5, target[2], 1e-5)
}

func TestQuatModelMatrixIdentityRotation(t *testing.T) {
	m := make([]float32, 16)
	QuatModelMatrix(m, [3]float32{1, 2, 3}, [4]float32{0, 0, 0, 1})

	got := mulVec4(m, [4]float32{0, 0, 0, 1})
	assert.Equal(t, [4]float32{1, 2, 3, 1}, got)
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[5])
	assert.Equal(t, float32(1), m[10])
}

func TestQuatModelMatrixRotatesAroundY(t *testing.T) {
	q := AxisAngleQuat([3]float32{0, 1, 0}, math32.Pi/2)
	m := make([]float32, 16)
	QuatModelMatrix(m, [3]float32{0, 0, 0}, q)

	// +X rotates to -Z under a quarter turn around Y.
	got := mulVec4(m, [4]float32{1, 0, 0, 1})
	assert.InDelta(t, 0, got[0], 1e-5)
	assert.InDelta(t, 0, got[1], 1e-5)
	assert.InDelta(t, -1, got[2], 1e-5)
}

func TestAxisAngleQuatUnitLength(t *testing.T) {
	q := AxisAngleQuat([3]float32{3, 0, 0}, 1.3)
	length := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	assert.InDelta(t, 1, length, 1e-5)

	assert.Equal(t, [4]float32{0, 0, 0, 1}, AxisAngleQuat([3]float32{}, 2))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math32.Pi/4, Radians(45), 1e-6)
	assert.InDelta(t, math32.Pi, Radians(180), 1e-6)
	assert.Equal(t, float32(0), Radians(0))
}

func TestRotateY(t *testing.T) {
	got := RotateY([3]float32{1, 5, 0}, math32.Pi/2)
	assert.InDelta(t, 0, got[0], 1e-5)
	assert.Equal(t, float32(5), got[1], "y component is untouched")
	assert.InDelta(t, -1, got[2], 1e-5)

	// The XZ radius is preserved.
	v := [3]float32{3, 1, 4}
	r := RotateY(v, 0.7)
	before := math32.Sqrt(v[0]*v[0] + v[2]*v[2])
	after := math32.Sqrt(r[0]*r[0] + r[2]*r[2])
	assert.InDelta(t, before, after, 1e-4)
}

func TestVectorHelpers(t *testing.T) {
	assert.Equal(t, float32(5), Length3([3]float32{3, 4, 0}))

	n := Normalize3([3]float32{0, 0, 9})
	assert.Equal(t, [3]float32{0, 0, 1}, n)
	assert.Equal(t, [3]float32{}, Normalize3([3]float32{}))

	assert.Equal(t, [3]float32{0, 0, 1}, Cross3([3]float32{1, 0, 0}, [3]float32{0, 1, 0}))
}

func TestSliceToBytes(t *testing.T) {
	data := []uint32{0x04030201, 0x08070605}
	b := SliceToBytes(data)
	assert.Len(t, b, 8)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)

	assert.Nil(t, SliceToBytes([]uint32(nil)))
}

func TestStructToBytes(t *testing.T) {
	type pair struct {
		A uint32
		B uint32
	}
	p := pair{A: 1, B: 2}
	b := StructToBytes(&p)
	assert.Len(t, b, 8)
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, byte(2), b[4])
}
