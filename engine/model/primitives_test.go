package model

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestGPUVertexSizeMatchesMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		TexCoord: [2]float32{0.5, 0.25},
		Normal:   [3]float32{0, 1, 0},
	}
	assert.Equal(t, 32, v.Size())
	assert.Len(t, v.Marshal(), 32)
}

func TestCubeGeometry(t *testing.T) {
	mesh := Cube(2.0)

	assert.Len(t, mesh.Vertices, 24)
	assert.Len(t, mesh.Indices, 36)
	assert.Equal(t, uint32(36), mesh.IndexCount())

	for _, v := range mesh.Vertices {
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, math32.Abs(v.Position[axis]), float32(1.0))
		}
		length := math32.Sqrt(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2])
		assert.InDelta(t, 1.0, length, 1e-6)
	}

	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestPlaneGeometry(t *testing.T) {
	mesh := Plane(3.0)

	assert.Len(t, mesh.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	for _, v := range mesh.Vertices {
		assert.Equal(t, [3]float32{0, 0, 1}, v.Normal)
		assert.Equal(t, float32(3.0), v.Position[2])
	}
}

func TestSphereGeometry(t *testing.T) {
	const radius = float32(2.5)
	mesh := Sphere(radius, 16, 8)

	assert.Len(t, mesh.Vertices, 17*9)

	for _, v := range mesh.Vertices {
		dist := math32.Sqrt(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2])
		assert.InDelta(t, radius, dist, 1e-4)

		length := math32.Sqrt(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2])
		assert.InDelta(t, 1.0, length, 1e-4)

		assert.GreaterOrEqual(t, v.TexCoord[0], float32(0.0))
		assert.LessOrEqual(t, v.TexCoord[0], float32(1.0))
	}

	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestSphereClampsDegenerateCounts(t *testing.T) {
	mesh := Sphere(1.0, 0, 0)
	assert.NotEmpty(t, mesh.Vertices)
	assert.NotEmpty(t, mesh.Indices)
}
