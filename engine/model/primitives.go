package model

import (
	"github.com/chewxy/math32"
)

// Cube builds an axis-aligned cube mesh centered at the origin with the
// given edge length. Each face has its own four vertices so normals stay
// flat across the face.
//
// Parameters:
//   - size: the edge length of the cube
//
// Returns:
//   - *Mesh: the cube geometry, 24 vertices and 36 indices
func Cube(size float32) *Mesh {
	h := size / 2.0

	faces := []struct {
		normal [3]float32
		right  [3]float32
		up     [3]float32
	}{
		{normal: [3]float32{0, 0, 1}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, right: [3]float32{-1, 0, 0}, up: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, right: [3]float32{0, 0, -1}, up: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, right: [3]float32{0, 0, 1}, up: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 0, 1}},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range faces {
		base := uint32(len(vertices))
		corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		for c, corner := range corners {
			var pos [3]float32
			for axis := 0; axis < 3; axis++ {
				pos[axis] = h*f.normal[axis] + h*corner[0]*f.right[axis] + h*corner[1]*f.up[axis]
			}
			vertices = append(vertices, GPUVertex{
				Position: pos,
				TexCoord: uvs[c],
				Normal:   f.normal,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &Mesh{
		Name:     "cube",
		Vertices: vertices,
		Indices:  indices,
	}
}

// Plane builds a single front-facing quad in the XY plane at z = scale,
// spanning [-scale, scale] on both axes.
//
// Parameters:
//   - scale: the half-extent of the quad
//
// Returns:
//   - *Mesh: the quad geometry, 4 vertices and 6 indices
func Plane(scale float32) *Mesh {
	vertices := []GPUVertex{
		{Position: [3]float32{-scale, -scale, scale}, TexCoord: [2]float32{0, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{scale, -scale, scale}, TexCoord: [2]float32{1, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{scale, scale, scale}, TexCoord: [2]float32{1, 1}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{-scale, scale, scale}, TexCoord: [2]float32{0, 1}, Normal: [3]float32{0, 0, 1}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	return &Mesh{
		Name:     "plane",
		Vertices: vertices,
		Indices:  indices,
	}
}

// Sphere builds a UV sphere centered at the origin. Rows of vertices run
// pole to pole in stacks, each row holding sectorCount+1 vertices so the
// texture seam has its own column.
//
// Parameters:
//   - radius: the sphere radius
//   - sectorCount: the number of longitudinal segments (minimum 3)
//   - stackCount: the number of latitudinal segments (minimum 2)
//
// Returns:
//   - *Mesh: the sphere geometry
func Sphere(radius float32, sectorCount, stackCount uint32) *Mesh {
	if sectorCount < 3 {
		sectorCount = 3
	}
	if stackCount < 2 {
		stackCount = 2
	}

	lengthInv := 1.0 / radius
	sectorStep := 2.0 * math32.Pi / float32(sectorCount)
	stackStep := math32.Pi / float32(stackCount)

	vertices := make([]GPUVertex, 0, (stackCount+1)*(sectorCount+1))
	for i := uint32(0); i <= stackCount; i++ {
		stackAngle := math32.Pi/2.0 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := uint32(0); j <= sectorCount; j++ {
			sectorAngle := float32(j) * sectorStep
			x := xy * math32.Cos(sectorAngle)
			y := xy * math32.Sin(sectorAngle)

			vertices = append(vertices, GPUVertex{
				Position: [3]float32{x, y, z},
				TexCoord: [2]float32{float32(j) / float32(sectorCount), float32(i) / float32(stackCount)},
				Normal:   [3]float32{x * lengthInv, y * lengthInv, z * lengthInv},
			})
		}
	}

	// Two triangles per quad, except the single-triangle rows touching
	// the poles.
	indices := make([]uint32, 0, stackCount*sectorCount*6)
	for i := uint32(0); i < stackCount; i++ {
		k1 := i * (sectorCount + 1)
		k2 := k1 + sectorCount + 1

		for j := uint32(0); j < sectorCount; j++ {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stackCount-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}

	return &Mesh{
		Name:     "sphere",
		Vertices: vertices,
		Indices:  indices,
	}
}
