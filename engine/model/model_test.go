package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialFor(t *testing.T) {
	base := &Material{Name: "base"}
	crate := &Material{Name: "crate"}
	m := New("cube", Cube(1), base)
	m.Materials = append(m.Materials, crate)

	assert.Same(t, base, m.MaterialFor(m.Meshes[0]))

	m.Meshes[0].MaterialIndex = 1
	assert.Same(t, crate, m.MaterialFor(m.Meshes[0]))
}

func TestMaterialForOutOfRange(t *testing.T) {
	m := New("cube", Cube(1), &Material{Name: "base"})

	m.Meshes[0].MaterialIndex = 3
	assert.Nil(t, m.MaterialFor(m.Meshes[0]))

	m.Meshes[0].MaterialIndex = -1
	assert.Nil(t, m.MaterialFor(m.Meshes[0]))

	assert.Nil(t, m.MaterialFor(nil))
}

func TestNewWithoutMaterial(t *testing.T) {
	m := New("plane", Plane(1), nil)
	assert.Empty(t, m.Materials)
	assert.Nil(t, m.MaterialFor(m.Meshes[0]))
}
