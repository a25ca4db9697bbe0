package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelMatrix(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 1, 3}

	p := ModelMatrix(tr).Mul4x1(mgl32.Vec4{1, 0, 1, 1}).Vec3()
	assert.True(t, vecClose(p, mgl32.Vec3{3, 2, 6}, 1e-6), "got %v", p)

	// scale applies before rotation
	tr.Rotation = mgl32.Vec3{0, 90, 0}
	p = ModelMatrix(tr).Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.True(t, vecClose(p, mgl32.Vec3{1, 2, 1}, 1e-5), "got %v", p)
}

func TestObjectToWorldMatchesModel(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{-4, 2, 7},
		Rotation: mgl32.Vec3{10, 20, 30},
		Scale:    mgl32.Vec3{2, 0.5, 3},
	}
	m := tr.ObjectToWorld()
	want := ModelMatrix(tr)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !closeEnough(m.At(i, j), want.At(i, j), 1e-6) {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestTransformComponents(t *testing.T) {
	tr := NewTransform()
	tr.SetComponent(ComponentRotation, mgl32.Vec3{10, 0, 0})
	tr.SetComponent(ComponentScale, mgl32.Vec3{2, 2, 2})
	tr.SetComponent(ComponentPosition, mgl32.Vec3{0, 1, 0})

	assert.Equal(t, mgl32.Vec3{10, 0, 0}, tr.Component(ComponentRotation))
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, tr.Component(ComponentScale))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, tr.Component(ComponentPosition))
}
