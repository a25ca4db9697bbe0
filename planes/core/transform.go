package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places a plane in the world. Rotation holds Euler angles in degrees, applied X then Y
// then Z, each kept in [0, 360).
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// ModelMatrix composes T * Rx * Ry * Rz * S.
func ModelMatrix(t Transform) mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := RotationMatrix(t.Rotation)
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

func (t Transform) ObjectToWorld() mgl32.Mat4 {
	return ModelMatrix(t)
}

// Component returns the transform part a gizmo kind edits.
func (t Transform) Component(c Component) mgl32.Vec3 {
	switch c {
	case ComponentRotation:
		return t.Rotation
	case ComponentScale:
		return t.Scale
	default:
		return t.Position
	}
}

func (t *Transform) SetComponent(c Component, v mgl32.Vec3) {
	switch c {
	case ComponentRotation:
		t.Rotation = v
	case ComponentScale:
		t.Scale = v
	default:
		t.Position = v
	}
}

type Component int

const (
	ComponentPosition Component = iota
	ComponentRotation
	ComponentScale
)
