package scene

import (
	"github.com/engine3d/engine3d/planes/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is a unit quad spanning local X and Z in [0,1], scaled and placed by its Transform.
type Plane struct {
	Name      string
	Transform core.Transform
	Texture   int
	UVTiling  float32
}

func NewPlane(name string, texture int) Plane {
	return Plane{
		Name:      name,
		Transform: core.NewTransform(),
		Texture:   texture,
		UVTiling:  1,
	}
}

func (p *Plane) Model() mgl32.Mat4 {
	return core.ModelMatrix(p.Transform)
}

// Normal is the world-space up vector of the quad.
func (p *Plane) Normal() mgl32.Vec3 {
	return core.RotateVec(p.Transform.Rotation, mgl32.Vec3{0, 1, 0})
}
