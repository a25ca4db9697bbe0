package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxPitch = 89.0
	MinPitch = -89.0
)

var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a yaw/pitch fly camera. Angles are in degrees.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	Near        float32
	Far         float32
	Aspect      float32
	Speed       float32
	Sensitivity float32
}

func NewCamera() *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 2, 6},
		Yaw:         -90,
		Pitch:       -15,
		FOV:         45,
		Near:        0.1,
		Far:         1000,
		Aspect:      2,
		Speed:       5,
		Sensitivity: 0.1,
	}
}

func (c *Camera) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(WorldUp).Normalize()
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// SetPitch clamps to [MinPitch, MaxPitch] so the view never flips over the poles.
func (c *Camera) SetPitch(pitch float32) {
	c.Pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// Rotate applies a mouse-look delta scaled by Sensitivity.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.SetPitch(c.Pitch - dy*c.Sensitivity)
}

// LookAt turns the camera toward target without moving it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() < 1e-6 {
		return
	}
	d = d.Normalize()
	c.Yaw = mgl32.RadToDeg(math32.Atan2(d.Z(), d.X()))
	c.SetPitch(mgl32.RadToDeg(math32.Asin(mgl32.Clamp(d.Y(), -1, 1))))
}

// Move translates along the camera basis; move holds (right, up, forward) weights.
func (c *Camera) Move(move mgl32.Vec3, dt float32) {
	dir := c.Right().Mul(move.X()).
		Add(WorldUp.Mul(move.Y())).
		Add(c.Front().Mul(move.Z()))
	if dir.Len() == 0 || dt <= 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(c.Speed * dt))
}

func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.Position
	return mgl32.LookAtV(eye, eye.Add(c.Front()), WorldUp)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ExtractFrustum extracts the 6 planes of the frustum from the view-projection matrix.
// Returns planes in order: Left, Right, Bottom, Top, Near, Far, normals pointing inside.
func ExtractFrustum(vp mgl32.Mat4) [6]mgl32.Vec4 {
	var planes [6]mgl32.Vec4

	row := func(r int) mgl32.Vec4 {
		return mgl32.Vec4{vp.At(r, 0), vp.At(r, 1), vp.At(r, 2), vp.At(r, 3)}
	}
	w := row(3)
	planes[0] = w.Add(row(0))
	planes[1] = w.Sub(row(0))
	planes[2] = w.Add(row(1))
	planes[3] = w.Sub(row(1))
	planes[4] = w.Add(row(2))
	planes[5] = w.Sub(row(2))

	for i := range planes {
		length := planes[i].Vec3().Len()
		if length > 0 {
			planes[i] = planes[i].Mul(1.0 / length)
		}
	}
	return planes
}

// AABBInFrustum reports whether the box is at least partly inside all six planes.
func AABBInFrustum(aabb [2]mgl32.Vec3, planes [6]mgl32.Vec4) bool {
	for _, plane := range planes {
		// most-inside corner along the plane normal
		var p mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane[axis] > 0 {
				p[axis] = aabb[1][axis]
			} else {
				p[axis] = aabb[0][axis]
			}
		}
		if plane.Vec3().Dot(p)+plane[3] < 0 {
			return false
		}
	}
	return true
}

// PlaneAABB returns the world bounds of a unit quad spanning local X and Z in [0,1].
func PlaneAABB(t Transform) [2]mgl32.Vec3 {
	m := t.ObjectToWorld()
	corners := [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1}}

	inf := float32(1e20)
	lo := mgl32.Vec3{inf, inf, inf}
	hi := mgl32.Vec3{-inf, -inf, -inf}
	for _, c := range corners {
		wc := m.Mul4x1(c.Vec4(1)).Vec3()
		for axis := 0; axis < 3; axis++ {
			lo[axis] = min(lo[axis], wc[axis])
			hi[axis] = max(hi[axis], wc[axis])
		}
	}
	return [2]mgl32.Vec3{lo, hi}
}
