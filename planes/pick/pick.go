package pick

import (
	"github.com/engine3d/engine3d/planes/core"
	"github.com/engine3d/engine3d/planes/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ScreenToWorldRay unprojects a window pixel (origin top-left) into a normalized world-space direction.
// It fails for an empty viewport, singular matrices or a degenerate result.
func ScreenToWorldRay(px, py float32, width, height int, view, proj mgl32.Mat4) (mgl32.Vec3, bool) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec3{}, false
	}

	// Normalized Device Coordinates
	nx := (2.0*px)/float32(width) - 1.0
	ny := 1.0 - (2.0*py)/float32(height) // Flip Y for NDC

	if proj.Det() == 0 || view.Det() == 0 {
		return mgl32.Vec3{}, false
	}

	eye := proj.Inv().Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	// pin to a direction pointing into the screen
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}

	dir := view.Inv().Mul4x1(eye).Vec3()
	if !core.IsFiniteVec3(dir) || dir.Len() < 1e-9 {
		return mgl32.Vec3{}, false
	}
	return dir.Normalize(), true
}

// RayFromCamera builds the pick ray for a pixel; the origin is the camera position.
func RayFromCamera(cam *core.Camera, px, py float32, width, height int) (core.Ray, bool) {
	dir, ok := ScreenToWorldRay(px, py, width, height, cam.ViewMatrix(), cam.ProjectionMatrix())
	if !ok {
		return core.Ray{}, false
	}
	return core.Ray{Origin: cam.Position, Direction: dir}, true
}

type Hit struct {
	Index    int
	Point    mgl32.Vec3
	Local    mgl32.Vec3
	Distance float32
}

// Pick returns the index of the nearest plane hit by the ray.
func Pick(reg *scene.Registry, origin, dir mgl32.Vec3) (int, bool) {
	hit, ok := PickHit(reg, origin, dir)
	if !ok {
		return -1, false
	}
	return hit.Index, true
}

// PickHit tests every plane and keeps the nearest hit. Equal distances keep the lower index.
func PickHit(reg *scene.Registry, origin, dir mgl32.Vec3) (Hit, bool) {
	closest := float32(1e20)
	best := Hit{Index: -1}
	found := false

	reg.Each(func(i int, p *scene.Plane) bool {
		h, ok := hitPlane(p, origin, dir)
		if !ok {
			return true
		}
		if h.Distance < closest {
			closest = h.Distance
			h.Index = i
			best = h
			found = true
		}
		return true
	})

	return best, found
}

func hitPlane(p *scene.Plane, origin, dir mgl32.Vec3) (Hit, bool) {
	t := p.Transform
	point, ok := core.RayPlaneIntersect(p.Normal(), t.Position, origin, dir)
	if !ok {
		return Hit{}, false
	}

	local := core.InverseRotateVec(t.Rotation, point.Sub(t.Position))
	if !within(local.X(), t.Scale.X()) || !within(local.Z(), t.Scale.Z()) {
		return Hit{}, false
	}

	return Hit{
		Point:    point,
		Local:    local,
		Distance: point.Sub(origin).Len(),
	}, true
}

// within tests v against [0, s], or [s, 0] for mirrored planes.
func within(v, s float32) bool {
	return v >= min(0, s) && v <= max(0, s)
}
