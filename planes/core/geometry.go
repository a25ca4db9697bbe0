package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the smallest |dot(normal, dir)| accepted by RayPlaneIntersect.
const parallelEpsilon = 1e-6

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayPlaneIntersect returns the point where the ray crosses the plane through planePoint with the
// given normal. Rays parallel to the plane, hits behind the origin and non-finite results fail.
func RayPlaneIntersect(planeNormal, planePoint, rayOrigin, rayDir mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := planeNormal.Dot(rayDir)
	if math32.Abs(denom) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}

	t := planePoint.Sub(rayOrigin).Dot(planeNormal) / denom
	if t <= 0 || math32.IsInf(t, 0) || math32.IsNaN(t) {
		return mgl32.Vec3{}, false
	}

	hit := rayOrigin.Add(rayDir.Mul(t))
	if !IsFiniteVec3(hit) {
		return mgl32.Vec3{}, false
	}
	return hit, true
}

// ClosestPointOnPlane projects point orthogonally onto the plane.
func ClosestPointOnPlane(point, planePoint, planeNormal mgl32.Vec3) mgl32.Vec3 {
	if planeNormal.Len() < parallelEpsilon {
		return point
	}
	n := planeNormal.Normalize()
	dist := point.Sub(planePoint).Dot(n)
	return point.Sub(n.Mul(dist))
}

func AxisNormal(axis Axis) mgl32.Vec3 {
	switch axis {
	case AxisY:
		return mgl32.Vec3{0, 1, 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// AxisOrthogonalPair returns the two basis vectors spanning the plane perpendicular to axis.
func AxisOrthogonalPair(axis Axis) [2]mgl32.Vec3 {
	switch axis {
	case AxisY:
		return [2]mgl32.Vec3{{1, 0, 0}, {0, 0, 1}}
	case AxisZ:
		return [2]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}}
	default:
		return [2]mgl32.Vec3{{0, 1, 0}, {0, 0, 1}}
	}
}

// RotationMatrix builds Rx * Ry * Rz from Euler angles in degrees.
func RotationMatrix(euler mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(euler.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(euler.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(euler.Z()))
	return rx.Mul4(ry).Mul4(rz)
}

// EulerFromMatrix decomposes a rotation built as Rx * Ry * Rz back into degrees.
// At the poles (|m02| ~ 1) Z is pinned to zero and X carries the remaining rotation.
func EulerFromMatrix(m mgl32.Mat4) mgl32.Vec3 {
	m02 := mgl32.Clamp(m.At(0, 2), -1, 1)
	y := math32.Asin(m02)

	var x, z float32
	if math32.Abs(m02) < 0.9999 {
		x = math32.Atan2(-m.At(1, 2), m.At(2, 2))
		z = math32.Atan2(-m.At(0, 1), m.At(0, 0))
	} else {
		x = math32.Atan2(m.At(2, 1), m.At(1, 1))
		z = 0
	}

	return mgl32.Vec3{mgl32.RadToDeg(x), mgl32.RadToDeg(y), mgl32.RadToDeg(z)}
}

// RotateVec applies the Euler rotation to v.
func RotateVec(euler, v mgl32.Vec3) mgl32.Vec3 {
	return RotationMatrix(euler).Mul4x1(v.Vec4(0)).Vec3()
}

// InverseRotateVec applies the inverse Euler rotation to v (rotation matrices are orthonormal, so the
// transpose is the inverse).
func InverseRotateVec(euler, v mgl32.Vec3) mgl32.Vec3 {
	return RotationMatrix(euler).Transpose().Mul4x1(v.Vec4(0)).Vec3()
}

func IsFiniteVec3(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
