package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Snap rounds v to the nearest multiple of inc. A non-positive increment disables snapping.
func Snap(v, inc float32) float32 {
	if inc <= 0 || math32.IsNaN(inc) || math32.IsInf(inc, 0) {
		return v
	}
	return math32.Round(v/inc) * inc
}

func SnapVec3(v mgl32.Vec3, inc float32) mgl32.Vec3 {
	return mgl32.Vec3{Snap(v.X(), inc), Snap(v.Y(), inc), Snap(v.Z(), inc)}
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// -tiny + 360 rounds up to 360 in float32
	if w >= 360 {
		w = 0
	}
	return w
}

func WrapEuler(e mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{WrapDegrees(e.X()), WrapDegrees(e.Y()), WrapDegrees(e.Z())}
}
