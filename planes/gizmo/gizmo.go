package gizmo

import (
	"github.com/chewxy/math32"
	"github.com/engine3d/engine3d/planes/core"
	"github.com/go-gl/mathgl/mgl32"
)

// maxRotateStep bounds each Euler extraction while rotating.
var maxRotateStep = mgl32.DegToRad(60)

type Kind int

const (
	KindTranslate Kind = iota
	KindRotate
	KindScale
)

func (k Kind) String() string {
	switch k {
	case KindTranslate:
		return "translate"
	case KindRotate:
		return "rotate"
	case KindScale:
		return "scale"
	}
	return "unknown"
}

// Component is the transform part a kind edits.
func (k Kind) Component() core.Component {
	switch k {
	case KindRotate:
		return core.ComponentRotation
	case KindScale:
		return core.ComponentScale
	default:
		return core.ComponentPosition
	}
}

// TransformMode is the armed tool. Kind is sticky; Axis and Active only mean something while a drag runs.
type TransformMode struct {
	Kind   Kind
	Axis   core.Axis
	Active bool
}

// Snapping holds the increments applied to the accumulated value. Zero disables snapping.
type Snapping struct {
	Translate float32 // translate and scale
	Rotate    float32 // degrees
}

// DragSession is the per-drag state. Accum is the unsnapped running value of the edited component.
type DragSession struct {
	Normal mgl32.Vec3
	Prev   mgl32.Vec3
	Accum  mgl32.Vec3

	// scale only: normal of the plane that collapses hits onto the axis line
	axisPlane mgl32.Vec3
}

type Gizmo struct {
	mode    TransformMode
	session DragSession
}

func NewGizmo() *Gizmo {
	return &Gizmo{}
}

func (g *Gizmo) Mode() TransformMode { return g.mode }

func (g *Gizmo) Active() bool { return g.mode.Active }

// Session returns the running drag, if any.
func (g *Gizmo) Session() (DragSession, bool) {
	if !g.mode.Active {
		return DragSession{}, false
	}
	return g.session, true
}

// SetKind switches the sticky tool. It is ignored while a drag is running.
func (g *Gizmo) SetKind(k Kind) bool {
	if g.mode.Active {
		return false
	}
	g.mode.Kind = k
	return true
}

// Engage starts a drag along axis for the current kind. It fails, leaving the gizmo idle, when the ray
// misses the constraint plane.
func (g *Gizmo) Engage(axis core.Axis, t *core.Transform, ray core.Ray) bool {
	if t == nil {
		return false
	}

	var normal, axisPlane mgl32.Vec3
	switch g.mode.Kind {
	case KindRotate:
		normal = core.AxisNormal(axis)
	case KindScale:
		pair := core.AxisOrthogonalPair(axis)
		pair[0] = core.RotateVec(t.Rotation, pair[0])
		pair[1] = core.RotateVec(t.Rotation, pair[1])
		i := faceOn(pair, ray.Direction)
		normal, axisPlane = pair[i], pair[1-i]
	default:
		pair := core.AxisOrthogonalPair(axis)
		normal = pair[faceOn(pair, ray.Direction)]
	}

	hit, ok := core.RayPlaneIntersect(normal, t.Position, ray.Origin, ray.Direction)
	if !ok {
		return false
	}

	g.mode.Axis = axis
	g.mode.Active = true
	g.session = DragSession{
		Normal:    normal,
		Prev:      hit,
		Accum:     t.Component(g.mode.Kind.Component()),
		axisPlane: axisPlane,
	}
	return true
}

// faceOn picks the pair member most parallel to the ray, i.e. the plane seen most face-on.
func faceOn(pair [2]mgl32.Vec3, dir mgl32.Vec3) int {
	if math32.Abs(pair[1].Dot(dir)) > math32.Abs(pair[0].Dot(dir)) {
		return 1
	}
	return 0
}

// Drag applies one frame of motion. A frame whose ray misses the plane or yields a non-finite result
// changes nothing and returns false.
func (g *Gizmo) Drag(t *core.Transform, ray core.Ray, snap Snapping) bool {
	if !g.mode.Active || t == nil {
		return false
	}

	hit, ok := core.RayPlaneIntersect(g.session.Normal, t.Position, ray.Origin, ray.Direction)
	if !ok {
		return false
	}

	switch g.mode.Kind {
	case KindRotate:
		return g.dragRotate(t, hit, snap.Rotate)
	case KindScale:
		return g.dragScale(t, hit, snap.Translate)
	default:
		return g.dragTranslate(t, hit, snap.Translate)
	}
}

func (g *Gizmo) dragTranslate(t *core.Transform, hit mgl32.Vec3, inc float32) bool {
	delta := hit.Sub(g.session.Prev)
	accum := g.session.Accum
	accum[g.mode.Axis] += delta[g.mode.Axis]

	pos := core.SnapVec3(accum, inc)
	if !core.IsFiniteVec3(pos) {
		return false
	}
	g.session.Accum = accum
	g.session.Prev = hit
	t.Position = pos
	return true
}

func (g *Gizmo) dragScale(t *core.Transform, hit mgl32.Vec3, inc float32) bool {
	origin := t.Position
	prev := core.ClosestPointOnPlane(g.session.Prev, origin, g.session.axisPlane)
	cur := core.ClosestPointOnPlane(hit, origin, g.session.axisPlane)

	// measure in the object's frame so the delta lands on the local axis
	localPrev := core.InverseRotateVec(t.Rotation, prev.Sub(origin))
	localCur := core.InverseRotateVec(t.Rotation, cur.Sub(origin))
	delta := localCur.Sub(localPrev)

	accum := g.session.Accum
	accum[g.mode.Axis] += delta[g.mode.Axis]

	scale := core.SnapVec3(accum, inc)
	if !core.IsFiniteVec3(scale) {
		return false
	}
	g.session.Accum = accum
	g.session.Prev = hit
	t.Scale = scale
	return true
}

func (g *Gizmo) dragRotate(t *core.Transform, hit mgl32.Vec3, inc float32) bool {
	from := g.session.Prev.Sub(t.Position)
	to := hit.Sub(t.Position)
	if from.Len() < 1e-6 || to.Len() < 1e-6 {
		return false
	}
	from = from.Normalize()
	to = to.Normalize()

	if from.ApproxEqual(to) {
		return true
	}

	axis := from.Cross(to)
	if axis.Len() < 1e-6 {
		return false
	}

	// Euler extraction only round-trips below 90 degrees, so large turns are split into equal steps.
	angle := math32.Acos(mgl32.Clamp(from.Dot(to), -1, 1))
	steps := math32.Ceil(angle / maxRotateStep)
	step := core.EulerFromMatrix(mgl32.HomogRotate3D(angle/steps, axis.Normalize()))
	euler := step.Mul(steps)
	if !core.IsFiniteVec3(euler) {
		return false
	}

	accum := g.session.Accum.Add(euler)
	g.session.Accum = accum
	g.session.Prev = hit
	t.Rotation = core.WrapEuler(core.SnapVec3(accum, inc))
	return true
}

// Release ends the drag. The transform keeps its last applied value.
func (g *Gizmo) Release() {
	g.mode.Active = false
	g.session = DragSession{}
}
