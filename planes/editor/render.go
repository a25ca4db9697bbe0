package editor

import (
	"github.com/engine3d/engine3d/planes/core"
	"github.com/engine3d/engine3d/planes/gizmo"
	"github.com/engine3d/engine3d/planes/scene"
	"github.com/go-gl/mathgl/mgl32"
)

const gizmoAxisLength = 1.5

var (
	ColorAxisX     = [4]float32{1, 0.2, 0.2, 1}
	ColorAxisY     = [4]float32{0.2, 1, 0.2, 1}
	ColorAxisZ     = [4]float32{0.2, 0.4, 1, 1}
	ColorHighlight = [4]float32{1, 1, 0, 1}
	ColorDragRay   = [4]float32{1, 1, 1, 1}
)

// PlaneView is what the renderer needs to draw one plane.
type PlaneView struct {
	Index    int
	Model    mgl32.Mat4
	Texture  int
	UVTiling float32
	Selected bool
	Culled   bool // outside the view frustum
}

// GizmoView describes the running drag. Point is the last constraint-plane hit.
type GizmoView struct {
	Active bool
	Kind   gizmo.Kind
	Axis   core.Axis
	Origin mgl32.Vec3
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

type DebugLine struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
	Color [4]float32
}

func NewGizmoLine(start, end mgl32.Vec3, color [4]float32) DebugLine {
	return DebugLine{
		Start: start,
		End:   end,
		Color: color,
	}
}

// RenderPayload is the read-only output of one tick.
type RenderPayload struct {
	Frame          uint64
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	Planes         []PlaneView
	Selected       int
	Mode           gizmo.TransformMode
	Gizmo          GizmoView
	Lines          []DebugLine
	Events         []Event
}

// Visible counts planes not culled.
func (p *RenderPayload) Visible() int {
	n := 0
	for _, pv := range p.Planes {
		if !pv.Culled {
			n++
		}
	}
	return n
}

func buildPayload(state *EditorState, events []Event) RenderPayload {
	view := state.Camera.ViewMatrix()
	proj := state.Camera.ProjectionMatrix()
	frustum := core.ExtractFrustum(proj.Mul4(view))
	selected := state.Selection.Index()

	payload := RenderPayload{
		Frame:          state.frame,
		View:           view,
		Projection:     proj,
		CameraPosition: state.Camera.Position,
		Planes:         make([]PlaneView, 0, state.Registry.Count()),
		Selected:       selected,
		Mode:           state.Gizmo.Mode(),
		Events:         events,
	}

	state.Registry.Each(func(i int, p *scene.Plane) bool {
		payload.Planes = append(payload.Planes, PlaneView{
			Index:    i,
			Model:    p.Model(),
			Texture:  p.Texture,
			UVTiling: p.UVTiling,
			Selected: i == selected,
			Culled:   !core.AABBInFrustum(core.PlaneAABB(p.Transform), frustum),
		})
		return true
	})

	obj := state.Selection.Object()
	if obj == nil {
		return payload
	}

	mode := state.Gizmo.Mode()
	axisColors := [3][4]float32{ColorAxisX, ColorAxisY, ColorAxisZ}
	for _, axis := range []core.Axis{core.AxisX, core.AxisY, core.AxisZ} {
		dir := core.AxisNormal(axis)
		if mode.Kind == gizmo.KindScale {
			dir = core.RotateVec(obj.Transform.Rotation, dir)
		}
		color := axisColors[axis]
		if mode.Active && mode.Axis == axis {
			color = ColorHighlight
		}
		start := obj.Transform.Position
		payload.Lines = append(payload.Lines, NewGizmoLine(start, start.Add(dir.Mul(gizmoAxisLength)), color))
	}

	if s, ok := state.Gizmo.Session(); ok {
		payload.Gizmo = GizmoView{
			Active: true,
			Kind:   mode.Kind,
			Axis:   mode.Axis,
			Origin: obj.Transform.Position,
			Point:  s.Prev,
			Normal: s.Normal,
		}
		payload.Lines = append(payload.Lines, NewGizmoLine(obj.Transform.Position, s.Prev, ColorDragRay))
	}

	return payload
}
