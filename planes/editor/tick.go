package editor

import (
	"github.com/engine3d/engine3d/planes/core"
	"github.com/engine3d/engine3d/planes/gizmo"
	"github.com/engine3d/engine3d/planes/pick"
	"github.com/engine3d/engine3d/planes/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// spawnDistance is how far in front of the camera a new plane lands when the view misses the ground.
const spawnDistance = 3

// Tick runs one editor frame: camera, tool mode, commands, click selection, then the gizmo drag.
// All mutation happens before the payload is built.
func Tick(state *EditorState, in InputSnapshot, dt float32) RenderPayload {
	var events []Event
	emit := func(e Event) { events = append(events, e) }

	if in.ViewportW > 0 && in.ViewportH > 0 {
		state.ViewportW, state.ViewportH = in.ViewportW, in.ViewportH
		state.Camera.SetViewport(in.ViewportW, in.ViewportH)
	}

	updateCamera(state, in, dt)
	updateMode(state, in, emit)
	runCommands(state, in, emit)

	ray, rayOK := pick.RayFromCamera(state.Camera, in.MouseX, in.MouseY, state.ViewportW, state.ViewportH)

	if in.Buttons.Select.Pressed && !state.Gizmo.Active() && rayOK {
		clickSelect(state, ray, emit)
	}

	updateDrag(state, in, ray, rayOK, emit)

	state.frame++
	return buildPayload(state, events)
}

func updateCamera(state *EditorState, in InputSnapshot, dt float32) {
	b := &in.Buttons
	if b.Look.Down {
		state.Camera.Rotate(in.MouseDX, in.MouseDY)
	}

	var move mgl32.Vec3
	if b.MoveForward.Down {
		move[2] += 1
	}
	if b.MoveBack.Down {
		move[2] -= 1
	}
	if b.MoveRight.Down {
		move[0] += 1
	}
	if b.MoveLeft.Down {
		move[0] -= 1
	}
	if b.MoveUp.Down {
		move[1] += 1
	}
	if b.MoveDown.Down {
		move[1] -= 1
	}
	state.Camera.Move(move, dt)
}

func updateMode(state *EditorState, in InputSnapshot, emit func(Event)) {
	b := &in.Buttons
	kind, ok := gizmo.KindTranslate, false
	switch {
	case b.ModeTranslate.Pressed:
		kind, ok = gizmo.KindTranslate, true
	case b.ModeRotate.Pressed:
		kind, ok = gizmo.KindRotate, true
	case b.ModeScale.Pressed:
		kind, ok = gizmo.KindScale, true
	}
	if !ok || kind == state.Gizmo.Mode().Kind {
		return
	}
	if state.Gizmo.SetKind(kind) {
		emit(Event{Kind: EventModeChanged, Index: -1, Gizmo: kind})
	}
}

func runCommands(state *EditorState, in InputSnapshot, emit func(Event)) {
	b := &in.Buttons

	if b.Add.Pressed {
		addPlane(state, emit)
	}

	if b.Duplicate.Pressed && state.Selection.Valid(state.Registry) {
		src := state.Selection.Index()
		h, err := state.Registry.Duplicate(src)
		if err != nil {
			emit(Event{Kind: EventError, Index: src, Err: err})
		} else {
			endDrag(state, emit)
			selectIndex(state, h.Index, emit)
			emit(Event{Kind: EventDuplicated, Index: h.Index})
		}
	}

	if b.Delete.Pressed && state.Selection.Valid(state.Registry) {
		endDrag(state, emit)
		idx := state.Selection.Index()
		rel, err := state.Registry.Remove(idx)
		if err != nil {
			emit(Event{Kind: EventError, Index: idx, Err: err})
		} else {
			state.Selection.OnRemove(idx, rel, state.Registry)
			emit(Event{Kind: EventDeleted, Index: idx})
		}
	}

	if b.Deselect.Pressed && state.Selection.HasSelection() {
		endDrag(state, emit)
		idx := state.Selection.Index()
		state.Selection.Clear()
		emit(Event{Kind: EventDeselected, Index: idx})
	}
}

// addPlane drops a new plane where the view meets the ground, or in front of the camera.
func addPlane(state *EditorState, emit func(Event)) {
	cam := state.Camera
	pos, ok := core.RayPlaneIntersect(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, cam.Position, cam.Front())
	if !ok || pos.Sub(cam.Position).Len() > cam.Far {
		pos = core.Ray{Origin: cam.Position, Direction: cam.Front()}.At(spawnDistance)
	}

	p := scene.NewPlane("plane", state.DefaultTexture)
	p.Transform.Position = pos
	h, err := state.Registry.Add(p)
	if err != nil {
		emit(Event{Kind: EventError, Index: -1, Err: err})
		return
	}
	endDrag(state, emit)
	selectIndex(state, h.Index, emit)
	emit(Event{Kind: EventAdded, Index: h.Index})
}

func selectIndex(state *EditorState, index int, emit func(Event)) {
	state.hasPending = false
	if err := state.Selection.Select(state.Registry, index); err != nil {
		emit(Event{Kind: EventError, Index: index, Err: err})
		return
	}
	emit(Event{Kind: EventSelected, Index: index})
}

func clickSelect(state *EditorState, ray core.Ray, emit func(Event)) {
	idx, ok := pick.Pick(state.Registry, ray.Origin, ray.Direction)
	if ok {
		if idx != state.Selection.Index() || !state.Selection.Valid(state.Registry) {
			selectIndex(state, idx, emit)
		}
		return
	}
	if state.Selection.HasSelection() {
		prev := state.Selection.Index()
		state.Selection.Clear()
		emit(Event{Kind: EventDeselected, Index: prev})
	}
}

func endDrag(state *EditorState, emit func(Event)) {
	state.hasPending = false
	if !state.Gizmo.Active() {
		return
	}
	mode := state.Gizmo.Mode()
	state.Gizmo.Release()
	emit(Event{Kind: EventDragEnd, Index: state.Selection.Index(), Gizmo: mode.Kind, Axis: mode.Axis})
}

func axisButton(b *Buttons, axis core.Axis) *Button {
	switch axis {
	case core.AxisY:
		return &b.AxisY
	case core.AxisZ:
		return &b.AxisZ
	default:
		return &b.AxisX
	}
}

// updateDrag engages, drives and releases the gizmo. The first axis key to engage owns the drag until
// it is released; other axis keys are ignored meanwhile.
func updateDrag(state *EditorState, in InputSnapshot, ray core.Ray, rayOK bool, emit func(Event)) {
	b := &in.Buttons

	if !state.Selection.Valid(state.Registry) {
		endDrag(state, emit)
		return
	}
	obj := state.Selection.Object()

	if state.Gizmo.Active() {
		if !axisButton(b, state.Gizmo.Mode().Axis).Down {
			endDrag(state, emit)
			return
		}
		if rayOK {
			state.Gizmo.Drag(&obj.Transform, ray, state.Settings.Snapping())
		}
		return
	}

	if state.hasPending && !axisButton(b, state.pendingAxis).Down {
		state.hasPending = false
	}

	axis, ok := core.AxisX, false
	for _, a := range []core.Axis{core.AxisX, core.AxisY, core.AxisZ} {
		if axisButton(b, a).Pressed {
			axis, ok = a, true
			break
		}
	}
	if !ok && state.hasPending {
		axis, ok = state.pendingAxis, true
	}
	if !ok {
		return
	}

	if rayOK && state.Gizmo.Engage(axis, &obj.Transform, ray) {
		state.hasPending = false
		mode := state.Gizmo.Mode()
		emit(Event{Kind: EventDragStart, Index: state.Selection.Index(), Gizmo: mode.Kind, Axis: mode.Axis})
		return
	}
	state.pendingAxis, state.hasPending = axis, true
}
