package editor

import (
	"fmt"

	"github.com/engine3d/engine3d/planes/core"
	"github.com/engine3d/engine3d/planes/gizmo"
)

type EventKind int

const (
	EventSelected EventKind = iota
	EventDeselected
	EventAdded
	EventDuplicated
	EventDeleted
	EventDragStart
	EventDragEnd
	EventModeChanged
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "selected"
	case EventDeselected:
		return "deselected"
	case EventAdded:
		return "added"
	case EventDuplicated:
		return "duplicated"
	case EventDeleted:
		return "deleted"
	case EventDragStart:
		return "drag_start"
	case EventDragEnd:
		return "drag_end"
	case EventModeChanged:
		return "mode_changed"
	case EventError:
		return "error"
	}
	return "unknown"
}

// Event reports something Tick did. Index is the plane it concerns, or -1.
type Event struct {
	Kind  EventKind
	Index int
	Gizmo gizmo.Kind
	Axis  core.Axis
	Err   error
}

func (e Event) String() string {
	switch e.Kind {
	case EventDragStart, EventDragEnd:
		return fmt.Sprintf("%s %s %s plane=%d", e.Kind, e.Gizmo, e.Axis, e.Index)
	case EventModeChanged:
		return fmt.Sprintf("%s %s", e.Kind, e.Gizmo)
	case EventError:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s plane=%d", e.Kind, e.Index)
}
