package editor

import (
	"github.com/engine3d/engine3d/planes/core"
	"github.com/engine3d/engine3d/planes/gizmo"
	"github.com/engine3d/engine3d/planes/scene"
)

// Settings are read every tick; the owner may change them at any time between ticks.
type Settings struct {
	TranslateSnap float32
	RotateSnap    float32
}

func (s *Settings) Snapping() gizmo.Snapping {
	if s == nil {
		return gizmo.Snapping{}
	}
	return gizmo.Snapping{Translate: s.TranslateSnap, Rotate: s.RotateSnap}
}

// EditorState is everything one editor frame reads and mutates.
type EditorState struct {
	Camera    *core.Camera
	Registry  *scene.Registry
	Textures  *scene.TextureTable
	Selection *scene.Selection
	Gizmo     *gizmo.Gizmo
	Settings  *Settings

	ViewportW int
	ViewportH int

	// DefaultTexture is assigned to planes created with the add command.
	DefaultTexture int

	// axis whose engage failed while its key is still held; retried every frame
	pendingAxis core.Axis
	hasPending  bool

	frame uint64
}

func NewEditorState(capacity int, settings *Settings) (*EditorState, error) {
	reg, err := scene.NewRegistry(capacity)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &Settings{}
	}
	return &EditorState{
		Camera:    core.NewCamera(),
		Registry:  reg,
		Textures:  scene.NewTextureTable(),
		Selection: scene.NewSelection(),
		Gizmo:     gizmo.NewGizmo(),
		Settings:  settings,
	}, nil
}

// Frame is the number of completed ticks.
func (s *EditorState) Frame() uint64 {
	return s.frame
}
