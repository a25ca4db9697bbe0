package engine3d

import (
	"github.com/engine3d/engine3d/planes/editor"
)

const editorStatsEvery = 300

// EditorModule installs the plane editor: its state, the live snap settings, the per-frame input
// snapshot and the render payload, plus the system that ticks the editor once per frame.
type EditorModule struct {
	Config Config
}

func (mod EditorModule) Install(app *App, cmd *Commands) {
	state, err := newEditorState(mod.Config)
	if err != nil {
		cmd.Logger().Errorf("Editor setup failed: %v", err)
		panic(err)
	}

	cmd.AddResources(
		state,
		state.Settings,
		&editor.InputSnapshot{},
		&editor.RenderPayload{Selected: -1},
		NewProfiler(),
	)
	app.UseSystem(
		System(editorSystem).
			InStage(Update),
	)
	cmd.Logger().Infof("Editor ready: capacity %d, %d textures", state.Registry.Capacity(), state.Textures.Len())
}

func newEditorState(cfg Config) (*editor.EditorState, error) {
	state, err := editor.NewEditorState(cfg.Scene.Capacity, cfg.Settings())
	if err != nil {
		return nil, err
	}

	cam := state.Camera
	cam.Position = cfg.Camera.Position.Vec3()
	cam.Yaw = cfg.Camera.Yaw
	cam.SetPitch(cfg.Camera.Pitch)
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	if cfg.Camera.Target != nil {
		cam.LookAt(cfg.Camera.Target.Vec3())
	}
	cam.SetViewport(cfg.Window.Width, cfg.Window.Height)
	state.ViewportW, state.ViewportH = cfg.Window.Width, cfg.Window.Height

	for _, tex := range cfg.Textures {
		state.Textures.Register(tex.Name, tex.Path)
	}
	if state.Textures.Len() == 0 {
		state.Textures.Register("default", "")
	}
	return state, nil
}

func editorSystem(
	cmd *Commands,
	t *Time,
	state *editor.EditorState,
	in *editor.InputSnapshot,
	payload *editor.RenderPayload,
	prof *Profiler,
) {
	prof.BeginScope("tick")
	*payload = editor.Tick(state, *in, t.Seconds())
	prof.EndScope("tick")

	prof.SetCount("planes", len(payload.Planes))
	prof.SetCount("visible", payload.Visible())
	prof.SetCount("lines", len(payload.Lines))

	logger := cmd.Logger()
	for _, e := range payload.Events {
		switch e.Kind {
		case editor.EventError:
			logger.Errorf("Editor: %s", e)
		case editor.EventAdded, editor.EventDuplicated, editor.EventDeleted:
			logger.Infof("Editor: %s", e)
		default:
			logger.Debugf("Editor: %s", e)
		}
	}

	if logger.DebugEnabled() && payload.Frame%editorStatsEvery == 0 {
		logger.Debugf("Editor frame %d\n%s", payload.Frame, prof.StatsString())
	}
}
