package engine3d

import (
	"reflect"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the single GLFW window shared by input and the renderer.
type WindowState struct {
	windowGlfw *glfw.Window
	Width      int
	Height     int
	Title      string
}

// PlatformWindowModule creates the WindowState resource if missing.
// Install is idempotent so several modules can depend on it.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewPlatformWindow(cfg WindowConfig) PlatformWindowModule {
	m := PlatformWindowModule{Width: cfg.Width, Height: cfg.Height, Title: cfg.Title}
	if m.Width <= 0 {
		m.Width = 1280
	}
	if m.Height <= 0 {
		m.Height = 720
	}
	if m.Title == "" {
		m.Title = "engine3d"
	}
	return m
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if app.hasResource(reflect.TypeOf((*WindowState)(nil)).Elem()) {
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	cmd.AddResources(ws)
	cmd.Logger().Infof("Created window (%dx%d) '%s'", m.Width, m.Height, m.Title)

	app.UseSystem(
		System(windowCloseSystem).
			InStage(Finale),
	)
}

func createWindowState(width int, height int, title string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw: win,
		Width:      width,
		Height:     height,
		Title:      title,
	}
}

func windowCloseSystem(s *WindowState, cmd *Commands) {
	if !s.windowGlfw.ShouldClose() {
		s.Width, s.Height = s.windowGlfw.GetSize()
		return
	}
	s.windowGlfw.Destroy()
	glfw.Terminate()
	cmd.Quit()
}
