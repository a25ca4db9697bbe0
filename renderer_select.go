package engine3d

import (
	"github.com/engine3d/engine3d/planes/editor"
)

// RendererName identifies a renderer sink. Keep names aligned with ensureSingleRenderer tags.
type RendererName string

const (
	RendererLog RendererName = "log"
)

// Renderer draws one editor payload. It must not mutate it.
type Renderer interface {
	Render(payload *editor.RenderPayload)
}

type rendererSlot struct {
	name     RendererName
	renderer Renderer
}

// UseRenderer installs exactly one renderer sink that receives the payload in the Render stage.
// Usage:
//
//	app.UseRenderer(RendererLog, NewLogRenderer(app.Logger(), 60))
func (app *App) UseRenderer(name RendererName, r Renderer) *App {
	ensureSingleRenderer(app, string(name))
	app.addResources(&rendererSlot{name: name, renderer: r})
	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
	app.Logger().Infof("Renderer selected: %s", name)
	return app
}

func renderSystem(slot *rendererSlot, payload *editor.RenderPayload) {
	slot.renderer.Render(payload)
}

// LogRenderer is a headless sink: it logs a summary of every Nth payload.
type LogRenderer struct {
	logger   Logger
	every    uint64
	rendered uint64
}

func NewLogRenderer(logger Logger, every uint64) *LogRenderer {
	if every == 0 {
		every = 1
	}
	return &LogRenderer{logger: logger, every: every}
}

func (r *LogRenderer) Render(payload *editor.RenderPayload) {
	r.rendered++
	if (r.rendered-1)%r.every != 0 {
		return
	}
	r.logger.Infof("Frame %d: %d/%d planes visible, selected %d, mode %s, %d lines",
		payload.Frame, payload.Visible(), len(payload.Planes), payload.Selected, payload.Mode.Kind, len(payload.Lines))
}

// Rendered counts payloads received.
func (r *LogRenderer) Rendered() uint64 {
	return r.rendered
}
