package engine3d

import (
	"reflect"
	"testing"

	"github.com/engine3d/engine3d/planes/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observerCore() (zapcore.Core, *observer.ObservedLogs) {
	return observer.New(zapcore.DebugLevel)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type recordingRenderer struct {
	frames []uint64
}

func (r *recordingRenderer) Render(payload *editor.RenderPayload) {
	r.frames = append(r.frames, payload.Frame)
}

func TestEnsureSingleRenderer(t *testing.T) {
	app := NewApp()
	ensureSingleRenderer(app, "log")
	ensureSingleRenderer(app, "log")

	assert.PanicsWithValue(t, "Multiple renderers installed: log and gpu", func() {
		ensureSingleRenderer(app, "gpu")
	})
	assert.PanicsWithValue(t, "ensureSingleRenderer: app is nil", func() {
		ensureSingleRenderer(nil, "log")
	})
}

func TestUseRenderer_RenderStage(t *testing.T) {
	app := NewApp()
	payload := &editor.RenderPayload{}
	app.addResources(payload)
	app.UseSystem(System(func(p *editor.RenderPayload) { p.Frame++ }).InStage(Update))

	r := &recordingRenderer{}
	app.UseRenderer(RendererLog, r)
	app.Step()
	app.Step()

	assert.Equal(t, []uint64{1, 2}, r.frames)
	assert.Panics(t, func() { app.UseRenderer("other", &recordingRenderer{}) })
}

func TestLogRenderer_Every(t *testing.T) {
	core, logs := observerCore()
	r := NewLogRenderer(NewLoggerWithCore("", core), 3)

	for i := 0; i < 7; i++ {
		r.Render(&editor.RenderPayload{Frame: uint64(i + 1), Selected: -1})
	}

	assert.Equal(t, uint64(7), r.Rendered())
	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "Frame 1: 0/0 planes visible, selected -1, mode translate, 0 lines", logs.All()[0].Message)
	assert.Contains(t, logs.All()[2].Message, "Frame 7:")
}
