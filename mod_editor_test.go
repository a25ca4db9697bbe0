package engine3d

import (
	"testing"

	"github.com/engine3d/engine3d/planes/editor"
	"github.com/engine3d/engine3d/planes/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func headlessConfig() Config {
	cfg := DefaultConfig()
	cfg.Window = WindowConfig{Width: 800, Height: 600, Title: "test"}
	cfg.Camera.Position = Vec3Config{X: 3, Y: 0.75, Z: 3}
	cfg.Camera.Target = &Vec3Config{X: 0.5, Y: 0, Z: 0.5}
	cfg.Scene.Capacity = 3
	cfg.Textures = []TextureConfig{{Name: "grass", Path: "grass.png"}}
	return cfg
}

func TestEditorModule_Install(t *testing.T) {
	app := NewAppBuilder().UseModule(EditorModule{Config: headlessConfig()}).Build()

	state, ok := Resource[editor.EditorState](app)
	require.True(t, ok)
	assert.Equal(t, 3, state.Registry.Capacity())
	assert.Equal(t, 1, state.Textures.Len())
	assert.Equal(t, 800, state.ViewportW)

	settings, ok := Resource[editor.Settings](app)
	require.True(t, ok)
	assert.Same(t, state.Settings, settings)

	for _, ok := range []bool{
		app.hasResource(typeOf[editor.InputSnapshot]()),
		app.hasResource(typeOf[editor.RenderPayload]()),
		app.hasResource(typeOf[Profiler]()),
	} {
		assert.True(t, ok)
	}
}

func TestEditorModule_InvalidCapacityPanics(t *testing.T) {
	cfg := headlessConfig()
	cfg.Scene.Capacity = 1

	assert.Panics(t, func() {
		NewAppBuilder().UseModule(EditorModule{Config: cfg}).Build()
	})
}

func TestEditorModule_HeadlessFrames(t *testing.T) {
	core, logs := observerCore()
	logger := NewLoggerWithCore("test", core)

	app := NewApp()
	app.addResources(logger)
	app.UseModules(TimeModule{}, EditorModule{Config: headlessConfig()})
	sink := NewLogRenderer(logger, 1)
	app.UseRenderer(RendererLog, sink)

	in, _ := Resource[editor.InputSnapshot](app)
	payload, _ := Resource[editor.RenderPayload](app)
	state, _ := Resource[editor.EditorState](app)

	// add a plane where the camera looks
	*in = editor.InputSnapshot{MouseX: 400, MouseY: 300, ViewportW: 800, ViewportH: 600}
	in.Buttons.Add = editor.Button{Down: true, Pressed: true}
	app.Step()

	require.Equal(t, 1, state.Registry.Count())
	assert.Equal(t, 0, payload.Selected)
	assert.Equal(t, uint64(1), sink.Rendered())
	assert.Equal(t, 1, logs.FilterMessage("Editor: added plane=0").Len())

	// the registry holds capacity-1 planes, so the third add fails
	app.Step()
	app.Step()
	assert.Equal(t, 2, state.Registry.Count())
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, scene.ErrRegistryFull.Error())

	*in = editor.InputSnapshot{MouseX: 400, MouseY: 300, ViewportW: 800, ViewportH: 600}
	in.Buttons.Delete = editor.Button{Down: true, Pressed: true}
	app.Step()
	assert.Equal(t, 1, state.Registry.Count())
	assert.Equal(t, -1, payload.Selected)
	assert.Equal(t, uint64(4), payload.Frame)
	assert.Equal(t, uint64(4), sink.Rendered())
}
