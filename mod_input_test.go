package engine3d

import (
	"testing"

	"github.com/engine3d/engine3d/planes/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_setKeyEdges(t *testing.T) {
	input := &Input{}

	input.setKey(KeyX, true)
	assert.True(t, input.Pressed[KeyX])
	assert.True(t, input.JustPressed[KeyX])

	input.setKey(KeyX, true)
	assert.True(t, input.Pressed[KeyX])
	assert.False(t, input.JustPressed[KeyX])

	input.setKey(KeyX, false)
	assert.False(t, input.Pressed[KeyX])
	assert.True(t, input.JustReleased[KeyX])

	input.setKey(KeyX, false)
	assert.False(t, input.JustReleased[KeyX])
}

func TestInput_setCursor(t *testing.T) {
	input := &Input{}
	input.setCursor(10, 20)
	assert.Zero(t, input.MouseDeltaX)
	assert.Zero(t, input.MouseDeltaY)

	input.setCursor(15, 18)
	assert.Equal(t, 5.0, input.MouseDeltaX)
	assert.Equal(t, -2.0, input.MouseDeltaY)

	input.MouseCaptured = true
	input.setCursor(20, 10)
	assert.Equal(t, 5.0, input.MouseDeltaX)
	assert.Equal(t, -8.0, input.MouseDeltaY)
}

func TestInput_RightMouseLooksWithoutCapture(t *testing.T) {
	state, err := editor.NewEditorState(16, nil)
	require.NoError(t, err)
	yaw := state.Camera.Yaw

	input := &Input{WindowWidth: 800, WindowHeight: 600}
	input.setCursor(100, 100)
	input.setKey(MouseButtonRight, true)
	input.setCursor(160, 100)

	snap := input.Snapshot(DefaultKeyBindings())
	require.True(t, snap.Buttons.Look.Down)
	assert.Equal(t, float32(60), snap.MouseDX)

	editor.Tick(state, snap, 0.016)
	assert.InDelta(t, yaw+60*state.Camera.Sensitivity, state.Camera.Yaw, 1e-4)
}

func TestInput_TabCaptureReachesSnapshotSameFrame(t *testing.T) {
	app := NewApp()
	app.UseModules(TimeModule{}, EditorModule{Config: headlessConfig()}, FlyingCameraModule{})
	useInputSnapshot(app, app.Commands(), DefaultKeyBindings())

	input, ok := Resource[Input](app)
	require.True(t, ok)
	snap, ok := Resource[editor.InputSnapshot](app)
	require.True(t, ok)

	input.setKey(KeyTab, true)
	app.Step()

	assert.True(t, input.MouseCaptured)
	assert.True(t, snap.Buttons.Look.Down)
}

func TestInput_Snapshot(t *testing.T) {
	input := &Input{MouseX: 400, MouseY: 300, WindowWidth: 800, WindowHeight: 600}
	input.setKey(MouseButtonLeft, true)
	input.setKey(KeyY, true)
	input.setKey(KeyY, true)

	snap := input.Snapshot(DefaultKeyBindings())

	assert.Equal(t, float32(400), snap.MouseX)
	assert.Equal(t, 800, snap.ViewportW)
	assert.Equal(t, editor.Button{Down: true, Pressed: true}, snap.Buttons.Select)
	assert.Equal(t, editor.Button{Down: true, Pressed: false}, snap.Buttons.AxisY)
	assert.Equal(t, editor.Button{}, snap.Buttons.AxisX)
	assert.False(t, snap.Buttons.Look.Down)

	input.MouseCaptured = true
	snap = input.Snapshot(DefaultKeyBindings())
	assert.True(t, snap.Buttons.Look.Down)
}

func TestInput_SnapshotRebound(t *testing.T) {
	input := &Input{}
	input.setKey(KeyG, true)

	b := DefaultKeyBindings()
	b[editor.ButtonModeScale] = KeyG
	b[editor.ButtonDelete] = -1

	snap := input.Snapshot(b)
	assert.True(t, snap.Buttons.ModeScale.Pressed)
	assert.False(t, snap.Buttons.Delete.Down)
}

func TestDefaultKeyBindings_Distinct(t *testing.T) {
	seen := map[int]editor.ButtonID{}
	for id, key := range DefaultKeyBindings() {
		other, dup := seen[key]
		assert.False(t, dup, "%s and %s share a key", editor.ButtonID(id), other)
		seen[key] = editor.ButtonID(id)
	}
}

func TestKeyByName(t *testing.T) {
	k, ok := KeyByName("mouse_right")
	assert.True(t, ok)
	assert.Equal(t, MouseButtonRight, k)

	_, ok = KeyByName("hyper")
	assert.False(t, ok)

	for name, key := range keyNames {
		assert.Less(t, key, int(keyCount), name)
	}
}
