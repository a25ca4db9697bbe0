package engine3d

import (
	"strings"
	"testing"

	"github.com/engine3d/engine3d/planes/editor"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
window:
  width: 800
  height: 600
  title: planes
camera:
  position: {x: 3, y: 0.75, z: 3}
  target: {x: 0.5, y: 0, z: 0.5}
scene:
  capacity: 16
snap:
  translate: 0.5
  rotate: 15
textures:
  - name: grass
    path: textures/grass.png
  - name: stone
    path: textures/stone.png
bindings:
  add: insert
  mode_scale: g
log:
  prefix: planes
  debug: true
`

func newConfigFS(t *testing.T, files map[string]string) *memfs.FS {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("conf", 0o777))
	for name, body := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(body), 0o644))
	}
	return fsys
}

func TestLoadConfig(t *testing.T) {
	fsys := newConfigFS(t, map[string]string{"conf/editor.yaml": sampleConfig})

	cfg, err := LoadConfig(fsys, "conf/editor.yaml")
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Width: 800, Height: 600, Title: "planes"}, cfg.Window)
	assert.Equal(t, mgl32.Vec3{3, 0.75, 3}, cfg.Camera.Position.Vec3())
	require.NotNil(t, cfg.Camera.Target)
	assert.Equal(t, mgl32.Vec3{0.5, 0, 0.5}, cfg.Camera.Target.Vec3())
	assert.Equal(t, 16, cfg.Scene.Capacity)
	assert.Len(t, cfg.Textures, 2)
	assert.Equal(t, LogConfig{Prefix: "planes", Debug: true}, cfg.Log)

	// unset fields keep their defaults
	assert.Equal(t, float32(45), cfg.Camera.FOV)
	assert.Equal(t, float32(1000), cfg.Camera.Far)

	assert.Equal(t, &editor.Settings{TranslateSnap: 0.5, RotateSnap: 15}, cfg.Settings())

	b := cfg.KeyBindings()
	assert.Equal(t, KeyInsert, b[editor.ButtonAdd])
	assert.Equal(t, KeyG, b[editor.ButtonModeScale])
	assert.Equal(t, MouseButtonLeft, b[editor.ButtonSelect])
}

func TestLoadConfig_Missing(t *testing.T) {
	fsys := newConfigFS(t, nil)

	_, err := LoadConfig(fsys, "conf/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open config conf/missing.yaml")
}

func TestDecodeConfig_Empty(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfig_UnknownField(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("scene:\n  capacty: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestDecodeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"window", "window: {width: 0}", "window size"},
		{"capacity", "scene: {capacity: 1}", "scene capacity 1"},
		{"fov", "camera: {fov: 180}", "camera fov"},
		{"clip", "camera: {near: 10, far: 5}", "clip range"},
		{"snap", "snap: {rotate: -1}", "negative snap"},
		{"button", "bindings: {jump: space}", `unknown button "jump"`},
		{"key", "bindings: {add: hyper}", `unknown key "hyper"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultConfig_MatchesCamera(t *testing.T) {
	state, err := newEditorState(DefaultConfig())
	require.NoError(t, err)

	cam := state.Camera
	assert.Equal(t, mgl32.Vec3{0, 2, 6}, cam.Position)
	assert.Equal(t, float32(-90), cam.Yaw)
	assert.Equal(t, float32(-15), cam.Pitch)
	assert.InDelta(t, 1280.0/720.0, cam.Aspect, 1e-6)
	assert.Equal(t, 1, state.Textures.Len())
}
