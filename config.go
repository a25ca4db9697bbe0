package engine3d

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/engine3d/engine3d/planes/editor"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Vec3Config struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3Config) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position    Vec3Config  `yaml:"position"`
	Target      *Vec3Config `yaml:"target,omitempty"`
	Yaw         float32     `yaml:"yaw"`
	Pitch       float32     `yaml:"pitch"`
	FOV         float32     `yaml:"fov"`
	Near        float32     `yaml:"near"`
	Far         float32     `yaml:"far"`
	Speed       float32     `yaml:"speed"`
	Sensitivity float32     `yaml:"sensitivity"`
}

type SceneConfig struct {
	Capacity int `yaml:"capacity"`
}

type SnapConfig struct {
	Translate float32 `yaml:"translate"`
	Rotate    float32 `yaml:"rotate"`
}

type TextureConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Camera   CameraConfig      `yaml:"camera"`
	Scene    SceneConfig       `yaml:"scene"`
	Snap     SnapConfig        `yaml:"snap"`
	Textures []TextureConfig   `yaml:"textures"`
	Bindings map[string]string `yaml:"bindings"`
	Log      LogConfig         `yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "engine3d"},
		Camera: CameraConfig{
			Position:    Vec3Config{X: 0, Y: 2, Z: 6},
			Yaw:         -90,
			Pitch:       -15,
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			Speed:       5,
			Sensitivity: 0.1,
		},
		Scene: SceneConfig{Capacity: 1024},
		Snap:  SnapConfig{Translate: 0, Rotate: 0},
		Log:   LogConfig{Prefix: "engine3d"},
	}
}

// LoadConfig decodes name from fsys over DefaultConfig and validates the result.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %s", name)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", name)
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	return LoadConfig(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Capacity < 2 {
		return errors.Wrapf(ErrInvalidConfig, "scene capacity %d must be at least 2", c.Scene.Capacity)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.Wrapf(ErrInvalidConfig, "camera fov %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Wrapf(ErrInvalidConfig, "camera clip range %v..%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Snap.Translate < 0 || c.Snap.Rotate < 0 {
		return errors.Wrap(ErrInvalidConfig, "negative snap increment")
	}
	for name, key := range c.Bindings {
		if _, ok := editor.ButtonByName(name); !ok {
			return errors.Wrapf(ErrInvalidConfig, "unknown button %q", name)
		}
		if _, ok := KeyByName(key); !ok {
			return errors.Wrapf(ErrInvalidConfig, "unknown key %q for %s", key, name)
		}
	}
	return nil
}

// KeyBindings resolves the configured bindings over the defaults.
func (c Config) KeyBindings() KeyBindings {
	b := DefaultKeyBindings()
	for name, key := range c.Bindings {
		id, ok := editor.ButtonByName(name)
		if !ok {
			continue
		}
		if k, ok := KeyByName(key); ok {
			b[id] = k
		}
	}
	return b
}

func (c Config) Settings() *editor.Settings {
	return &editor.Settings{
		TranslateSnap: c.Snap.Translate,
		RotateSnap:    c.Snap.Rotate,
	}
}
