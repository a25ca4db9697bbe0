package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/engine3d/engine3d"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	headless := flag.Int("headless", 0, "Run N frames without a window and exit")
	flag.Parse()

	cfg := engine3d.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine3d.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "engine3d: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Log.Debug = true
	}

	app := engine3d.NewAppBuilder().
		UseModule(engine3d.LoggingModule{Prefix: cfg.Log.Prefix, Debug: cfg.Log.Debug}).
		UseModule(engine3d.TimeModule{}).
		UseModule(engine3d.EditorModule{Config: cfg}).
		Build()

	if *headless > 0 {
		app.UseRenderer(engine3d.RendererLog, engine3d.NewLogRenderer(app.Logger(), 60))
		for i := 0; i < *headless; i++ {
			app.Step()
		}
		return
	}

	bindings := cfg.KeyBindings()
	app.UseModules(
		engine3d.NewPlatformWindow(cfg.Window),
		engine3d.InputModule{Bindings: &bindings},
		engine3d.FlyingCameraModule{Speed: cfg.Camera.Speed, Sensitivity: cfg.Camera.Sensitivity},
	)
	app.UseRenderer(engine3d.RendererLog, engine3d.NewLogRenderer(app.Logger(), 300))
	app.Run()
}
