package engine3d

import (
	"github.com/engine3d/engine3d/planes/editor"
)

const (
	minFlySpeed = 0.5
	maxFlySpeed = 100
)

// FlyingCameraModule toggles mouse capture with Tab and lets +/- scale the fly speed.
// The editor tick itself moves and rotates the camera.
type FlyingCameraModule struct {
	Speed       float32
	Sensitivity float32
}

type FlyingCamera struct {
	Speed       float32
	Sensitivity float32
}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	fly := &FlyingCamera{Speed: m.Speed, Sensitivity: m.Sensitivity}
	if fly.Speed == 0 {
		fly.Speed = 5
	}
	if fly.Sensitivity == 0 {
		fly.Sensitivity = 0.1
	}
	cmd.AddResources(fly)
	app.UseSystem(
		System(flyingCameraSystem).
			InStage(PreUpdate),
	)
}

func flyingCameraSystem(input *Input, fly *FlyingCamera, state *editor.EditorState) {
	if input.JustPressed[KeyTab] {
		input.MouseCaptured = !input.MouseCaptured
	}
	if input.JustPressed[KeyEqual] || input.JustPressed[KeyKPPlus] {
		fly.Speed *= 2
	}
	if input.JustPressed[KeyMinus] || input.JustPressed[KeyKPMinus] {
		fly.Speed /= 2
	}
	if fly.Speed < minFlySpeed {
		fly.Speed = minFlySpeed
	}
	if fly.Speed > maxFlySpeed {
		fly.Speed = maxFlySpeed
	}

	state.Camera.Speed = fly.Speed
	state.Camera.Sensitivity = fly.Sensitivity
}
