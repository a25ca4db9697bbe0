package editor

// Button is one named input. Down is the level, Pressed the rising edge of this frame.
type Button struct {
	Down    bool
	Pressed bool
}

type ButtonID int

const (
	ButtonSelect ButtonID = iota
	ButtonAxisX
	ButtonAxisY
	ButtonAxisZ
	ButtonModeTranslate
	ButtonModeRotate
	ButtonModeScale
	ButtonDelete
	ButtonDuplicate
	ButtonAdd
	ButtonDeselect
	ButtonLook
	ButtonMoveForward
	ButtonMoveBack
	ButtonMoveLeft
	ButtonMoveRight
	ButtonMoveUp
	ButtonMoveDown

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"select", "axis_x", "axis_y", "axis_z",
	"mode_translate", "mode_rotate", "mode_scale",
	"delete", "duplicate", "add", "deselect",
	"look", "move_forward", "move_back", "move_left", "move_right", "move_up", "move_down",
}

func (id ButtonID) String() string {
	if id < 0 || id >= ButtonCount {
		return "unknown"
	}
	return buttonNames[id]
}

// ButtonByName resolves the names used in key binding config.
func ButtonByName(name string) (ButtonID, bool) {
	for i, n := range buttonNames {
		if n == name {
			return ButtonID(i), true
		}
	}
	return 0, false
}

type Buttons struct {
	Select        Button
	AxisX         Button
	AxisY         Button
	AxisZ         Button
	ModeTranslate Button
	ModeRotate    Button
	ModeScale     Button
	Delete        Button
	Duplicate     Button
	Add           Button
	Deselect      Button
	Look          Button
	MoveForward   Button
	MoveBack      Button
	MoveLeft      Button
	MoveRight     Button
	MoveUp        Button
	MoveDown      Button
}

// All returns the buttons in ButtonID order.
func (b *Buttons) All() [ButtonCount]*Button {
	return [ButtonCount]*Button{
		&b.Select, &b.AxisX, &b.AxisY, &b.AxisZ,
		&b.ModeTranslate, &b.ModeRotate, &b.ModeScale,
		&b.Delete, &b.Duplicate, &b.Add, &b.Deselect,
		&b.Look, &b.MoveForward, &b.MoveBack, &b.MoveLeft, &b.MoveRight, &b.MoveUp, &b.MoveDown,
	}
}

// InputSnapshot is one frame of raw input. Mouse coordinates are window pixels, origin top-left.
type InputSnapshot struct {
	MouseX, MouseY   float32
	MouseDX, MouseDY float32
	ViewportW        int
	ViewportH        int
	Buttons          Buttons
}
