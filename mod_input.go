package engine3d

import (
	"github.com/engine3d/engine3d/planes/editor"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
	KeyShift
	KeyControl
	KeyLeftAlt
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

// KeyByName resolves key names used in config bindings, e.g. "x", "escape", "mouse_left".
func KeyByName(name string) (int, bool) {
	k, ok := keyNames[name]
	return k, ok
}

var keyNames = map[string]int{
	"a":            KeyA,
	"b":            KeyB,
	"c":            KeyC,
	"d":            KeyD,
	"e":            KeyE,
	"f":            KeyF,
	"g":            KeyG,
	"h":            KeyH,
	"i":            KeyI,
	"j":            KeyJ,
	"k":            KeyK,
	"l":            KeyL,
	"m":            KeyM,
	"n":            KeyN,
	"o":            KeyO,
	"p":            KeyP,
	"q":            KeyQ,
	"r":            KeyR,
	"s":            KeyS,
	"t":            KeyT,
	"u":            KeyU,
	"v":            KeyV,
	"w":            KeyW,
	"x":            KeyX,
	"y":            KeyY,
	"z":            KeyZ,
	"0":            Key0,
	"1":            Key1,
	"2":            Key2,
	"3":            Key3,
	"4":            Key4,
	"5":            Key5,
	"6":            Key6,
	"7":            Key7,
	"8":            Key8,
	"9":            Key9,
	"space":        KeySpace,
	"enter":        KeyEnter,
	"escape":       KeyEscape,
	"tab":          KeyTab,
	"backspace":    KeyBackspace,
	"insert":       KeyInsert,
	"delete":       KeyDelete,
	"right":        KeyRight,
	"left":         KeyLeft,
	"down":         KeyDown,
	"up":           KeyUp,
	"f1":           KeyF1,
	"f2":           KeyF2,
	"f3":           KeyF3,
	"f4":           KeyF4,
	"f5":           KeyF5,
	"f6":           KeyF6,
	"f7":           KeyF7,
	"f8":           KeyF8,
	"f9":           KeyF9,
	"f10":          KeyF10,
	"f11":          KeyF11,
	"f12":          KeyF12,
	"minus":        KeyMinus,
	"equal":        KeyEqual,
	"kp_plus":      KeyKPPlus,
	"kp_minus":     KeyKPMinus,
	"shift":        KeyShift,
	"control":      KeyControl,
	"left_alt":     KeyLeftAlt,
	"mouse_left":   MouseButtonLeft,
	"mouse_right":  MouseButtonRight,
	"mouse_middle": MouseButtonMiddle,
}

type InputModule struct {
	Bindings *KeyBindings
}

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseCaptured            bool
	cursorSeen               bool

	WindowWidth, WindowHeight int
}

// SnapshotInput runs between PreUpdate and Update, so systems in PreUpdate (the fly camera toggling
// mouse capture) are reflected in the same frame's snapshot.
var SnapshotInput = Stage{Name: "SnapshotInput"}

func (mod InputModule) Install(app *App, cmd *Commands) {
	bindings := DefaultKeyBindings()
	if mod.Bindings != nil {
		bindings = *mod.Bindings
	}
	useInputSnapshot(app, cmd, bindings)
	app.UseSystem(
		System(inputSystem).
			InStage(Prelude),
	)
	app.UseSystem(
		System(cursorModeSystem).
			InStage(SnapshotInput),
	)
}

// useInputSnapshot adds the Input and KeyBindings resources and the stage that converts them into
// the editor's snapshot. It needs no window.
func useInputSnapshot(app *App, cmd *Commands, bindings KeyBindings) {
	cmd.AddResources(&Input{}, &bindings)
	app.UseStage(SnapshotInput, BeforeStage(Update))
	app.UseSystem(
		System(snapshotSystem).
			InStage(SnapshotInput),
	)
}

// setKey records the level for one frame and derives the edges.
func (input *Input) setKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// setCursor moves the cursor and records the delta since the last sample. The first sample has no delta.
func (input *Input) setCursor(mx, my float64) {
	if input.cursorSeen {
		input.MouseDeltaX = mx - input.MouseX
		input.MouseDeltaY = my - input.MouseY
	}
	input.cursorSeen = true
	input.MouseX = mx
	input.MouseY = my
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.setKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseToGlfw {
		input.setKey(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.setCursor(s.windowGlfw.GetCursorPos())
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
}

func cursorModeSystem(s *WindowState, input *Input) {
	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// KeyBindings maps every editor button to a key or mouse button.
type KeyBindings [editor.ButtonCount]int

func DefaultKeyBindings() KeyBindings {
	var b KeyBindings
	b[editor.ButtonSelect] = MouseButtonLeft
	b[editor.ButtonAxisX] = KeyX
	b[editor.ButtonAxisY] = KeyY
	b[editor.ButtonAxisZ] = KeyZ
	b[editor.ButtonModeTranslate] = Key1
	b[editor.ButtonModeRotate] = Key2
	b[editor.ButtonModeScale] = Key3
	b[editor.ButtonDelete] = KeyDelete
	b[editor.ButtonDuplicate] = KeyC
	b[editor.ButtonAdd] = KeyN
	b[editor.ButtonDeselect] = KeyEscape
	b[editor.ButtonLook] = MouseButtonRight
	b[editor.ButtonMoveForward] = KeyW
	b[editor.ButtonMoveBack] = KeyS
	b[editor.ButtonMoveLeft] = KeyA
	b[editor.ButtonMoveRight] = KeyD
	b[editor.ButtonMoveUp] = KeySpace
	b[editor.ButtonMoveDown] = KeyControl
	return b
}

// Snapshot converts this frame's key state into editor input. A captured mouse always looks around.
func (input *Input) Snapshot(bindings KeyBindings) editor.InputSnapshot {
	snap := editor.InputSnapshot{
		MouseX:    float32(input.MouseX),
		MouseY:    float32(input.MouseY),
		MouseDX:   float32(input.MouseDeltaX),
		MouseDY:   float32(input.MouseDeltaY),
		ViewportW: input.WindowWidth,
		ViewportH: input.WindowHeight,
	}
	for id, b := range snap.Buttons.All() {
		key := bindings[id]
		if key < 0 || key >= keyCount {
			continue
		}
		b.Down = input.Pressed[key]
		b.Pressed = input.JustPressed[key]
	}
	if input.MouseCaptured {
		snap.Buttons.Look.Down = true
	}
	return snap
}

func snapshotSystem(input *Input, bindings *KeyBindings, snap *editor.InputSnapshot) {
	*snap = input.Snapshot(*bindings)
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:         glfw.KeyA,
	KeyB:         glfw.KeyB,
	KeyC:         glfw.KeyC,
	KeyD:         glfw.KeyD,
	KeyE:         glfw.KeyE,
	KeyF:         glfw.KeyF,
	KeyG:         glfw.KeyG,
	KeyH:         glfw.KeyH,
	KeyI:         glfw.KeyI,
	KeyJ:         glfw.KeyJ,
	KeyK:         glfw.KeyK,
	KeyL:         glfw.KeyL,
	KeyM:         glfw.KeyM,
	KeyN:         glfw.KeyN,
	KeyO:         glfw.KeyO,
	KeyP:         glfw.KeyP,
	KeyQ:         glfw.KeyQ,
	KeyR:         glfw.KeyR,
	KeyS:         glfw.KeyS,
	KeyT:         glfw.KeyT,
	KeyU:         glfw.KeyU,
	KeyV:         glfw.KeyV,
	KeyW:         glfw.KeyW,
	KeyX:         glfw.KeyX,
	KeyY:         glfw.KeyY,
	KeyZ:         glfw.KeyZ,
	Key0:         glfw.Key0,
	Key1:         glfw.Key1,
	Key2:         glfw.Key2,
	Key3:         glfw.Key3,
	Key4:         glfw.Key4,
	Key5:         glfw.Key5,
	Key6:         glfw.Key6,
	Key7:         glfw.Key7,
	Key8:         glfw.Key8,
	Key9:         glfw.Key9,
	KeySpace:     glfw.KeySpace,
	KeyEnter:     glfw.KeyEnter,
	KeyEscape:    glfw.KeyEscape,
	KeyTab:       glfw.KeyTab,
	KeyBackspace: glfw.KeyBackspace,
	KeyInsert:    glfw.KeyInsert,
	KeyDelete:    glfw.KeyDelete,
	KeyRight:     glfw.KeyRight,
	KeyLeft:      glfw.KeyLeft,
	KeyDown:      glfw.KeyDown,
	KeyUp:        glfw.KeyUp,
	KeyF1:        glfw.KeyF1,
	KeyF2:        glfw.KeyF2,
	KeyF3:        glfw.KeyF3,
	KeyF4:        glfw.KeyF4,
	KeyF5:        glfw.KeyF5,
	KeyF6:        glfw.KeyF6,
	KeyF7:        glfw.KeyF7,
	KeyF8:        glfw.KeyF8,
	KeyF9:        glfw.KeyF9,
	KeyF10:       glfw.KeyF10,
	KeyF11:       glfw.KeyF11,
	KeyF12:       glfw.KeyF12,
	KeyMinus:     glfw.KeyMinus,
	KeyEqual:     glfw.KeyEqual,
	KeyKPPlus:    glfw.KeyKPAdd,
	KeyKPMinus:   glfw.KeyKPSubtract,
	KeyShift:     glfw.KeyLeftShift,
	KeyControl:   glfw.KeyLeftControl,
	KeyLeftAlt:   glfw.KeyLeftAlt,
}
