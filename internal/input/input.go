// Package input polls raylib once per frame and feeds keyboard and pointer events to the app controller.
package input

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"marker-scene/internal/app"
	"marker-scene/internal/camera"
	"marker-scene/internal/gesture"
	"marker-scene/internal/ui"
)

// KeyBindings maps keys to camera nudges. Arrow keys mirror WASD.
var KeyBindings = map[int32]camera.Direction{
	rl.KeyW:     camera.Forward,
	rl.KeyUp:    camera.Forward,
	rl.KeyS:     camera.Backward,
	rl.KeyDown:  camera.Backward,
	rl.KeyA:     camera.Left,
	rl.KeyLeft:  camera.Left,
	rl.KeyD:     camera.Right,
	rl.KeyRight: camera.Right,
	rl.KeyQ:     camera.Up,
	rl.KeyE:     camera.Down,
}

var buttons = [...]struct {
	mouse  rl.MouseButton
	button gesture.Button
}{
	{rl.MouseButtonLeft, gesture.ButtonPrimary},
	{rl.MouseButtonRight, gesture.ButtonSecondary},
	{rl.MouseButtonMiddle, gesture.ButtonMiddle},
}

// Console reports whether the text console owns the keyboard.
type Console interface {
	IsOpen() bool
}

// Handler translates raylib state into controller calls. Presses that land on the UI are
// consumed there and never reach the scene; a press that started in the scene always gets its release.
type Handler struct {
	ctrl     *app.Controller
	ui       *ui.Engine
	console  Console
	captured [len(buttons)]bool
}

// New returns a handler. ui and console may be nil.
func New(ctrl *app.Controller, engine *ui.Engine, console Console) *Handler {
	return &Handler{ctrl: ctrl, ui: engine, console: console}
}

// Update polls the keyboard and mouse. Call once per frame before the console update so
// ESC reaches the console first when it is open.
func (h *Handler) Update(now time.Time) {
	if h.console == nil || !h.console.IsOpen() {
		h.keys()
	}
	h.pointer(now)
}

func (h *Handler) keys() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		h.ctrl.Deselect()
	}
	for key, d := range KeyBindings {
		if rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key) {
			h.ctrl.Move(d)
		}
	}
}

func (h *Handler) pointer(now time.Time) {
	mp := rl.GetMousePosition()
	pos := mgl32.Vec2{mp.X, mp.Y}
	h.ctrl.PointerMove(pos)

	for i, b := range buttons {
		if rl.IsMouseButtonPressed(b.mouse) {
			if b.button == gesture.ButtonPrimary && h.ui != nil && h.ui.Click(mp) {
				continue
			}
			if b.button != gesture.ButtonPrimary && h.overUI(mp) {
				continue
			}
			h.captured[i] = true
			h.ctrl.PointerDown(now, pos, b.button)
		}
		if rl.IsMouseButtonReleased(b.mouse) && h.captured[i] {
			h.captured[i] = false
			h.ctrl.PointerUp(pos, b.button)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !h.overUI(mp) {
		h.ctrl.Wheel(wheel)
	}
}

func (h *Handler) overUI(p rl.Vector2) bool {
	return h.ui != nil && h.ui.Hit(p) != nil
}
