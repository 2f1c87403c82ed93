package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options describe the window.
type Options struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	TargetFPS  int
	Background color.RGBA
	// OnClose runs after the last frame while the GL context still exists.
	OnClose func()
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// (input, simulation), then clears the screen and calls draw. ESC is left to the application;
// close via the window button.
func Run(opts Options, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(opts.Background)
		draw()
		rl.EndDrawing()
	}
	if opts.OnClose != nil {
		opts.OnClose()
	}
}

// ScreenSize returns the current render size in pixels.
func ScreenSize() (w, h float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// FrameTime returns the duration of the last frame in seconds.
func FrameTime() float32 {
	return rl.GetFrameTime()
}
