// Package graphics owns the raylib window and frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// Run opens the window and drives the frame loop until the window is closed.
// Each frame: update(dt) with the frame delta in seconds, then clear() for
// the background color, then draw() between BeginDrawing and EndDrawing.
// ESC is reserved for the terminal toggle, so the exit key is disabled;
// quit via the window close button.
func Run(title string, update func(dt float32), clear func() rl.Color, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(clear())
		draw()
		rl.EndDrawing()
	}
}
