// Package renderer draws the 1-bit framebuffer in a raylib window scaled up
// to desktop size and reads the keyboard as device buttons.
package renderer

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/physix/device"
)

// Panel layout in window pixels.
const (
	panelX       = 6
	panelY       = 6
	panelWidth   = 220
	panelHeader  = 24
	panelLineH   = 20
	panelPadding = 8
)

// keymap binds keyboard keys to buttons. Several keys may share a button.
var keymap = []struct {
	key    int32
	button device.Button
}{
	{rl.KeyUp, device.ButtonUp},
	{rl.KeyDown, device.ButtonDown},
	{rl.KeyLeft, device.ButtonLeft},
	{rl.KeyRight, device.ButtonRight},
	{rl.KeyZ, device.ButtonA},
	{rl.KeySpace, device.ButtonA},
	{rl.KeyX, device.ButtonB},
	{rl.KeyLeftShift, device.ButtonB},
}

// Window is a raylib backed Display, Input, Pacer and Text.
// Drawing goes to an in-memory framebuffer; Present blits it.
type Window struct {
	*device.Framebuffer
	device.ButtonState

	windowWidth  int32
	windowHeight int32
	scale        int32
	initialized  bool

	fg, bg rl.Color
}

// NewWindow creates a window showing a width x height surface in a
// windowWidth x windowHeight window. Pixels are scaled by the smaller whole ratio.
func NewWindow(width, height int, windowWidth, windowHeight int32) *Window {
	scale := min(windowWidth/int32(width), windowHeight/int32(height))
	if scale < 1 {
		scale = 1
	}
	return &Window{
		Framebuffer:  device.NewFramebuffer(width, height),
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
		scale:        scale,
		fg:           rl.RayWhite,
		bg:           rl.Black,
	}
}

// Init opens the window. targetFPS paces Present.
func (w *Window) Init(title string, targetFPS int) {
	if w.initialized {
		return
	}
	rl.InitWindow(w.windowWidth, w.windowHeight, title)
	rl.SetTargetFPS(int32(targetFPS))
	w.initialized = true
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// FrameDue is always true; raylib holds Present to the target frame rate.
func (w *Window) FrameDue() bool { return true }

// Poll latches the keyboard state.
func (w *Window) Poll() {
	var held device.Buttons
	for _, k := range keymap {
		if rl.IsKeyDown(k.key) {
			held |= device.ButtonSet(k.button)
		}
	}
	w.Update(held)
}

// Present draws the framebuffer. Any text is shown as a raygui panel with
// the key legend below.
func (w *Window) Present() {
	rl.BeginDrawing()
	rl.ClearBackground(w.bg)

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.Pixel(x, y) {
				rl.DrawRectangle(int32(x)*w.scale, int32(y)*w.scale, w.scale, w.scale, w.fg)
			}
		}
	}

	if lines := w.Lines(); len(lines) > 0 {
		w.drawPanel(lines)
		w.drawHUD()
	}

	rl.EndDrawing()
	w.Framebuffer.Present()
}

func (w *Window) drawPanel(lines []string) {
	height := float32(panelHeader + len(lines)*panelLineH + panelPadding)
	gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height}, "Stats")

	y := float32(panelY + panelHeader)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: panelX + panelPadding, Y: y, Width: panelWidth - 2*panelPadding, Height: panelLineH}, line)
		y += panelLineH
	}
}

// Unload closes the window.
func (w *Window) Unload() {
	if w.initialized {
		rl.CloseWindow()
		w.initialized = false
	}
}
