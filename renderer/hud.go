package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the key legend shown under the stats panel.
const Controls = "Arrows: push | Z: stop | X+Z: shuffle | X+Down: gravity | X+Up: invert | X+Left: stats"

const (
	hudFontSize    = 14
	hudBottomInset = 22
)

// drawHUD renders the frame rate and key legend along the bottom edge.
func (w *Window) drawHUD() {
	height := w.windowHeight
	rl.DrawText(fmt.Sprintf("FPS: %d | Frame: %d", rl.GetFPS(), w.Frames()), 10, height-2*hudBottomInset, hudFontSize, rl.LightGray)
	rl.DrawText(Controls, 10, height-hudBottomInset, hudFontSize, rl.Gray)
}
