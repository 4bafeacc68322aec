// Package device declares the hardware collaborators the simulation consumes
// and provides deterministic implementations for headless runs and tests.
package device

// Button is a logical input button.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // primary
	ButtonB // modifier
	numButtons
)

var buttonNames = [numButtons]string{"up", "down", "left", "right", "a", "b"}

func (b Button) String() string {
	if b < numButtons {
		return buttonNames[b]
	}
	return "unknown"
}

// Buttons is a set of buttons.
type Buttons uint8

// ButtonSet builds a set from individual buttons.
func ButtonSet(bs ...Button) Buttons {
	var s Buttons
	for _, b := range bs {
		s |= 1 << b
	}
	return s
}

// Has reports whether b is in the set.
func (s Buttons) Has(b Button) bool { return s&(1<<b) != 0 }

// Display is a fixed-size 1-bit drawing surface.
type Display interface {
	Width() int
	Height() int
	Clear()
	FillRect(x, y, w, h int)
	DrawRect(x, y, w, h int)
	Present()
}

// Input reports button state. Poll latches the state for the current frame.
type Input interface {
	Poll()
	Held(b Button) bool
	JustPressed(b Button) bool
}

// Pacer gates the frame loop. FrameDue must not block.
type Pacer interface {
	FrameDue() bool
}

// Random produces uniform integers in [min, max).
type Random interface {
	Range(min, max int) int
}

// Text writes diagnostics. Display.Clear resets the cursor to the top-left.
type Text interface {
	Print(s string)
	PrintLine(s string)
}

// Devices bundles the collaborators for one run.
type Devices struct {
	Display Display
	Input   Input
	Pacer   Pacer
	Random  Random
	Text    Text
}
