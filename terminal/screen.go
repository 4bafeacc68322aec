// Package terminal shows the framebuffer in a text terminal using half-block
// characters, two pixel rows per cell row.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/physix/device"
)

// DefaultHoldFrames is how long a key counts as held after its last event.
// Terminals report presses and repeats but never releases.
const DefaultHoldFrames = 8

// Screen is a tcell backed Display, Input, Pacer and Text.
type Screen struct {
	*device.Framebuffer
	device.ButtonState
	*device.ClockPacer

	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	style  tcell.Style

	holdFrames int
	hold       map[device.Button]int
	closed     bool
}

// New initializes the terminal and starts reading events.
func New(width, height, fps int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	s := NewWithScreen(screen, width, height, fps, DefaultHoldFrames)
	s.start()
	return s, nil
}

// NewWithScreen wraps an initialized tcell screen. Events must be fed with
// HandleEvent unless the screen was created by New.
func NewWithScreen(screen tcell.Screen, width, height, fps, holdFrames int) *Screen {
	if holdFrames < 1 {
		holdFrames = 1
	}
	screen.HideCursor()
	return &Screen{
		Framebuffer: device.NewFramebuffer(width, height),
		ClockPacer:  device.NewClockPacer(fps, nil),
		screen:      screen,
		events:      make(chan tcell.Event, 100),
		done:        make(chan struct{}),
		style:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		holdFrames:  holdFrames,
		hold:        make(map[device.Button]int),
	}
}

func (s *Screen) start() {
	go s.pump()
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// HandleEvent applies one terminal event.
func (s *Screen) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			s.closed = true
			return
		}
		for _, b := range keyButtons(ev) {
			s.hold[b] = s.holdFrames
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// keyButtons maps a key event to buttons. Shift counts as the modifier.
func keyButtons(ev *tcell.EventKey) []device.Button {
	var out []device.Button
	if ev.Modifiers()&tcell.ModShift != 0 {
		out = append(out, device.ButtonB)
	}
	switch ev.Key() {
	case tcell.KeyUp:
		out = append(out, device.ButtonUp)
	case tcell.KeyDown:
		out = append(out, device.ButtonDown)
	case tcell.KeyLeft:
		out = append(out, device.ButtonLeft)
	case tcell.KeyRight:
		out = append(out, device.ButtonRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z', ' ':
			out = append(out, device.ButtonA)
		case 'x', 'X':
			out = append(out, device.ButtonB)
		}
	}
	return out
}

// Poll drains pending events, latches the held keys and ages them.
func (s *Screen) Poll() {
drain:
	for {
		select {
		case ev := <-s.events:
			s.HandleEvent(ev)
		default:
			break drain
		}
	}

	var held device.Buttons
	for b, n := range s.hold {
		held |= device.ButtonSet(b)
		if n <= 1 {
			delete(s.hold, b)
		} else {
			s.hold[b] = n - 1
		}
	}
	s.Update(held)
}

// ShouldClose reports whether the user asked to quit.
func (s *Screen) ShouldClose() bool { return s.closed }

// Present draws the framebuffer and text, then shows the terminal.
func (s *Screen) Present() {
	s.screen.Clear()

	rows := (s.Height() + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < s.Width(); x++ {
			r := halfBlock(s.Pixel(x, 2*row), s.Pixel(x, 2*row+1))
			s.screen.SetContent(x, row, r, nil, s.style)
		}
	}

	for i, line := range s.Lines() {
		for j, r := range []rune(line) {
			s.screen.SetContent(j, rows+1+i, r, nil, s.style)
		}
	}

	s.screen.Show()
	s.Framebuffer.Present()
}

// halfBlock picks the glyph for a cell whose upper and lower pixels are given.
func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	}
	return ' '
}

// Idle yields briefly between frames.
func (s *Screen) Idle() { time.Sleep(time.Millisecond) }

// Fini stops the event pump and restores the terminal. Calling it twice is a no-op.
func (s *Screen) Fini() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	s.screen.Fini()
}
