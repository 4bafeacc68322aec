package terminal

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/physix/device"
)

func newSimScreen(t *testing.T, w, h, hold int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return NewWithScreen(sim, w, h, 60, hold), sim
}

func TestKeyButtons(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []device.Button
	}{
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), []device.Button{device.ButtonRight}},
		{"shift down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift), []device.Button{device.ButtonB, device.ButtonDown}},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), []device.Button{device.ButtonA}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []device.Button{device.ButtonA}},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), []device.Button{device.ButtonB}},
		{"unmapped", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyButtons(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keyButtons = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeldKeyDecay(t *testing.T) {
	s, _ := newSimScreen(t, 16, 8, 3)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	for i := 0; i < 3; i++ {
		s.Poll()
		if !s.Held(device.ButtonRight) {
			t.Fatalf("poll %d: right not held", i)
		}
		if got := s.JustPressed(device.ButtonRight); got != (i == 0) {
			t.Errorf("poll %d: JustPressed = %v", i, got)
		}
	}
	s.Poll()
	if s.Held(device.ButtonRight) {
		t.Error("right still held after hold window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	s, _ := newSimScreen(t, 16, 8, 2)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	s.HandleEvent(right)
	s.Poll()
	s.HandleEvent(right)
	s.Poll()
	s.Poll()
	if !s.Held(device.ButtonRight) || s.JustPressed(device.ButtonRight) {
		t.Error("repeated key should stay held without a new edge")
	}
}

func TestEscapeCloses(t *testing.T) {
	s, _ := newSimScreen(t, 16, 8, 3)
	if s.ShouldClose() {
		t.Fatal("closed before any input")
	}
	s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !s.ShouldClose() {
		t.Error("escape did not close")
	}
}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		upper, lower bool
		want         rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}
	for _, tt := range tests {
		if got := halfBlock(tt.upper, tt.lower); got != tt.want {
			t.Errorf("halfBlock(%v, %v) = %q, want %q", tt.upper, tt.lower, got, tt.want)
		}
	}
}

func TestPresent(t *testing.T) {
	s, sim := newSimScreen(t, 4, 4, 3)
	s.FillRect(0, 0, 1, 1)
	s.FillRect(1, 1, 1, 1)
	s.FillRect(2, 0, 1, 2)
	s.PrintLine("Hi")
	s.Present()

	want := []rune{'▀', '▄', '█', ' '}
	for x, r := range want {
		got, _, _, _ := sim.GetContent(x, 0)
		if got != r {
			t.Errorf("cell (%d, 0) = %q, want %q", x, got, r)
		}
	}
	// Two cell rows of pixels, a blank row, then text.
	if got, _, _, _ := sim.GetContent(0, 3); got != 'H' {
		t.Errorf("text cell = %q, want 'H'", got)
	}
	if s.Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Frames())
	}
}

func TestScreenSatisfiesDevices(t *testing.T) {
	s, _ := newSimScreen(t, 16, 8, 3)
	var _ device.Display = s
	var _ device.Input = s
	var _ device.Pacer = s
	var _ device.Text = s
}

func TestFiniStopsBlockedPump(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	s := NewWithScreen(sim, 16, 8, 60, 3)
	s.events = make(chan tcell.Event) // nobody drains after the first event

	exited := make(chan struct{})
	go func() {
		s.pump()
		close(exited)
	}()

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	select {
	case <-s.events:
	case <-time.After(time.Second):
		t.Fatal("pump did not forward the first event")
	}
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	s.Fini()
	s.Fini()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pump still running after Fini")
	}
}
