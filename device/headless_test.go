package device

import (
	"testing"
	"time"
)

func TestButtonSet(t *testing.T) {
	s := ButtonSet(ButtonUp, ButtonB)
	if !s.Has(ButtonUp) || !s.Has(ButtonB) {
		t.Errorf("set %08b missing members", s)
	}
	if s.Has(ButtonA) || s.Has(ButtonDown) {
		t.Errorf("set %08b has extra members", s)
	}
	if ButtonLeft.String() != "left" || Button(99).String() != "unknown" {
		t.Error("unexpected button names")
	}
}

func TestFramebufferFillAndOutline(t *testing.T) {
	fb := NewFramebuffer(16, 8)

	fb.FillRect(1, 1, 3, 3)
	if got := fb.Lit(); got != 9 {
		t.Errorf("filled 3x3 lit %d pixels, want 9", got)
	}

	fb.Clear()
	fb.DrawRect(4, 2, 4, 4)
	if got := fb.Lit(); got != 12 {
		t.Errorf("outlined 4x4 lit %d pixels, want 12", got)
	}
	if fb.Pixel(5, 3) {
		t.Error("outline interior is lit")
	}
	if !fb.Pixel(4, 2) || !fb.Pixel(7, 5) {
		t.Error("outline corners are not lit")
	}
}

func TestFramebufferClips(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.FillRect(-2, -2, 4, 4)
	if got := fb.Lit(); got != 4 {
		t.Errorf("clipped fill lit %d pixels, want 4", got)
	}
	fb.FillRect(6, 6, 10, 10)
	if got := fb.Lit(); got != 8 {
		t.Errorf("lit %d pixels, want 8", got)
	}
	if fb.Pixel(8, 0) || fb.Pixel(-1, 0) {
		t.Error("out of range pixel reported lit")
	}
}

func TestFramebufferText(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Print("Gravity: ")
	fb.PrintLine("On")
	fb.Print("tail")

	got := fb.Lines()
	if len(got) != 2 || got[0] != "Gravity: On" || got[1] != "tail" {
		t.Errorf("Lines() = %q", got)
	}

	fb.Clear()
	if len(fb.Lines()) != 0 {
		t.Errorf("Lines() after Clear = %q", fb.Lines())
	}
}

func TestFramebufferPresentCounts(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Present()
	fb.Present()
	if fb.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", fb.Frames())
	}
}

func TestScriptedInputEdges(t *testing.T) {
	in := NewScriptedInput(
		ButtonSet(ButtonA),
		ButtonSet(ButtonA),
		ButtonSet(),
		ButtonSet(ButtonA, ButtonB),
	)

	tests := []struct {
		held, pressed bool
	}{
		{true, true},
		{true, false},
		{false, false},
		{true, true},
		{false, false}, // script exhausted
	}
	for i, tt := range tests {
		in.Poll()
		if got := in.Held(ButtonA); got != tt.held {
			t.Errorf("frame %d: Held(A) = %v, want %v", i, got, tt.held)
		}
		if got := in.JustPressed(ButtonA); got != tt.pressed {
			t.Errorf("frame %d: JustPressed(A) = %v, want %v", i, got, tt.pressed)
		}
	}
	if in.Remaining() != 0 {
		t.Errorf("Remaining() = %d", in.Remaining())
	}
}

func TestClockPacer(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewClockPacer(50, func() time.Time { return now })

	if !p.FrameDue() {
		t.Fatal("first frame should be due")
	}
	if p.FrameDue() {
		t.Error("second query at the same instant should not be due")
	}

	now = now.Add(10 * time.Millisecond)
	if p.FrameDue() {
		t.Error("frame due before interval elapsed")
	}

	now = now.Add(10 * time.Millisecond)
	if !p.FrameDue() {
		t.Error("frame not due after interval elapsed")
	}

	// A long stall releases one frame, not a burst.
	now = now.Add(time.Second)
	if !p.FrameDue() {
		t.Error("frame not due after stall")
	}
	if p.FrameDue() {
		t.Error("pacer tried to catch up after stall")
	}
}

func TestEveryFrame(t *testing.T) {
	var p Pacer = EveryFrame{}
	for i := 0; i < 3; i++ {
		if !p.FrameDue() {
			t.Fatal("EveryFrame not due")
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Range(-3, 3)
		if v < -3 || v >= 3 {
			t.Fatalf("Range(-3, 3) = %d", v)
		}
	}
	if got := r.Range(5, 5); got != 5 {
		t.Errorf("empty Range = %d, want 5", got)
	}

	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 10; i++ {
		if a.Range(0, 100) != b.Range(0, 100) {
			t.Fatal("same seed produced different sequences")
		}
	}
}
