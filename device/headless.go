package device

import (
	"math/rand"
	"strings"
	"time"
)

// Framebuffer is an in-memory 1-bit Display and Text sink.
type Framebuffer struct {
	width, height int
	pix           []bool

	lines   []string
	pending strings.Builder

	frames int
}

// NewFramebuffer creates a cleared framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Clear blanks every pixel and resets the text cursor.
func (f *Framebuffer) Clear() {
	clear(f.pix)
	f.lines = f.lines[:0]
	f.pending.Reset()
}

// FillRect sets every pixel in the rectangle, clipped to the surface.
func (f *Framebuffer) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			f.set(px, py)
		}
	}
}

// DrawRect sets the outline of the rectangle, clipped to the surface.
func (f *Framebuffer) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		f.set(px, y)
		f.set(px, y+h-1)
	}
	for py := y; py < y+h; py++ {
		f.set(x, py)
		f.set(x+w-1, py)
	}
}

// Present finishes the frame.
func (f *Framebuffer) Present() {
	f.frames++
}

// Pixel reports whether the pixel at (x, y) is lit. Out of range is unlit.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.pix[y*f.width+x]
}

// Lit counts lit pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for _, p := range f.pix {
		if p {
			n++
		}
	}
	return n
}

// Frames returns the number of presented frames.
func (f *Framebuffer) Frames() int { return f.frames }

// Print appends to the current text line.
func (f *Framebuffer) Print(s string) {
	f.pending.WriteString(s)
}

// PrintLine appends s and ends the current line.
func (f *Framebuffer) PrintLine(s string) {
	f.pending.WriteString(s)
	f.lines = append(f.lines, f.pending.String())
	f.pending.Reset()
}

// Lines returns the text written since the last Clear, including an unfinished line.
func (f *Framebuffer) Lines() []string {
	out := append([]string(nil), f.lines...)
	if f.pending.Len() > 0 {
		out = append(out, f.pending.String())
	}
	return out
}

func (f *Framebuffer) set(x, y int) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = true
}

// ButtonState tracks held buttons across two polls to derive edges.
type ButtonState struct {
	previous, current Buttons
}

// Update latches a new held set.
func (s *ButtonState) Update(held Buttons) {
	s.previous = s.current
	s.current = held
}

// Held reports whether b is down this frame.
func (s *ButtonState) Held(b Button) bool { return s.current.Has(b) }

// JustPressed reports whether b went down this frame.
func (s *ButtonState) JustPressed(b Button) bool {
	return s.current.Has(b) && !s.previous.Has(b)
}

// ScriptedInput replays one held-button set per Poll. After the script runs
// out, no buttons are held.
type ScriptedInput struct {
	ButtonState
	script []Buttons
	next   int
}

// NewScriptedInput creates an input that plays frames in order.
func NewScriptedInput(frames ...Buttons) *ScriptedInput {
	return &ScriptedInput{script: frames}
}

// Poll advances to the next scripted frame.
func (s *ScriptedInput) Poll() {
	var held Buttons
	if s.next < len(s.script) {
		held = s.script[s.next]
		s.next++
	}
	s.Update(held)
}

// Remaining returns the number of unplayed frames.
func (s *ScriptedInput) Remaining() int { return len(s.script) - s.next }

// IdleInput never reports a button.
type IdleInput struct{}

func (IdleInput) Poll()                   {}
func (IdleInput) Held(Button) bool        { return false }
func (IdleInput) JustPressed(Button) bool { return false }

// EveryFrame is a pacer that is always due.
type EveryFrame struct{}

func (EveryFrame) FrameDue() bool { return true }

// ClockPacer releases one frame per interval of the supplied clock.
type ClockPacer struct {
	interval time.Duration
	now      func() time.Time
	next     time.Time
}

// NewClockPacer creates a pacer for fps frames per second. A nil now uses time.Now.
func NewClockPacer(fps int, now func() time.Time) *ClockPacer {
	if now == nil {
		now = time.Now
	}
	if fps <= 0 {
		fps = 60
	}
	return &ClockPacer{
		interval: time.Second / time.Duration(fps),
		now:      now,
	}
}

// FrameDue reports whether the next frame should run and schedules the one after.
func (p *ClockPacer) FrameDue() bool {
	t := p.now()
	if t.Before(p.next) {
		return false
	}
	p.next = p.next.Add(p.interval)
	// Don't try to catch up after a stall.
	if p.next.Before(t) {
		p.next = t.Add(p.interval)
	}
	return true
}

// Rand adapts math/rand to Random.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a seeded Random.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [min, max), or min when the range is empty.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}
