package telemetry

import (
	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/systems"
)

// Collector accumulates events within frame windows and produces WindowStats.
type Collector struct {
	windowFrames int32
	fps          int

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	leftHits   int
	rightHits  int
	topHits    int
	bottomHits int
	settles    int
	shuffles   int
	stops      int
}

// NewCollector creates a new stats collector.
// windowFrames: frames per stats window
// fps: target frame rate (used for tick-to-time conversion)
func NewCollector(windowFrames, fps int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	if fps < 1 {
		fps = 60
	}
	return &Collector{
		windowFrames: int32(windowFrames),
		fps:          fps,
	}
}

// RecordContacts counts the wall contacts from one body's physics step.
func (c *Collector) RecordContacts(contacts systems.Contacts) {
	if contacts.Has(systems.ContactLeft) {
		c.leftHits++
	}
	if contacts.Has(systems.ContactRight) {
		c.rightHits++
	}
	if contacts.Has(systems.ContactTop) {
		c.topHits++
	}
	if contacts.Has(systems.ContactBottom) {
		c.bottomHits++
	}
	if contacts.Has(systems.ContactSettled) {
		c.settles++
	}
}

// RecordShuffle records a shuffle of all bodies.
func (c *Collector) RecordShuffle() {
	c.shuffles++
}

// RecordStop records an emergency stop of the player.
func (c *Collector) RecordStop() {
	c.stops++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// bodies must start with the player.
func (c *Collector) Flush(currentTick int32, gravityEnabled bool, gravityDir string, bodies []components.RigidBody) WindowStats {
	speeds := make([]float64, len(bodies))
	var energy float64
	for i, b := range bodies {
		speeds[i] = Speed(b)
		energy += KineticEnergy(b)
	}
	mean, std, p50, p90, max := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) / float64(c.fps),

		GravityEnabled: gravityEnabled,
		GravityDir:     gravityDir,

		LeftHits:   c.leftHits,
		RightHits:  c.rightHits,
		TopHits:    c.topHits,
		BottomHits: c.bottomHits,
		Settles:    c.settles,
		Shuffles:   c.shuffles,
		Stops:      c.stops,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP50:  p50,
		SpeedP90:  p90,
		SpeedMax:  max,

		KineticEnergy: energy,
	}
	if len(speeds) > 0 {
		stats.PlayerSpeed = speeds[0]
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.leftHits = 0
	c.rightHits = 0
	c.topHits = 0
	c.bottomHits = 0
	c.settles = 0
	c.shuffles = 0
	c.stops = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int32 {
	return c.windowFrames
}
