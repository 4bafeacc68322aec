// Package audio plays a piezo style beep when bodies hit the walls.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/systems"
)

// maxVoices caps overlapping blips so a burst of contacts stays a click.
const maxVoices = 4

// SoundManager mixes bounce blips onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	rate      beep.SampleRate
	frequency float64
	duration  time.Duration
	volume    float64
}

// NewSoundManager creates an uninitialized manager from the audio config.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		rate:      beep.SampleRate(cfg.SampleRate),
		frequency: cfg.Frequency,
		duration:  time.Duration(cfg.DurationMS) * time.Millisecond,
		volume:    cfg.Volume,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Bounce plays a blip. Floor and ceiling hits sound lower than side walls.
func (sm *SoundManager) Bounce(contacts systems.Contacts) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !contacts.Any() {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(sm.blip(BlipFrequency(sm.frequency, contacts)))
}

// blip builds one finite square wave burst.
func (sm *SoundManager) blip(freq float64) beep.Streamer {
	tone := beep.Take(sm.rate.N(sm.duration), NewSquareGenerator(sm.rate, freq))
	if sm.volume <= 0 {
		return &effects.Volume{Streamer: tone, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(sm.volume)}
}

// BlipFrequency returns the pitch for a set of contacts.
func BlipFrequency(base float64, contacts systems.Contacts) float64 {
	if contacts.Has(systems.ContactTop) || contacts.Has(systems.ContactBottom) {
		return base * 0.75
	}
	return base
}

// Cleanup silences and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SquareGenerator produces an endless full-scale square wave.
type SquareGenerator struct {
	step  float64
	phase float64
}

// NewSquareGenerator creates a square wave at freq Hz.
func NewSquareGenerator(sr beep.SampleRate, freq float64) *SquareGenerator {
	return &SquareGenerator{step: freq / float64(sr)}
}

func (g *SquareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 1.0
		if g.phase >= 0.5 {
			val = -1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		g.phase += g.step
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (g *SquareGenerator) Err() error { return nil }
