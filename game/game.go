// Package game runs the frame cycle: input, physics, render and telemetry.
package game

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/device"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/systems"
	"github.com/pthm-cable/physix/telemetry"
)

// Sound plays feedback for wall contacts.
type Sound interface {
	Bounce(contacts systems.Contacts)
}

// Options configures a Game.
type Options struct {
	Config        *config.Config // nil uses config.Cfg()
	OutputDir     string         // empty disables CSV output
	LogStats      bool
	Sound         Sound
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state and its collaborators.
type Game struct {
	display device.Display
	input   device.Input
	pacer   device.Pacer
	rng     device.Random
	text    device.Text
	sound   Sound

	world    World
	settings Settings
	tuning   systems.Tuning
	bounds   systems.Bounds

	bodySize           int
	mass               fixed.NumberU
	minSpeed, maxSpeed int

	tick int32

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// New creates a game wired to devs and places all bodies.
func New(devs device.Devices, opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if devs.Display == nil || devs.Input == nil || devs.Pacer == nil || devs.Random == nil {
		return nil, errors.New("game: display, input, pacer and random are required")
	}
	if w, h := devs.Display.Width(), devs.Display.Height(); w != cfg.Screen.Width || h != cfg.Screen.Height {
		return nil, fmt.Errorf("game: display is %dx%d, config screen is %dx%d", w, h, cfg.Screen.Width, cfg.Screen.Height)
	}

	tuning := TuningFromConfig(cfg.Physics)
	g := &Game{
		display: devs.Display,
		input:   devs.Input,
		pacer:   devs.Pacer,
		rng:     devs.Random,
		text:    devs.Text,
		sound:   opts.Sound,

		settings: DefaultSettings(cfg.Physics, tuning),
		tuning:   tuning,
		bounds:   systems.BoundsFromMax(cfg.Derived.MaxX, cfg.Derived.MaxY),

		bodySize: cfg.Body.Size,
		mass:     fixed.FromFloatU(cfg.Body.Mass),
		minSpeed: cfg.Body.MinSpeed,
		maxSpeed: cfg.Body.MaxSpeed,

		collector:     telemetry.NewCollector(cfg.Telemetry.WindowFrames, cfg.Screen.TargetFPS),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.WindowFrames, nil),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.outputManager = om

	g.Setup()
	return g, nil
}

// Loop runs one frame if the pacer says one is due and reports whether it did.
func (g *Game) Loop() bool {
	if !g.pacer.FrameDue() {
		return false
	}
	g.Frame()
	return true
}

// Frame runs one full input, physics and render cycle.
func (g *Game) Frame() {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.input.Poll()
	g.handleInput()

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.updatePhysics()

	g.perf.StartPhase(telemetry.PhaseRender)
	g.draw()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.flushTelemetry()

	g.perf.EndFrame()
}

// updatePhysics steps every body and reports wall contacts.
func (g *Game) updatePhysics() {
	env := g.environment()
	var hit systems.Contacts
	g.world.ForEach(func(_ int, b *components.RigidBody) {
		contacts := systems.Step(b, &env)
		g.collector.RecordContacts(contacts)
		hit |= contacts
	})
	if hit.Any() && g.sound != nil {
		g.sound.Bounce(hit)
	}
}

func (g *Game) environment() systems.Environment {
	return systems.Environment{
		GravityEnabled: g.settings.GravityEnabled,
		Gravity:        g.settings.Gravity,
		Tuning:         g.tuning,
		Bounds:         g.bounds,
	}
}

// World returns the simulated bodies.
func (g *Game) World() *World { return &g.world }

// Settings returns the current runtime settings.
func (g *Game) Settings() Settings { return g.settings }

// Tuning returns the physics coefficients.
func (g *Game) Tuning() systems.Tuning { return g.tuning }

// Bounds returns the region body positions are kept in.
func (g *Game) Bounds() systems.Bounds { return g.bounds }

// Tick returns the number of frames run.
func (g *Game) Tick() int32 { return g.tick }

// Unload releases output files.
func (g *Game) Unload() error {
	return g.outputManager.Close()
}
