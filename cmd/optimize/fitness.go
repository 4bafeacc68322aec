package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/game"
	"github.com/pthm-cable/physix/geom"
	"github.com/pthm-cable/physix/systems"
)

// DropResult summarizes one body dropped from the top-left corner with gravity on.
type DropResult struct {
	Bounces     int     // floor contacts that rebounded
	SettleFrame int     // first frame a floor contact came to rest, -1 if never
	Slide       float64 // horizontal distance covered, in pixels
}

// Settled reports whether the body came to rest on the floor.
func (r DropResult) Settled() bool { return r.SettleFrame >= 0 }

// SimulateDrop runs the physics step on a single body launched sideways at
// launch px/frame until it settles or maxFrames pass.
func SimulateDrop(cfg *config.Config, launch float64, maxFrames int) DropResult {
	tuning := game.TuningFromConfig(cfg.Physics)
	env := systems.Environment{
		GravityEnabled: true,
		Gravity:        geom.Vector2{Y: tuning.GravityCoefficient},
		Tuning:         tuning,
		Bounds:         systems.BoundsFromMax(cfg.Derived.MaxX, cfg.Derived.MaxY),
	}

	body := components.NewRigidBody(geom.Pt(0, 0))
	body.Velocity.X = fixed.FromFloat(launch)
	start := body.Position.X

	result := DropResult{SettleFrame: -1}
	for frame := 0; frame < maxFrames; frame++ {
		contacts := systems.Step(&body, &env)
		if !contacts.Has(systems.ContactBottom) {
			continue
		}
		if contacts.Has(systems.ContactSettled) {
			result.SettleFrame = frame
			break
		}
		result.Bounces++
	}
	result.Slide = (body.Position.X - start).Float64()
	return result
}

// Targets is the bounce feel being searched for.
type Targets struct {
	Bounces     int
	SettleFrame int
	Slide       float64
}

// unsettledPenalty is added when a drop never comes to rest.
const unsettledPenalty = 4.0

// Cost scores a drop against the targets as a sum of squared relative errors.
func (t Targets) Cost(r DropResult, maxFrames int) float64 {
	settle := r.SettleFrame
	penalty := 0.0
	if !r.Settled() {
		settle = maxFrames
		penalty = unsettledPenalty
	}
	return relErr(float64(r.Bounces), float64(t.Bounces)) +
		relErr(float64(settle), float64(t.SettleFrame)) +
		relErr(r.Slide, t.Slide) +
		penalty
}

func relErr(got, want float64) float64 {
	d := (got - want) / math.Max(math.Abs(want), 1)
	return d * d
}

// FitnessEvaluator runs headless drops and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	baseConfig *config.Config
	targets    Targets
	launch     float64
	maxFrames  int

	mu   sync.Mutex
	last DropResult
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, baseCfg *config.Config, targets Targets, launch float64, maxFrames int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		baseConfig: baseCfg,
		targets:    targets,
		launch:     launch,
		maxFrames:  maxFrames,
	}
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, raw)

	result := SimulateDrop(&cfg, fe.launch, fe.maxFrames)

	fe.mu.Lock()
	fe.last = result
	fe.mu.Unlock()

	return fe.targets.Cost(result, fe.maxFrames)
}

// LastResult returns the drop from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() DropResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}
