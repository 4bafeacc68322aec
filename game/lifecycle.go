package game

import (
	"log/slog"

	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// Setup randomizes every body, then resets the player to the screen centre at rest.
func (g *Game) Setup() {
	g.world.ForEach(func(_ int, b *components.RigidBody) {
		*b = components.NewRigidBodyWithMass(g.randomPosition(), g.mass)
		b.Velocity = geom.Vector2{X: g.randomSpeed(), Y: g.randomSpeed()}
	})
	g.world.Player = components.NewRigidBodyWithMass(g.center(), g.mass)

	slog.Info("setup", "bodies", g.world.Len(), "gravity", g.settings.GravityEnabled)
	g.logWorldState()
}

// Shuffle scatters every body over the screen and perturbs its velocity.
// With gravity on only the vertical component is perturbed.
func (g *Game) Shuffle() {
	g.world.ForEach(func(_ int, b *components.RigidBody) {
		b.Position = g.randomPosition()
		if !g.settings.GravityEnabled {
			b.Velocity.X += g.randomSpeed()
		}
		b.Velocity.Y += g.randomSpeed()
	})
	g.collector.RecordShuffle()

	slog.Info("shuffle", "tick", g.tick, "gravity", g.settings.GravityEnabled)
	g.logWorldState()
}

// ToggleGravity switches gravity on or off. Positions are untouched.
func (g *Game) ToggleGravity() {
	g.settings.GravityEnabled = !g.settings.GravityEnabled
	slog.Info("gravity_toggled", "tick", g.tick, "enabled", g.settings.GravityEnabled)
}

// InvertGravity flips the gravity vector keeping its magnitude.
func (g *Game) InvertGravity() {
	g.settings.Gravity = g.settings.Gravity.Neg()
	slog.Info("gravity_inverted", "tick", g.tick, "direction", g.settings.GravityDirection())
}

// ToggleStats shows or hides the diagnostics panel.
func (g *Game) ToggleStats() {
	g.settings.ShowStats = !g.settings.ShowStats
	slog.Info("stats_toggled", "tick", g.tick, "visible", g.settings.ShowStats)
}

// randomPosition picks whole pixels inside the bounds plus random fraction bits,
// staying strictly below the far edges.
func (g *Game) randomPosition() geom.Point2 {
	maxX := g.bounds.Right().Int()
	maxY := g.bounds.Bottom().Int()
	return geom.Point2{
		X: fixed.FromParts(g.rng.Range(0, maxX), g.randomFraction()),
		Y: fixed.FromParts(g.rng.Range(0, maxY), g.randomFraction()),
	}
}

// randomSpeed picks an integer in the configured speed range plus random fraction bits.
func (g *Game) randomSpeed() fixed.Number {
	return fixed.FromParts(g.rng.Range(g.minSpeed, g.maxSpeed), g.randomFraction())
}

func (g *Game) randomFraction() uint {
	return uint(g.rng.Range(0, 1<<fixed.FractionBits))
}

func (g *Game) center() geom.Point2 {
	return geom.Pt(g.bounds.Right().Int()/2, g.bounds.Bottom().Int()/2)
}
