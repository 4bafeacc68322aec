package game

import (
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
	"github.com/pthm-cable/physix/systems"
)

// Settings is the runtime-mutable simulation state toggled from input.
type Settings struct {
	GravityEnabled bool
	Gravity        geom.Vector2
	ShowStats      bool
}

// GravityDirection reports "down" or "up" from the sign of the gravity vector.
func (s Settings) GravityDirection() string {
	if s.Gravity.Y < 0 {
		return "up"
	}
	return "down"
}

// TuningFromConfig converts the configured coefficients to fixed point.
func TuningFromConfig(p config.PhysicsConfig) systems.Tuning {
	return systems.Tuning{
		Friction:             fixed.FromFloat(p.Friction),
		GravityCoefficient:   fixed.FromFloat(p.Gravity),
		Restitution:          fixed.FromFloat(p.Restitution),
		RestitutionThreshold: fixed.FromFloat(p.RestitutionThreshold),
		InputForce:           fixed.FromFloat(p.InputForce),
	}
}

// DefaultSettings returns the startup settings; gravity points down.
func DefaultSettings(p config.PhysicsConfig, t systems.Tuning) Settings {
	return Settings{
		GravityEnabled: p.GravityEnabled,
		Gravity:        geom.Vector2{Y: t.GravityCoefficient},
	}
}
