// Package main searches physics coefficients for a target bounce feel using CMA-ES.
package main

import (
	"math"

	"github.com/pthm-cable/physix/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the tunable physics coefficients.
// input_force is left to the player and not searched.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "friction", Path: "physics.friction", Min: 0.5, Max: 1.0, Default: 0.875},
			{Name: "gravity", Path: "physics.gravity", Min: 0.125, Max: 0.5, Default: 0.125},
			{Name: "restitution", Path: "physics.restitution", Min: 0.25, Max: 0.875, Default: 0.75},
			{Name: "restitution_threshold", Path: "physics.restitution_threshold", Min: 0.125, Max: 2.0, Default: 1.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds every value and truncates it to the 1/8 grid the
// simulation can represent.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = Quantize(math.Min(math.Max(v[i], spec.Min), spec.Max))
	}
	return clamped
}

// Quantize truncates toward zero to a multiple of 1/8.
func Quantize(v float64) float64 {
	return math.Trunc(v*8) / 8
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Physics.Friction = clamped[0]
	cfg.Physics.Gravity = clamped[1]
	cfg.Physics.Restitution = clamped[2]
	cfg.Physics.RestitutionThreshold = clamped[3]
}

// ExtractFromConfig reads the current parameter values from a config.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Physics.Friction,
		cfg.Physics.Gravity,
		cfg.Physics.Restitution,
		cfg.Physics.RestitutionThreshold,
	}
}
