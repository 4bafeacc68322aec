package components

import (
	"testing"

	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

func TestNewRigidBody(t *testing.T) {
	b := NewRigidBody(geom.Pt(4, 5))
	if b.Mass != UnitMass {
		t.Errorf("Mass = %v, want 1", b.Mass)
	}
	if !b.Velocity.IsZero() {
		t.Errorf("Velocity = %v, want zero", b.Velocity)
	}
	if b.X() != fixed.FromInt(4) || b.Y() != fixed.FromInt(5) {
		t.Errorf("position = (%v, %v)", b.X(), b.Y())
	}
}

func TestApplyForce(t *testing.T) {
	tests := []struct {
		name  string
		mass  fixed.NumberU
		force geom.Vector2
		want  geom.Vector2
	}{
		{"unit mass", UnitMass, geom.Vec(2, -1), geom.Vec(2, -1)},
		{"heavy", fixed.FromIntU(2), geom.Vec(3, -4), geom.Vector2{X: fixed.FromFloat(1.5), Y: fixed.FromInt(-2)}},
		{"light", fixed.FromFloatU(0.5), geom.Vec(1, 1), geom.Vec(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRigidBodyWithMass(geom.Pt(0, 0), tt.mass)
			b.ApplyForce(tt.force)
			if b.Velocity != tt.want {
				t.Errorf("Velocity = %v, want %v", b.Velocity, tt.want)
			}
		})
	}
}

func TestApplyForceAccumulates(t *testing.T) {
	b := NewRigidBody(geom.Pt(0, 0))
	b.Velocity = geom.Vec(1, 1)
	b.ApplyForce(geom.Vec(1, -3))
	if b.Velocity != geom.Vec(2, -2) {
		t.Errorf("Velocity = %v, want <2, -2>", b.Velocity)
	}
}

func TestApplyForceZeroMassPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero mass")
		}
	}()
	b := NewRigidBodyWithMass(geom.Pt(0, 0), 0)
	b.ApplyForce(geom.Vec(1, 0))
}

func TestStop(t *testing.T) {
	b := NewRigidBody(geom.Pt(1, 1))
	b.Velocity = geom.Vec(3, 3)
	b.Stop()
	if !b.Velocity.IsZero() {
		t.Errorf("Velocity = %v after Stop", b.Velocity)
	}
}
