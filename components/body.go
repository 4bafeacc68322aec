// Package components defines the per-object simulation state.
package components

import (
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// UnitMass is the default mass of a body.
var UnitMass = fixed.FromIntU(1)

// RigidBody holds one simulated object.
type RigidBody struct {
	Position geom.Point2
	Velocity geom.Vector2
	Mass     fixed.NumberU // must be nonzero
}

// NewRigidBody creates a resting unit-mass body at pos.
func NewRigidBody(pos geom.Point2) RigidBody {
	return RigidBody{Position: pos, Mass: UnitMass}
}

// NewRigidBodyWithMass creates a resting body with the given mass.
func NewRigidBodyWithMass(pos geom.Point2, mass fixed.NumberU) RigidBody {
	return RigidBody{Position: pos, Mass: mass}
}

// X returns the horizontal position.
func (b *RigidBody) X() fixed.Number { return b.Position.X }

// Y returns the vertical position.
func (b *RigidBody) Y() fixed.Number { return b.Position.Y }

// ApplyForce adds force / mass to the velocity. A zero mass panics.
func (b *RigidBody) ApplyForce(force geom.Vector2) {
	b.Velocity = b.Velocity.Add(force.Div(b.Mass.ToSigned()))
}

// Stop zeroes the velocity.
func (b *RigidBody) Stop() {
	b.Velocity = geom.Vector2{}
}
