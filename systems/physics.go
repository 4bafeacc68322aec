// Package systems contains the per-frame simulation steps.
package systems

import (
	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// Tuning holds the immutable physics coefficients.
type Tuning struct {
	Friction             fixed.Number
	GravityCoefficient   fixed.Number
	Restitution          fixed.Number
	RestitutionThreshold fixed.Number
	InputForce           fixed.Number
}

// Environment is the per-frame state the physics step reads.
type Environment struct {
	GravityEnabled bool
	Gravity        geom.Vector2
	Tuning         Tuning
	Bounds         Bounds
}

// Bounds is the region a body's top-left corner may occupy.
type Bounds struct {
	geom.Rectangle
}

// NewBounds computes bounds for square bodies of the given size on a screen.
// The right and bottom edges are screen dimension minus body size.
func NewBounds(screenWidth, screenHeight, bodySize int) Bounds {
	return BoundsFromMax(screenWidth-bodySize, screenHeight-bodySize)
}

// BoundsFromMax builds bounds from the largest allowed top-left coordinate.
func BoundsFromMax(maxX, maxY int) Bounds {
	return Bounds{geom.Rect(0, 0, uint(maxX), uint(maxY))}
}

// Contacts records which walls a body touched during a step.
type Contacts uint8

const (
	ContactLeft Contacts = 1 << iota
	ContactRight
	ContactTop
	ContactBottom
	// ContactSettled is set when a vertical contact zeroed the velocity instead of bouncing.
	ContactSettled
)

// Any reports whether any wall was hit.
func (c Contacts) Any() bool { return c&(ContactLeft|ContactRight|ContactTop|ContactBottom) != 0 }

// Has reports whether all flags in f are set.
func (c Contacts) Has(f Contacts) bool { return c&f == f }

// Step runs the full ordered pipeline for one body: gravity, friction,
// horizontal bounds, vertical bounds, then position integration.
func Step(b *components.RigidBody, env *Environment) Contacts {
	ApplyGravity(b, env)
	ApplyFriction(b, env)
	contacts := ResolveBounds(b, env)
	Integrate(b)
	return contacts
}

// ApplyGravity adds the gravity vector to the velocity when gravity is on.
func ApplyGravity(b *components.RigidBody, env *Environment) {
	if env.GravityEnabled {
		b.Velocity = b.Velocity.Add(env.Gravity)
	}
}

// ApplyFriction scales velocity by the friction coefficient. With gravity only
// the horizontal component is scaled.
func ApplyFriction(b *components.RigidBody, env *Environment) {
	f := env.Tuning.Friction
	b.Velocity.X = b.Velocity.X.Mul(f)
	if !env.GravityEnabled {
		b.Velocity.Y = b.Velocity.Y.Mul(f)
	}
}

// ResolveBounds clamps the body inside the bounds and adjusts its velocity.
func ResolveBounds(b *components.RigidBody, env *Environment) Contacts {
	if env.Bounds.Intersects(b.Position) {
		return 0
	}
	contacts := ResolveHorizontal(b, env.Bounds)
	if env.GravityEnabled {
		contacts |= ResolveVerticalRestitution(b, env.Bounds, env.Tuning)
	} else {
		contacts |= ResolveVerticalElastic(b, env.Bounds)
	}
	return contacts
}

// ResolveHorizontal clamps x and reflects vx on crossing either side wall.
func ResolveHorizontal(b *components.RigidBody, bounds Bounds) Contacts {
	switch {
	case b.Position.X < bounds.Left():
		b.Position.X = bounds.Left()
		b.Velocity.X = -b.Velocity.X
		return ContactLeft
	case b.Position.X > bounds.Right():
		b.Position.X = bounds.Right()
		b.Velocity.X = -b.Velocity.X
		return ContactRight
	}
	return 0
}

// ResolveVerticalElastic clamps y and reflects vy on crossing the top or bottom wall.
func ResolveVerticalElastic(b *components.RigidBody, bounds Bounds) Contacts {
	switch {
	case b.Position.Y < bounds.Top():
		b.Position.Y = bounds.Top()
		b.Velocity.Y = -b.Velocity.Y
		return ContactTop
	case b.Position.Y > bounds.Bottom():
		b.Position.Y = bounds.Bottom()
		b.Velocity.Y = -b.Velocity.Y
		return ContactBottom
	}
	return 0
}

// ResolveVerticalRestitution clamps y on crossing the top or bottom wall. Speeds
// strictly above the threshold bounce with energy loss; the rest come to rest.
func ResolveVerticalRestitution(b *components.RigidBody, bounds Bounds, t Tuning) Contacts {
	var contact Contacts
	switch {
	case b.Position.Y < bounds.Top():
		b.Position.Y = bounds.Top()
		contact = ContactTop
	case b.Position.Y > bounds.Bottom():
		b.Position.Y = bounds.Bottom()
		contact = ContactBottom
	default:
		return 0
	}

	if b.Velocity.Y.Abs() > t.RestitutionThreshold {
		b.Velocity.Y = (-b.Velocity.Y).Mul(t.Restitution)
		return contact
	}
	b.Velocity.Y = 0
	return contact | ContactSettled
}

// Integrate advances the position by one frame of velocity.
func Integrate(b *components.RigidBody) {
	b.Position = b.Position.Add(b.Velocity)
}
