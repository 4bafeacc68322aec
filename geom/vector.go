// Package geom defines the 2D value types and shape queries built on fixed.Number.
package geom

import (
	"fmt"

	"github.com/pthm-cable/physix/fixed"
)

// Vector2 is a displacement, velocity or force.
type Vector2 struct {
	X, Y fixed.Number
}

// Vec builds a Vector2 from integer components.
func Vec(x, y int) Vector2 {
	return Vector2{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s fixed.Number) Vector2 {
	return Vector2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// Div divides both components by s. s must be nonzero.
func (v Vector2) Div(s fixed.Number) Vector2 {
	return Vector2{X: v.X.Div(s), Y: v.Y.Div(s)}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}
