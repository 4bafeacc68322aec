package geom

import (
	"fmt"

	"github.com/pthm-cable/physix/fixed"
)

// Point2 is an absolute location.
type Point2 struct {
	X, Y fixed.Number
}

// Pt builds a Point2 from integer coordinates.
func Pt(x, y int) Point2 {
	return Point2{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
}

// Add returns p moved by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p moved by -v.
func (p Point2) Sub(v Vector2) Point2 {
	return Point2{X: p.X - v.X, Y: p.Y - v.Y}
}

// VectorTo returns the displacement from p to q.
func (p Point2) VectorTo(q Point2) Vector2 {
	return Vector2{X: q.X - p.X, Y: q.Y - p.Y}
}

func (p Point2) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// DistanceSquared returns the squared distance between two points.
// The squares are summed in signed arithmetic and reinterpreted as unsigned, so
// the per-axis distance must stay below 64 and the sum below 8192 or the result wraps.
func DistanceSquared(a, b Point2) fixed.NumberU {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return (dx.Square() + dy.Square()).ToUnsigned()
}
