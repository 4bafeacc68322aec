package geom

import "github.com/pthm-cable/physix/fixed"

// Size2 is a width/height pair.
type Size2 struct {
	Width, Height fixed.NumberU
}

// Sz builds a Size2 from integer dimensions.
func Sz(w, h uint) Size2 {
	return Size2{Width: fixed.FromIntU(w), Height: fixed.FromIntU(h)}
}

// Rectangle is an axis-aligned box anchored at its top-left corner.
type Rectangle struct {
	Position Point2
	Size     Size2
}

// Rect builds a Rectangle from integer coordinates and dimensions.
func Rect(x, y int, w, h uint) Rectangle {
	return Rectangle{Position: Pt(x, y), Size: Sz(w, h)}
}

func (r Rectangle) Left() fixed.Number   { return r.Position.X }
func (r Rectangle) Top() fixed.Number    { return r.Position.Y }
func (r Rectangle) Right() fixed.Number  { return r.Position.X + r.Size.Width.ToSigned() }
func (r Rectangle) Bottom() fixed.Number { return r.Position.Y + r.Size.Height.ToSigned() }

// Intersects reports whether p lies inside r or on its edge.
func (r Rectangle) Intersects(p Point2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// RectanglesIntersect reports whether a and b overlap or touch.
func RectanglesIntersect(a, b Rectangle) bool {
	return !(a.Right() < b.Left() ||
		a.Left() > b.Right() ||
		a.Bottom() < b.Top() ||
		a.Top() > b.Bottom())
}

// Circle is a center and radius. Radii must stay small enough that
// (r1+r2)^2 fits NumberU.
type Circle struct {
	Position Point2
	Radius   fixed.NumberU
}

// Diameter returns twice the radius.
func (c Circle) Diameter() fixed.NumberU { return c.Radius + c.Radius }

// RadiusSquared returns the radius squared.
func (c Circle) RadiusSquared() fixed.NumberU { return c.Radius.Square() }

// Size returns the circle's radius on both axes.
func (c Circle) Size() Size2 { return Size2{Width: c.Radius, Height: c.Radius} }

// Intersects reports whether p lies within or on the circle.
func (c Circle) Intersects(p Point2) bool {
	return DistanceSquared(c.Position, p) <= c.RadiusSquared()
}

// Contains reports whether p lies strictly within the circle.
func (c Circle) Contains(p Point2) bool {
	return DistanceSquared(c.Position, p) < c.RadiusSquared()
}

// CirclesIntersect reports whether a and b overlap or touch.
func CirclesIntersect(a, b Circle) bool {
	return DistanceSquared(a.Position, b.Position) <= (a.Radius + b.Radius).Square()
}
