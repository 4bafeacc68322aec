package systems

import (
	"github.com/pthm-cable/physix/device"
	"github.com/pthm-cable/physix/fixed"
	"github.com/pthm-cable/physix/geom"
)

// HeldReader reports held buttons.
type HeldReader interface {
	Held(b device.Button) bool
}

// PlayerForce sums one unit of magnitude per held direction. Opposite
// directions cancel.
func PlayerForce(in HeldReader, magnitude fixed.Number) geom.Vector2 {
	var force geom.Vector2
	if in.Held(device.ButtonLeft) {
		force.X -= magnitude
	}
	if in.Held(device.ButtonRight) {
		force.X += magnitude
	}
	if in.Held(device.ButtonUp) {
		force.Y -= magnitude
	}
	if in.Held(device.ButtonDown) {
		force.Y += magnitude
	}
	return force
}
