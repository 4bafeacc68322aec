package game

import "github.com/pthm-cable/physix/components"

// World sizes.
const (
	BodyCount   = 8
	PlayerIndex = 0
)

// World holds every simulated body. The player is kept apart from the free
// bodies; both go through the same physics step.
type World struct {
	Player components.RigidBody
	Free   [BodyCount - 1]components.RigidBody
}

// Len returns the number of bodies, always BodyCount.
func (w *World) Len() int { return 1 + len(w.Free) }

// Body returns the body at index i; index PlayerIndex is the player.
func (w *World) Body(i int) *components.RigidBody {
	if i == PlayerIndex {
		return &w.Player
	}
	return &w.Free[i-1]
}

// ForEach calls fn for every body in index order, player first.
func (w *World) ForEach(fn func(i int, b *components.RigidBody)) {
	fn(PlayerIndex, &w.Player)
	for i := range w.Free {
		fn(i+1, &w.Free[i])
	}
}

// Bodies returns a copy of all bodies, player first.
func (w *World) Bodies() []components.RigidBody {
	bodies := make([]components.RigidBody, 0, BodyCount)
	bodies = append(bodies, w.Player)
	return append(bodies, w.Free[:]...)
}
