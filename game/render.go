package game

import (
	"github.com/pthm-cable/physix/components"
)

// draw renders one frame: free bodies filled, the player outlined.
func (g *Game) draw() {
	g.display.Clear()

	for i := range g.world.Free {
		g.drawBody(&g.world.Free[i], g.display.FillRect)
	}
	g.drawBody(&g.world.Player, g.display.DrawRect)

	if g.settings.ShowStats && g.text != nil {
		for _, line := range g.StatsLines() {
			g.text.PrintLine(line)
		}
	}

	g.display.Present()
}

func (g *Game) drawBody(b *components.RigidBody, rect func(x, y, w, h int)) {
	rect(b.Position.X.Int(), b.Position.Y.Int(), g.bodySize, g.bodySize)
}

// StatsLines returns the diagnostics panel text.
func (g *Game) StatsLines() []string {
	gravity := "Gravity: Off"
	if g.settings.GravityEnabled {
		if g.settings.GravityDirection() == "up" {
			gravity = "Gravity: On (Up)"
		} else {
			gravity = "Gravity: On (Down)"
		}
	}
	return []string{
		gravity,
		"Friction: " + g.tuning.Friction.String(),
		"Gravity force: " + g.tuning.GravityCoefficient.String(),
		"Restitution: " + g.tuning.Restitution.String(),
	}
}
