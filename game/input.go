package game

import (
	"github.com/pthm-cable/physix/device"
	"github.com/pthm-cable/physix/systems"
)

// Button roles.
const (
	ButtonModifier = device.ButtonB
	ButtonAction   = device.ButtonA // shuffle with modifier, stop without
)

// handleInput processes the buttons latched by the last Poll.
func (g *Game) handleInput() {
	if g.input.Held(ButtonModifier) {
		g.handleModifierInput()
		return
	}

	// The player's velocity changes directly, as if it had unit mass.
	force := systems.PlayerForce(g.input, g.tuning.InputForce)
	g.world.Player.Velocity = g.world.Player.Velocity.Add(force)

	// Emergency stop wins over any force applied this frame.
	if g.input.JustPressed(ButtonAction) {
		g.world.Player.Stop()
		g.collector.RecordStop()
	}
}

func (g *Game) handleModifierInput() {
	if g.input.JustPressed(ButtonAction) {
		g.Shuffle()
	}
	if g.input.JustPressed(device.ButtonDown) {
		g.ToggleGravity()
	}
	if g.input.JustPressed(device.ButtonUp) {
		g.InvertGravity()
	}
	if g.input.JustPressed(device.ButtonLeft) {
		g.ToggleStats()
	}
}
