package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/physix/components"
)

// bodyAttr renders a body as a log group.
func bodyAttr(i int, b *components.RigidBody) slog.Attr {
	return slog.Group("body",
		slog.Int("index", i),
		slog.Float64("x", b.Position.X.Float64()),
		slog.Float64("y", b.Position.Y.Float64()),
		slog.Float64("vx", b.Velocity.X.Float64()),
		slog.Float64("vy", b.Velocity.Y.Float64()),
	)
}

// logWorldState logs every body at debug level.
func (g *Game) logWorldState() {
	ctx := context.Background()
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}
	g.world.ForEach(func(i int, b *components.RigidBody) {
		slog.LogAttrs(ctx, slog.LevelDebug, "body_state", slog.Int("tick", int(g.tick)), bodyAttr(i, b))
	})
}
