package game

import (
	"log/slog"

	"github.com/pthm-cable/physix/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	bodies := g.world.Bodies()
	stats := g.collector.Flush(g.tick, g.settings.GravityEnabled, g.settings.GravityDirection(), bodies)
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "window_end", stats.WindowEndTick, "perf", perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WriteBodies(telemetry.BodyRecords(stats.WindowEndTick, bodies)); err != nil {
			slog.Error("failed to write bodies", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
