package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"github.com/pthm-cable/physix/components"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Simulation settings at window end
	GravityEnabled bool   `csv:"gravity"`
	GravityDir     string `csv:"gravity_dir"`

	// Events during window
	LeftHits   int `csv:"left_hits"`
	RightHits  int `csv:"right_hits"`
	TopHits    int `csv:"top_hits"`
	BottomHits int `csv:"bottom_hits"`
	Settles    int `csv:"settles"`
	Shuffles   int `csv:"shuffles"`
	Stops      int `csv:"stops"`

	// Speed distribution across all bodies (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	PlayerSpeed   float64 `csv:"player_speed"`
	KineticEnergy float64 `csv:"kinetic_energy"` // sum of m*v^2/2
}

// Hits returns the total wall contacts in the window.
func (s WindowStats) Hits() int {
	return s.LeftHits + s.RightHits + s.TopHits + s.BottomHits
}

// Speed returns the magnitude of a body's velocity in pixels per frame.
func Speed(b components.RigidBody) float64 {
	return math.Hypot(b.Velocity.X.Float64(), b.Velocity.Y.Float64())
}

// KineticEnergy returns m*v^2/2 for a body.
func KineticEnergy(b components.RigidBody) float64 {
	v := Speed(b)
	return 0.5 * b.Mass.Float64() * v * v
}

// ComputeSpeedStats calculates mean, population std, median, p90 and max.
// Returns zeros for an empty slice.
func ComputeSpeedStats(values []float64) (mean, std, p50, p90, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	max = floats.Max(sorted)

	return mean, std, p50, p90, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Bool("gravity", s.GravityEnabled),
		slog.String("gravity_dir", s.GravityDir),
		slog.Int("left_hits", s.LeftHits),
		slog.Int("right_hits", s.RightHits),
		slog.Int("top_hits", s.TopHits),
		slog.Int("bottom_hits", s.BottomHits),
		slog.Int("settles", s.Settles),
		slog.Int("shuffles", s.Shuffles),
		slog.Int("stops", s.Stops),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("player_speed", s.PlayerSpeed),
		slog.Float64("kinetic_energy", s.KineticEnergy),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
