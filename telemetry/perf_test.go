package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time             { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPerfCollector_PhaseTiming(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(10, clock.now)

	for i := 0; i < 4; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseInput)
		clock.advance(100 * time.Microsecond)
		pc.StartPhase(PhasePhysics)
		clock.advance(300 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.AvgFrameDuration != 400*time.Microsecond {
		t.Errorf("AvgFrameDuration = %v, want 400µs", stats.AvgFrameDuration)
	}
	if stats.PhaseAvg[PhasePhysics] != 300*time.Microsecond {
		t.Errorf("physics avg = %v, want 300µs", stats.PhaseAvg[PhasePhysics])
	}
	if got := stats.PhasePct[PhaseInput]; got != 25 {
		t.Errorf("input pct = %v, want 25", got)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(2, clock.now)

	for _, d := range []time.Duration{time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond} {
		pc.StartFrame()
		pc.StartPhase(PhaseRender)
		clock.advance(d)
		pc.EndFrame()
	}

	stats := pc.Stats()
	// Only the last two frames remain.
	if stats.AvgFrameDuration != 15*time.Millisecond {
		t.Errorf("AvgFrameDuration = %v, want 15ms", stats.AvgFrameDuration)
	}
	if stats.MaxFrameDuration != 20*time.Millisecond {
		t.Errorf("MaxFrameDuration = %v, want 20ms", stats.MaxFrameDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10, nil).Stats()
	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgFrameDuration: 2 * time.Millisecond,
		PhasePct:         map[string]float64{PhasePhysics: 40, PhaseRender: 60},
	}
	row := s.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgFrameUS != 2000 {
		t.Errorf("row = %+v", row)
	}
	if row.PhysicsPct != 40 || row.RenderPct != 60 || row.InputPct != 0 {
		t.Errorf("phase pct = %+v", row)
	}
}
