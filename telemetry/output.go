package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/physix/components"
	"github.com/pthm-cable/physix/config"
)

// BodyRecord is one body's state at the end of a window.
type BodyRecord struct {
	WindowEnd int32   `csv:"window_end"`
	Index     int     `csv:"index"`
	Player    bool    `csv:"player"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	VX        float64 `csv:"vx"`
	VY        float64 `csv:"vy"`
	Speed     float64 `csv:"speed"`
}

// BodyRecords snapshots bodies, the first being the player.
func BodyRecords(windowEnd int32, bodies []components.RigidBody) []BodyRecord {
	records := make([]BodyRecord, len(bodies))
	for i, b := range bodies {
		records[i] = BodyRecord{
			WindowEnd: windowEnd,
			Index:     i,
			Player:    i == 0,
			X:         b.Position.X.Float64(),
			Y:         b.Position.Y.Float64(),
			VX:        b.Velocity.X.Float64(),
			VY:        b.Velocity.Y.Float64(),
			Speed:     Speed(b),
		}
	}
	return records
}

// csvFile is an append-only CSV stream that writes its header once.
type csvFile struct {
	name          string
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{name: name, f: f}, nil
}

func (c *csvFile) write(records interface{}) error {
	var err error
	if !c.headerWritten {
		err = gocsv.Marshal(records, c.f)
		c.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, c.f)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}
	return nil
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	telemetry *csvFile
	bodies    *csvFile
	perf      *csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.telemetry, err = createCSV(dir, "telemetry.csv"); err != nil {
		return nil, err
	}
	if om.bodies, err = createCSV(dir, "bodies.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.write([]WindowStats{stats})
}

// WriteBodies writes one row per body to bodies.csv.
func (om *OutputManager) WriteBodies(records []BodyRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	return om.bodies.write(records)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{om.telemetry, om.bodies, om.perf} {
		if c == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
