// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned when loaded values cannot drive the simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Body      BodyConfig      `yaml:"body"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`      // logical pixels
	Height    int `yaml:"height"`     // logical pixels
	Scale     int `yaml:"scale"`      // window pixels per logical pixel (raylib only)
	TargetFPS int `yaml:"target_fps"`
}

// BodyConfig holds body creation parameters.
type BodyConfig struct {
	Size     int     `yaml:"size"`      // side length in pixels
	Mass     float64 `yaml:"mass"`      // must be > 0
	MinSpeed int     `yaml:"min_speed"` // inclusive lower bound for random velocity
	MaxSpeed int     `yaml:"max_speed"` // exclusive upper bound for random velocity
}

// PhysicsConfig holds the tuning coefficients. Values are truncated to 1/8 steps.
type PhysicsConfig struct {
	Friction             float64 `yaml:"friction"`
	Gravity              float64 `yaml:"gravity"`
	Restitution          float64 `yaml:"restitution"`
	RestitutionThreshold float64 `yaml:"restitution_threshold"`
	InputForce           float64 `yaml:"input_force"`
	GravityEnabled       bool    `yaml:"gravity_enabled"` // initial state
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"`
}

// AudioConfig holds bounce sound parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Frequency  float64 `yaml:"frequency"`   // Hz
	DurationMS int     `yaml:"duration_ms"` // blip length
	Volume     float64 `yaml:"volume"`      // 0..1
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	MaxX, MaxY     int // largest on-screen top-left coordinate for a body
	WindowWidth32  int32
	WindowHeight32 int32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// fixedMax is the largest value the 13.3 signed format holds.
const fixedMax = 4095.875

func (c *Config) validate() error {
	if c.Body.Size <= 0 {
		return fmt.Errorf("%w: body.size must be positive, got %d", ErrInvalidConfig, c.Body.Size)
	}
	if c.Screen.Width <= c.Body.Size || c.Screen.Height <= c.Body.Size {
		return fmt.Errorf("%w: screen %dx%d too small for body size %d",
			ErrInvalidConfig, c.Screen.Width, c.Screen.Height, c.Body.Size)
	}
	if c.Screen.Width > 4095 || c.Screen.Height > 4095 {
		return fmt.Errorf("%w: screen %dx%d exceeds fixed-point range", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	// Mass below 1/8 truncates to zero.
	if c.Body.Mass < 0.125 || c.Body.Mass > fixedMax {
		return fmt.Errorf("%w: body.mass must be in [0.125, %v], got %v", ErrInvalidConfig, fixedMax, c.Body.Mass)
	}
	if c.Body.MaxSpeed <= c.Body.MinSpeed {
		return fmt.Errorf("%w: body speed range [%d, %d) is empty", ErrInvalidConfig, c.Body.MinSpeed, c.Body.MaxSpeed)
	}
	coefficients := map[string]float64{
		"friction":              c.Physics.Friction,
		"gravity":               c.Physics.Gravity,
		"restitution":           c.Physics.Restitution,
		"restitution_threshold": c.Physics.RestitutionThreshold,
		"input_force":           c.Physics.InputForce,
	}
	for name, v := range coefficients {
		if math.IsNaN(v) || math.Abs(v) > fixedMax {
			return fmt.Errorf("%w: physics.%s = %v out of fixed-point range", ErrInvalidConfig, name, v)
		}
	}
	if c.Telemetry.WindowFrames <= 0 {
		return fmt.Errorf("%w: telemetry.window_frames must be positive", ErrInvalidConfig)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MaxX = c.Screen.Width - c.Body.Size
	c.Derived.MaxY = c.Screen.Height - c.Body.Size

	scale := c.Screen.Scale
	if scale <= 0 {
		scale = 1
	}
	c.Derived.WindowWidth32 = int32(c.Screen.Width * scale)
	c.Derived.WindowHeight32 = int32(c.Screen.Height * scale)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
