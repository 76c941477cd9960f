// Package config provides configuration loading and validation for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters. The core treats the
// numeric knobs as opaque inputs; Validate only enforces the invariants the
// engine depends on.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Connections ConnectionsConfig `yaml:"connections"`
	Transition  TransitionConfig  `yaml:"transition"`
	Shape       ShapeConfig       `yaml:"shape"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Camera      CameraConfig      `yaml:"camera"`
}

// ScreenConfig holds display settings for the demo frontend.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the simulation domain dimensions.
type WorldConfig struct {
	Bound float64 `yaml:"bound"` // half-width of the cubic domain
}

// ParticlesConfig holds particle population parameters.
type ParticlesConfig struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`    // per-axis velocity limit, units/tick
	SizeMin float64 `yaml:"size_min"` // render hint only
	SizeMax float64 `yaml:"size_max"`
}

// PhysicsConfig holds per-tick kinematic constants.
type PhysicsConfig struct {
	DT             float64 `yaml:"dt"`              // seconds per tick
	DriftSmoothing float64 `yaml:"drift_smoothing"` // external drift low-pass factor, (0,1]
	VelocityDecay  float64 `yaml:"velocity_decay"`  // vy relaxation toward baseline, [0,1]
}

// ConnectionsConfig holds the connection search parameters.
type ConnectionsConfig struct {
	Distance float64 `yaml:"distance"`  // max particle distance for a drawn link
	CellSize float64 `yaml:"cell_size"` // spatial grid cell size, must be >= distance
}

// TransitionConfig holds formation transition defaults.
type TransitionConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	Easing     string  `yaml:"easing"`
}

// ShapeConfig names the formation applied at startup.
type ShapeConfig struct {
	Initial string `yaml:"initial"`
}

// TelemetryConfig holds telemetry window sizes.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks per perf rolling window
}

// CameraConfig holds demo camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`     // orbit radius
	FOV         float64 `yaml:"fov"`          // vertical field of view in degrees
	AutoRotate  float64 `yaml:"auto_rotate"`  // radians per second, 0 disables
	PitchLimit  float64 `yaml:"pitch_limit"`  // max |pitch| in radians
	Sensitivity float64 `yaml:"sensitivity"`  // radians per dragged pixel
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults
// and validating the result. If path is empty, only embedded defaults are
// used.
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configurations the engine cannot run correctly,
// instead of letting bad numbers propagate NaNs through particle state.
func (c *Config) Validate() error {
	if c.Particles.Count <= 0 {
		return fmt.Errorf("config: particle count must be positive, got %d", c.Particles.Count)
	}
	if c.World.Bound <= 0 {
		return fmt.Errorf("config: world bound must be positive, got %v", c.World.Bound)
	}
	if c.Particles.Speed <= 0 {
		return fmt.Errorf("config: particle speed must be positive, got %v", c.Particles.Speed)
	}
	if c.Particles.SizeMin <= 0 || c.Particles.SizeMax < c.Particles.SizeMin {
		return fmt.Errorf("config: particle sizes must satisfy 0 < size_min <= size_max, got [%v, %v]",
			c.Particles.SizeMin, c.Particles.SizeMax)
	}
	if c.Connections.Distance < 0 {
		return fmt.Errorf("config: connection distance must not be negative, got %v", c.Connections.Distance)
	}
	if c.Connections.CellSize <= 0 {
		return fmt.Errorf("config: grid cell size must be positive, got %v", c.Connections.CellSize)
	}
	// The grid only guarantees neighborhood completeness when the
	// connection distance fits in one cell. This is a hard contract, not
	// a degraded mode.
	if c.Connections.Distance > c.Connections.CellSize {
		return fmt.Errorf("config: connection distance %v exceeds grid cell size %v; near pairs would be missed",
			c.Connections.Distance, c.Connections.CellSize)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("config: dt must be positive, got %v", c.Physics.DT)
	}
	if c.Physics.DriftSmoothing <= 0 || c.Physics.DriftSmoothing > 1 {
		return fmt.Errorf("config: drift_smoothing must be in (0, 1], got %v", c.Physics.DriftSmoothing)
	}
	if c.Physics.VelocityDecay < 0 || c.Physics.VelocityDecay > 1 {
		return fmt.Errorf("config: velocity_decay must be in [0, 1], got %v", c.Physics.VelocityDecay)
	}
	return nil
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
