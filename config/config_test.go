package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if cfg.Particles.Count <= 0 || cfg.World.Bound <= 0 {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
	if cfg.Connections.Distance > cfg.Connections.CellSize {
		t.Errorf("default connection distance %v exceeds cell size %v",
			cfg.Connections.Distance, cfg.Connections.CellSize)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "particles:\n  count: 42\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particles.Count != 42 {
		t.Errorf("overlay not applied: count = %d", cfg.Particles.Count)
	}
	// Untouched keys keep their defaults.
	if cfg.World.Bound <= 0 {
		t.Errorf("overlay clobbered defaults: bound = %v", cfg.World.Bound)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }, "count"},
		{"zero count", func(c *Config) { c.Particles.Count = 0 }, "count"},
		{"negative bound", func(c *Config) { c.World.Bound = -10 }, "bound"},
		{"negative speed", func(c *Config) { c.Particles.Speed = -1 }, "speed"},
		{"negative distance", func(c *Config) { c.Connections.Distance = -5 }, "distance"},
		{"zero cell size", func(c *Config) { c.Connections.CellSize = 0 }, "cell size"},
		{"distance exceeds cell", func(c *Config) {
			c.Connections.Distance = 50
			c.Connections.CellSize = 30
		}, "exceeds grid cell size"},
		{"zero dt", func(c *Config) { c.Physics.DT = 0 }, "dt"},
		{"bad smoothing", func(c *Config) { c.Physics.DriftSmoothing = 1.5 }, "drift_smoothing"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Particles.Count = 123

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Particles.Count != 123 {
		t.Errorf("roundtrip lost count: %d", back.Particles.Count)
	}
}
