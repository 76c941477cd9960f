// Package game wires the simulation, camera, renderers, and UI into a
// runnable application loop for both graphical and headless modes.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/calder-vis/constel/camera"
	"github.com/calder-vis/constel/config"
	"github.com/calder-vis/constel/renderer"
	"github.com/calder-vis/constel/shapes"
	"github.com/calder-vis/constel/sim"
	"github.com/calder-vis/constel/telemetry"
	"github.com/calder-vis/constel/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// InitialShape overrides the config's startup formation when non-empty
	InitialShape string
}

// Game owns the simulation and all frontend state.
type Game struct {
	cfg *config.Config
	sim *sim.Sim

	cam       *camera.Camera
	particles *renderer.ParticleRenderer
	zones     *renderer.ZoneRenderer
	panel     *ui.Panel
	hud       *ui.HUD

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	logStats       bool
	stepsPerUpdate int

	lastFrame sim.Frame
}

// NewGameWithOptions creates a game from the global config.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	s, err := sim.New(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:            cfg,
		sim:            s,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		stepsPerUpdate: opts.StepsPerUpdate,
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	s.SetCollector(g.collector)
	s.SetPerf(g.perf)

	initial := cfg.Shape.Initial
	if opts.InitialShape != "" {
		initial = opts.InitialShape
	}
	if initial != "" && initial != "random" {
		if err := s.SetShape(initial, shapes.Options{}); err != nil {
			return nil, fmt.Errorf("initial shape: %w", err)
		}
	}

	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	if !opts.Headless {
		camCfg := cfg.Camera
		g.cam = camera.New(camCfg.Distance, camCfg.FOV, camCfg.PitchLimit,
			camCfg.Sensitivity, camCfg.AutoRotate)
		g.particles = renderer.NewParticleRenderer(cfg.World.Bound)
		g.zones = renderer.NewZoneRenderer()
		g.panel = ui.NewPanel(10, 10, 220,
			s.EasingNames(), cfg.Transition.Easing, cfg.Transition.DurationMs)
		g.hud = ui.NewHUD(int32(cfg.Screen.Width))
	}

	return g, nil
}

// Update advances the simulation one frame in graphical mode, handling
// input first.
func (g *Game) Update() {
	drift := g.handleInput()
	if g.panel.Paused {
		return
	}
	g.lastFrame = g.sim.Tick(drift)
	g.flushTelemetry()
}

// UpdateHeadless advances the simulation without graphics.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.lastFrame = g.sim.Tick(0)
		g.flushTelemetry()
	}
}

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 16, A: 255})

	rl.BeginMode3D(g.camera3D())
	g.particles.DrawDomain()
	g.particles.Draw(g.lastFrame, g.cam)
	g.zones.Enabled = g.panel.ShowZone
	g.zones.Draw(g.lastFrame.Zone)
	rl.EndMode3D()

	selected := g.panel.Draw(g.sim.ShapeNames(), g.sim.CurrentShape(), g.sim.TransitionActive())
	if selected != "" {
		err := g.sim.TransitionToShape(selected, shapes.Options{},
			float64(g.panel.DurationMs), g.panel.Easing(), nil)
		if err != nil {
			slog.Error("failed to start transition", "shape", selected, "error", err)
		}
	}
	g.hud.Draw(g.lastFrame.Tick, g.sim.Count(), len(g.lastFrame.Connections),
		g.sim.CurrentShape(), g.sim.TransitionActive())

	rl.EndDrawing()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.lastFrame.Tick
}

// Unload flushes any partial telemetry window and closes output files.
func (g *Game) Unload() {
	stats := g.collector.Flush()
	if stats.Ticks > 0 {
		if g.logStats {
			stats.Log()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// flushTelemetry emits window stats when the stats window fills.
func (g *Game) flushTelemetry() {
	if !g.collector.WindowReady() {
		return
	}

	stats := g.collector.Flush()
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.Log()
		perfStats.Log(stats.WindowEndTick)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// camera3D converts the orbit camera state into a raylib camera.
func (g *Game) camera3D() rl.Camera3D {
	eye := g.cam.Eye()
	return rl.Camera3D{
		Position:   rl.Vector3{X: float32(eye.X), Y: float32(eye.Y), Z: float32(eye.Z)},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(g.cam.FOVY),
		Projection: rl.CameraPerspective,
	}
}
