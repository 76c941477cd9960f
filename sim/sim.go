// Package sim wires the particle set, spatial index, shape registry, and
// transition engine into a single-writer simulation. One external driver
// calls Tick once per frame; Tick and the shape entry points must not be
// invoked concurrently on the same instance.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/components"
	"github.com/calder-vis/constel/config"
	"github.com/calder-vis/constel/easing"
	"github.com/calder-vis/constel/geom"
	"github.com/calder-vis/constel/shapes"
	"github.com/calder-vis/constel/systems"
	"github.com/calder-vis/constel/telemetry"
)

// Frame is the renderable output of one tick. Its slices are reused across
// ticks; consumers must not retain them past the next Tick call.
type Frame struct {
	Tick        int64
	Positions   []r3.Vec
	Sizes       []float64
	Connections []systems.Connection
	// Zone is the active exclusion zone descriptor, nil when none is in
	// effect. Read-only, for debug visualization.
	Zone geom.Solid
	// Transitioning reports whether a formation transition is in flight.
	Transitioning bool
}

// Sim holds the complete simulation state. The particle count is fixed at
// construction; changing it means building a new Sim.
type Sim struct {
	cfg *config.Config
	rng *rand.Rand

	world  *ecs.World
	mapper *ecs.Map5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Transition,
		components.Body,
	]
	filter *ecs.Filter5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Transition,
		components.Body,
	]

	posMap   *ecs.Map1[components.Position]
	bodyMap  *ecs.Map1[components.Body]
	transMap *ecs.Map1[components.Transition]
	prevMap  *ecs.Map1[components.PrevPosition]
	velMap   *ecs.Map1[components.Velocity]

	// entities in creation order; generator targets, grid indices, and
	// connection endpoints all index this ordering.
	entities []ecs.Entity

	shapes  *shapes.Registry
	easings *easing.Registry
	grid    *systems.SpatialGrid
	motion  systems.MotionConfig
	engine  transitionEngine

	current shapes.Shape
	pending shapes.Shape

	tick  int64
	drift float64 // smoothed external vertical drift

	// scratch buffers reused every tick
	positions []r3.Vec
	sizes     []float64
	conns     []systems.Connection
	hood      []int32

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
}

// New creates a simulation from a validated config. Seed 0 is replaced by a
// fixed default so zero-valued options stay deterministic.
func New(cfg *config.Config, seed int64) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if seed == 0 {
		seed = 42
	}

	world := ecs.NewWorld()
	s := &Sim{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		world: world,
		mapper: ecs.NewMap5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Transition,
			components.Body,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Transition,
			components.Body,
		](world),
		posMap:   ecs.NewMap1[components.Position](world),
		bodyMap:  ecs.NewMap1[components.Body](world),
		transMap: ecs.NewMap1[components.Transition](world),
		prevMap:  ecs.NewMap1[components.PrevPosition](world),
		velMap:   ecs.NewMap1[components.Velocity](world),
		shapes:   shapes.NewRegistry(),
		easings:  easing.NewRegistry(),
		grid:     systems.NewSpatialGrid(cfg.World.Bound, cfg.Connections.CellSize),
		motion: systems.MotionConfig{
			Bound:         cfg.World.Bound,
			SpeedLimit:    cfg.Particles.Speed,
			VelocityDecay: cfg.Physics.VelocityDecay,
		},
		current: shapes.Shape{Name: "random"},
	}

	s.spawnParticles(cfg.Particles.Count)
	s.positions = make([]r3.Vec, cfg.Particles.Count)
	s.sizes = make([]float64, cfg.Particles.Count)
	return s, nil
}

// SetCollector attaches a telemetry collector. Optional; nil disables.
func (s *Sim) SetCollector(c *telemetry.Collector) { s.collector = c }

// SetPerf attaches a performance collector. Optional; nil disables.
func (s *Sim) SetPerf(p *telemetry.PerfCollector) { s.perf = p }

// Count returns the fixed particle count.
func (s *Sim) Count() int { return len(s.entities) }

// spawnParticles creates the initial free-roaming population: uniform
// positions in the domain cube, per-axis velocities within the speed limit.
func (s *Sim) spawnParticles(n int) {
	bound := s.cfg.World.Bound
	speed := s.cfg.Particles.Speed
	sizeMin := s.cfg.Particles.SizeMin
	sizeMax := s.cfg.Particles.SizeMax

	s.entities = make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		p := r3.Vec{
			X: s.uniform(-bound, bound),
			Y: s.uniform(-bound, bound),
			Z: s.uniform(-bound, bound),
		}
		v := r3.Vec{
			X: s.uniform(-speed, speed),
			Y: s.uniform(-speed, speed),
			Z: s.uniform(-speed, speed),
		}

		pos := components.Position{Vec: p}
		prev := components.PrevPosition{Vec: p}
		vel := components.Velocity{Vec: v, BaseY: v.Y}
		trans := components.Transition{Origin: p}
		body := components.Body{Size: s.uniform(sizeMin, sizeMax)}

		s.entities = append(s.entities, s.mapper.NewEntity(&pos, &prev, &vel, &trans, &body))
	}
}

// Tick advances the simulation one frame. driftY is the externally supplied
// vertical drift (scroll input); NaN or infinite inputs are dropped at the
// boundary so one bad frame cannot poison particle state.
func (s *Sim) Tick(driftY float64) Frame {
	if s.perf != nil {
		s.perf.StartTick()
		s.perf.StartPhase(telemetry.PhaseAdvance)
	}

	if math.IsNaN(driftY) || math.IsInf(driftY, 0) {
		driftY = 0
	}
	s.drift += (driftY - s.drift) * s.cfg.Physics.DriftSmoothing

	if s.engine.running {
		s.advanceTransition()
	} else {
		s.advanceFreeRoaming()
	}

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseGrid)
	}
	for i, e := range s.entities {
		s.positions[i] = s.posMap.Get(e).Vec
		s.sizes[i] = s.bodyMap.Get(e).Size
	}
	s.grid.Rebuild(s.positions)

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseConnect)
	}
	var crosses func(a, b r3.Vec) bool
	// The zone is suppressed while a transition is in flight; connections
	// are never rejected against a zone that is about to disappear.
	if !s.engine.running && s.current.HasExclusionZone() {
		crosses = s.current.CrossesExclusionZone
	}
	s.conns = systems.Connections(s.conns[:0], s.grid, s.positions,
		s.cfg.Connections.Distance, crosses, &s.hood)

	s.tick++
	frame := Frame{
		Tick:          s.tick,
		Positions:     s.positions,
		Sizes:         s.sizes,
		Connections:   s.conns,
		Zone:          s.ActiveZone(),
		Transitioning: s.engine.running,
	}

	if s.collector != nil {
		s.collector.RecordTick(len(s.conns), s.engine.running)
	}
	if s.perf != nil {
		s.perf.EndTick()
	}
	return frame
}

// advanceFreeRoaming integrates velocities and handles collisions and
// boundary recycling for the whole particle set.
func (s *Sim) advanceFreeRoaming() {
	zone := s.current.Zone
	query := s.filter.Query()
	for query.Next() {
		pos, prev, vel, trans, _ := query.Get()
		if trans.Active {
			// Leftover from a cancelled transition; return to free
			// roaming without a velocity kick.
			trans.Active = false
			trans.Origin = pos.Vec
		}
		systems.FreeRoam(pos, prev, vel, zone, s.drift, s.motion, s.rng)
	}
}

// advanceTransition moves every particle along its eased interpolation and
// finalizes the transition when progress reaches 1.
func (s *Sim) advanceTransition() {
	s.engine.elapsed += s.cfg.Physics.DT * 1000
	progress := s.engine.elapsed / s.engine.duration
	if progress > 1 {
		progress = 1
	}
	eased := s.engine.ease(progress)

	query := s.filter.Query()
	for query.Next() {
		pos, prev, _, trans, _ := query.Get()
		if trans.Active {
			systems.TransitionStep(pos, prev, trans, eased)
		}
	}

	if progress < 1 {
		return
	}

	done := s.filter.Query()
	for done.Next() {
		pos, prev, vel, trans, _ := done.Get()
		if trans.Active {
			systems.FinishTransition(pos, prev, vel, trans)
		}
	}

	s.current = s.pending
	s.pending = shapes.Shape{}
	cb := s.engine.onComplete
	s.engine = transitionEngine{}
	if cb != nil {
		cb()
	}
}

// SetShape instantly places all particles into the named formation: targets
// are assigned and the placement completes within the call, leaving the
// particles freshly free-roaming. Any in-flight transition is cancelled
// without invoking its callback. An unknown name leaves all state untouched.
func (s *Sim) SetShape(name string, opt shapes.Options) error {
	targets, shape, err := s.generate(name, opt)
	if err != nil {
		return err
	}

	for i, e := range s.entities {
		pos := s.posMap.Get(e)
		prev := s.prevMap.Get(e)
		trans := s.transMap.Get(e)

		trans.Origin = pos.Vec
		trans.Target = targets[i]
		trans.Active = true

		prev.Vec = pos.Vec
		pos.Vec = targets[i]

		systems.FinishTransition(pos, prev, s.velMap.Get(e), trans)
	}

	s.engine = transitionEngine{}
	s.pending = shapes.Shape{}
	s.current = shape
	return nil
}

// TransitionToShape starts an animated transition into the named formation.
// A transition already in flight is overwritten: its callback is discarded
// and particles re-origin at their current, possibly mid-flight positions.
// An unknown shape name leaves all state untouched.
func (s *Sim) TransitionToShape(name string, opt shapes.Options, durationMs float64, easingName string, onComplete func()) error {
	targets, shape, err := s.generate(name, opt)
	if err != nil {
		return err
	}

	dtMs := s.cfg.Physics.DT * 1000
	if durationMs < dtMs {
		durationMs = dtMs
	}

	for i, e := range s.entities {
		pos := s.posMap.Get(e)
		prev := s.prevMap.Get(e)
		trans := s.transMap.Get(e)

		trans.Origin = pos.Vec
		trans.Target = targets[i]
		trans.Active = true
		prev.Vec = pos.Vec
	}

	s.pending = shape
	s.engine = transitionEngine{
		running:    true,
		duration:   durationMs,
		ease:       s.easings.Resolve(easingName),
		onComplete: onComplete,
	}
	return nil
}

// generate runs the registry with the domain bound filled in.
func (s *Sim) generate(name string, opt shapes.Options) ([]r3.Vec, shapes.Shape, error) {
	if opt.Bound == 0 {
		opt.Bound = s.cfg.World.Bound
	}
	return s.shapes.Generate(name, len(s.entities), opt, s.rng)
}

// RegisterShape adds a user-defined generator to this instance's registry.
func (s *Sim) RegisterShape(name string, gen shapes.Generator) {
	s.shapes.Register(name, gen)
}

// RegisterEasing adds a user-defined easing curve to this instance's
// registry.
func (s *Sim) RegisterEasing(name string, fn easing.Func) {
	s.easings.Register(name, fn)
}

// ShapeNames returns the registered shape names, sorted.
func (s *Sim) ShapeNames() []string { return s.shapes.Names() }

// EasingNames returns the registered easing names, sorted.
func (s *Sim) EasingNames() []string { return s.easings.Names() }

// CurrentShape returns the active shape's name.
func (s *Sim) CurrentShape() string { return s.current.Name }

// TransitionActive reports whether a formation transition is in flight.
func (s *Sim) TransitionActive() bool { return s.engine.running }

// ActiveZone returns the exclusion zone currently in effect, nil during a
// transition or when the active shape has none.
func (s *Sim) ActiveZone() geom.Solid {
	if s.engine.running {
		return nil
	}
	return s.current.Zone
}

func (s *Sim) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
