// Package shapes generates target formations for the particle set. A
// generator computes one target position per particle and describes the
// resulting shape: its name, an optional exclusion zone, and the predicate
// that suppresses connections crossing that zone.
package shapes

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/geom"
)

// ErrUnknownShape is returned when a shape name has no registered generator.
var ErrUnknownShape = errors.New("shapes: unknown shape")

// Options parameterizes a generator. Zero-valued fields take
// generator-specific defaults derived from Bound; callers usually only set
// Bound and the fields they care about.
type Options struct {
	Bound  float64 // half-width of the domain cube, always set by the caller
	Center r3.Vec

	Radius      float64   // sphere, iris, spiral, nebula
	PupilRadius float64   // iris
	Depth       float64   // iris slab half-thickness
	Axis        geom.Axis // iris plane normal, plane orientation

	MajorRadius float64 // torus
	MinorRadius float64 // torus

	Size   float64 // cube, plane
	Hollow bool    // cube

	Turns  float64 // spiral
	Height float64 // spiral vertical span

	Roughness float64 // nebula noise amplitude, fraction of Radius

	Seed int64 // nebula noise field seed
}

// withDefaults fills unset fields from the domain bound.
func (o Options) withDefaults() Options {
	b := o.Bound
	if o.Radius == 0 {
		o.Radius = b * 0.6
	}
	// A pupil at or beyond the rim leaves the iris annulus empty and its
	// resampling loop with nothing to draw; such values fall back to the
	// default fraction along with unset ones.
	if o.PupilRadius <= 0 || o.PupilRadius >= o.Radius {
		o.PupilRadius = o.Radius * 0.35
	}
	if o.Depth == 0 {
		o.Depth = b * 0.05
	}
	if o.MajorRadius == 0 {
		o.MajorRadius = b * 0.5
	}
	if o.MinorRadius == 0 {
		o.MinorRadius = o.MajorRadius * 0.35
	}
	if o.Size == 0 {
		o.Size = b * 0.5
	}
	if o.Turns == 0 {
		o.Turns = 3
	}
	if o.Height == 0 {
		o.Height = b
	}
	if o.Roughness == 0 {
		o.Roughness = 0.35
	}
	return o
}

// Shape describes a generated formation. Immutable once produced; changing
// formation replaces the whole descriptor.
type Shape struct {
	Name string
	// Zone is the exclusion region attached to the formation, nil for
	// formations without one.
	Zone geom.Solid
	// crosses reports whether the segment a-b is blocked by the zone.
	crosses func(a, b r3.Vec) bool
}

// HasExclusionZone reports whether the shape carries an exclusion zone.
func (s Shape) HasExclusionZone() bool { return s.Zone != nil }

// CrossesExclusionZone reports whether the segment a-b passes through the
// shape's exclusion zone. Always false for shapes without one.
func (s Shape) CrossesExclusionZone(a, b r3.Vec) bool {
	if s.crosses == nil {
		return false
	}
	return s.crosses(a, b)
}

// plainShape builds a zone-less descriptor.
func plainShape(name string) Shape {
	return Shape{Name: name}
}

// zonedShape builds a descriptor whose connection filter is the zone's own
// segment test. The filter and the collision checks share one routine.
func zonedShape(name string, zone geom.Solid) Shape {
	return Shape{Name: name, Zone: zone, crosses: zone.IntersectsSegment}
}

// Generator computes n target positions and the resulting shape descriptor.
// Generators draw all randomness from rng so runs stay reproducible.
type Generator func(n int, opt Options, rng Rand) ([]r3.Vec, Shape)

// Rand is the randomness a generator needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
}

// Registry maps shape names to generators. Each simulation instance owns its
// own registry; user generators registered on one instance are invisible to
// any other.
type Registry struct {
	gens map[string]Generator
}

// NewRegistry creates a registry preloaded with the built-in generators.
func NewRegistry() *Registry {
	r := &Registry{gens: make(map[string]Generator)}
	r.Register("random", Random)
	r.Register("sphere", FibonacciSphere)
	r.Register("iris", Iris)
	r.Register("torus", Torus)
	r.Register("cube", Cube)
	r.Register("plane", Plane)
	r.Register("spiral", Spiral)
	r.Register("nebula", Nebula)
	return r
}

// Register adds or replaces a named generator.
func (r *Registry) Register(name string, gen Generator) {
	r.gens[name] = gen
}

// Generate runs the named generator. It fails without side effects for
// unknown names, so the caller's particle state is untouched.
func (r *Registry) Generate(name string, n int, opt Options, rng Rand) ([]r3.Vec, Shape, error) {
	gen, ok := r.gens[name]
	if !ok {
		return nil, Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	targets, shape := gen(n, opt.withDefaults(), rng)
	return targets, shape, nil
}

// Names returns the registered shape names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.gens))
	for name := range r.gens {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
