package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/components"
	"github.com/calder-vis/constel/geom"
)

// MotionConfig carries the kinematic constants for free-roaming movement.
type MotionConfig struct {
	Bound         float64 // half-width of the domain cube
	SpeedLimit    float64 // per-axis velocity magnitude cap for respawns
	VelocityDecay float64 // per-tick relaxation of vy toward its baseline, in [0,1]
}

// rejectionStep is the fraction of the reflected velocity applied when a
// move into an exclusion zone is rolled back. Stepping off the surface
// keeps the particle from re-colliding on the next tick.
const rejectionStep = 0.1

// FreeRoam advances one free-roaming particle by a tick: velocity
// integration plus the external vertical drift, exclusion-zone rejection
// with reflection, and open-boundary recycling. zone may be nil.
func FreeRoam(
	pos *components.Position,
	prev *components.PrevPosition,
	vel *components.Velocity,
	zone geom.Solid,
	drift float64,
	cfg MotionConfig,
	rng *rand.Rand,
) {
	prev.Vec = pos.Vec

	// Vertical velocity relaxes toward its baseline.
	vel.Y = vel.BaseY + (vel.Y-vel.BaseY)*cfg.VelocityDecay

	candidate := r3.Add(pos.Vec, vel.Vec)
	candidate.Y += drift

	if zone != nil && zone.Contains(candidate) && !zone.Contains(pos.Vec) {
		// Reject the move: reflect off the zone surface and step away
		// from it. A particle already inside the zone is exempt so a
		// formation change cannot trap it against the wall forever.
		n := zone.NormalAt(pos.Vec)
		vel.Vec = geom.Reflect(vel.Vec, n)
		vel.BaseY = vel.Y
		pos.Vec = r3.Add(prev.Vec, r3.Scale(rejectionStep, vel.Vec))
		return
	}

	pos.Vec = candidate

	if math.Abs(pos.X) > cfg.Bound || math.Abs(pos.Y) > cfg.Bound || math.Abs(pos.Z) > cfg.Bound {
		recycle(pos, prev, vel, cfg, rng)
	}
}

// recycle repositions a particle that left the domain onto a uniformly
// random boundary face with fresh velocity, pointed inward. This keeps the
// domain density stationary; it is deliberately not a wall bounce.
func recycle(
	pos *components.Position,
	prev *components.PrevPosition,
	vel *components.Velocity,
	cfg MotionConfig,
	rng *rand.Rand,
) {
	axis := geom.Axis(rng.Intn(3))
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}

	u := uniform(rng, -cfg.Bound, cfg.Bound)
	v := uniform(rng, -cfg.Bound, cfg.Bound)
	pos.Vec = axis.FromPlanar(sign*cfg.Bound, u, v)
	prev.Vec = pos.Vec

	vel.Vec = r3.Vec{
		X: uniform(rng, -cfg.SpeedLimit, cfg.SpeedLimit),
		Y: uniform(rng, -cfg.SpeedLimit, cfg.SpeedLimit),
		Z: uniform(rng, -cfg.SpeedLimit, cfg.SpeedLimit),
	}
	// Inward along the chosen axis.
	inward := -sign * math.Abs(axis.Component(vel.Vec))
	switch axis {
	case geom.AxisX:
		vel.X = inward
	case geom.AxisY:
		vel.Y = inward
	case geom.AxisZ:
		vel.Z = inward
	}
	vel.BaseY = vel.Y
}

// TransitionStep moves a transitioning particle to the eased interpolation
// point. Velocity is left untouched; it is re-derived on completion.
func TransitionStep(
	pos *components.Position,
	prev *components.PrevPosition,
	trans *components.Transition,
	eased float64,
) {
	prev.Vec = pos.Vec
	pos.Vec = r3.Add(trans.Origin, r3.Scale(eased, r3.Sub(trans.Target, trans.Origin)))
}

// FinishTransition returns a particle to free roaming. The exit velocity
// takes its direction from the last frame's positional delta and its
// magnitude from the (frozen) pre-transition speed; a zero delta leaves the
// velocity unchanged.
func FinishTransition(
	pos *components.Position,
	prev *components.PrevPosition,
	vel *components.Velocity,
	trans *components.Transition,
) {
	delta := r3.Sub(pos.Vec, prev.Vec)
	if n2 := r3.Norm2(delta); n2 > 0 {
		speed := r3.Norm(vel.Vec)
		vel.Vec = r3.Scale(speed/math.Sqrt(n2), delta)
		vel.BaseY = vel.Y
	}
	trans.Active = false
	trans.Origin = pos.Vec
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
