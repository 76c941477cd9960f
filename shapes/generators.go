package shapes

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/geom"
)

// invGolden is 1/φ, the angular stride of the Fibonacci sphere lattice.
const invGolden = 1 / 1.618033988749895

// Random scatters particles uniformly through the domain cube.
func Random(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		targets[i] = r3.Vec{
			X: uniform(rng, -opt.Bound, opt.Bound),
			Y: uniform(rng, -opt.Bound, opt.Bound),
			Z: uniform(rng, -opt.Bound, opt.Bound),
		}
	}
	return targets, plainShape("random")
}

// FibonacciSphere places particles on an evenly spaced spherical lattice:
// for index i of n, phi = acos(1 - 2(i+0.5)/n) and theta advances by the
// inverse golden ratio per index. Deterministic, not random.
func FibonacciSphere(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		phi := math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
		theta := 2 * math.Pi * float64(i) * invGolden
		targets[i] = r3.Add(opt.Center, r3.Scale(opt.Radius, r3.Vec{
			X: math.Sin(phi) * math.Cos(theta),
			Y: math.Sin(phi) * math.Sin(theta),
			Z: math.Cos(phi),
		}))
	}
	return targets, plainShape("sphere")
}

// Iris fills an annular disc around a clear pupil and attaches a cylindrical
// exclusion zone over the pupil so nothing crosses it. The r² remap biases
// samples toward the rim; draws that still land inside the pupil are
// rejected and retried.
func Iris(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	// The resample loop needs a non-empty annulus; a pupil at or beyond
	// the rim could never be escaped. Registry calls arrive clamped, but
	// direct calls get the same treatment.
	if opt.PupilRadius <= 0 || opt.PupilRadius >= opt.Radius {
		opt.PupilRadius = opt.Radius * 0.35
	}
	targets := make([]r3.Vec, n)
	for i := range targets {
		angle := uniform(rng, 0, 2*math.Pi)
		radial := opt.PupilRadius
		for radial <= opt.PupilRadius {
			r := rng.Float64()
			radial = opt.PupilRadius + (opt.Radius-opt.PupilRadius)*r*r
		}
		axial := opt.Axis.Component(opt.Center) + uniform(rng, -opt.Depth, opt.Depth)
		u, v := opt.Axis.Planar(opt.Center)
		targets[i] = opt.Axis.FromPlanar(axial, u+radial*math.Cos(angle), v+radial*math.Sin(angle))
	}

	zone := geom.Cylinder{
		Center: opt.Center,
		Radius: opt.PupilRadius,
		Height: 2 * opt.Depth,
		Axis:   opt.Axis,
	}
	return targets, zonedShape("iris", zone)
}

// Torus samples the torus surface with uniform angles u (around the main
// ring) and v (around the tube).
func Torus(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		u := uniform(rng, 0, 2*math.Pi)
		v := uniform(rng, 0, 2*math.Pi)
		ring := opt.MajorRadius + opt.MinorRadius*math.Cos(v)
		targets[i] = r3.Add(opt.Center, r3.Vec{
			X: ring * math.Cos(u),
			Y: ring * math.Sin(u),
			Z: opt.MinorRadius * math.Sin(v),
		})
	}
	return targets, plainShape("torus")
}

// Cube fills a cube of half-width Size: solid fill is uniform through the
// volume, hollow fill picks one of the six faces uniformly and scatters
// across it, with the face coordinate pinned at ±Size.
func Cube(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		if !opt.Hollow {
			targets[i] = r3.Add(opt.Center, r3.Vec{
				X: uniform(rng, -opt.Size, opt.Size),
				Y: uniform(rng, -opt.Size, opt.Size),
				Z: uniform(rng, -opt.Size, opt.Size),
			})
			continue
		}
		face := rng.Intn(6)
		axis := geom.Axis(face / 2)
		sign := 1.0
		if face%2 == 1 {
			sign = -1
		}
		u := uniform(rng, -1, 1) * opt.Size
		v := uniform(rng, -1, 1) * opt.Size
		targets[i] = r3.Add(opt.Center, axis.FromPlanar(sign*opt.Size, u, v))
	}
	return targets, plainShape("cube")
}

// Plane scatters particles across a flat sheet orthogonal to the
// orientation axis.
func Plane(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		u := uniform(rng, -opt.Size, opt.Size)
		v := uniform(rng, -opt.Size, opt.Size)
		targets[i] = r3.Add(opt.Center, opt.Axis.FromPlanar(0, u, v))
	}
	return targets, plainShape("plane")
}

// Spiral winds particles along a helix: the index fraction t drives the
// angle through Turns full revolutions while radius grows linearly and
// height spans [-Height/2, Height/2].
func Spiral(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	targets := make([]r3.Vec, n)
	for i := range targets {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		angle := t * opt.Turns * 2 * math.Pi
		radius := opt.Radius * t
		targets[i] = r3.Add(opt.Center, r3.Vec{
			X: radius * math.Cos(angle),
			Y: (t - 0.5) * opt.Height,
			Z: radius * math.Sin(angle),
		})
	}
	return targets, plainShape("spiral")
}

// Nebula drapes the Fibonacci lattice over a noise field: each lattice
// point is displaced radially by smooth opensimplex noise, producing a
// lumpy cloud that still reads as a ball from a distance.
func Nebula(n int, opt Options, rng Rand) ([]r3.Vec, Shape) {
	seed := opt.Seed
	if seed == 0 {
		seed = rng.Int63()
	}
	noise := opensimplex.New(seed)

	const freq = 1.6 // noise features per radius
	targets := make([]r3.Vec, n)
	for i := range targets {
		phi := math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
		theta := 2 * math.Pi * float64(i) * invGolden
		dir := r3.Vec{
			X: math.Sin(phi) * math.Cos(theta),
			Y: math.Sin(phi) * math.Sin(theta),
			Z: math.Cos(phi),
		}
		sample := r3.Scale(freq, dir)
		displaced := 1 + opt.Roughness*noise.Eval3(sample.X, sample.Y, sample.Z)
		targets[i] = r3.Add(opt.Center, r3.Scale(opt.Radius*displaced, dir))
	}
	return targets, plainShape("nebula")
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
