// Package geom provides the exclusion-solid geometry used by the simulation:
// axis-aligned spheres, capped cylinders, and boxes with point-containment,
// segment-intersection, and surface-normal queries.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis identifies one of the three world axes.
type Axis int

// World axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Component returns the coordinate of v along the axis.
func (a Axis) Component(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	}
	return v.Z
}

// Planar returns the two coordinates of v orthogonal to the axis.
func (a Axis) Planar(v r3.Vec) (float64, float64) {
	switch a {
	case AxisX:
		return v.Y, v.Z
	case AxisY:
		return v.X, v.Z
	}
	return v.X, v.Y
}

// FromPlanar builds a vector from an axial coordinate and the two planar
// coordinates, inverting Planar.
func (a Axis) FromPlanar(axial, u, v float64) r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: axial, Y: u, Z: v}
	case AxisY:
		return r3.Vec{X: u, Y: axial, Z: v}
	}
	return r3.Vec{X: u, Y: v, Z: axial}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	}
	return r3.Vec{Z: 1}
}

// Kind tags the concrete solid type, exposed read-only for debug rendering.
type Kind int

// Solid kinds.
const (
	KindSphere Kind = iota
	KindCylinder
	KindBox
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	}
	return "box"
}

// Solid is a closed exclusion region. Implementations are immutable values;
// a shape that needs a different region replaces the whole Solid.
//
// Degenerate solids (zero or negative radius, height, or extent) contain
// nothing and intersect nothing. A zero-length segment is tested as a point:
// IntersectsSegment(p, p) == Contains(p).
type Solid interface {
	Kind() Kind
	Contains(p r3.Vec) bool
	IntersectsSegment(a, b r3.Vec) bool
	// NormalAt returns the outward unit normal used for collision
	// response at a point on or near the surface.
	NormalAt(p r3.Vec) r3.Vec
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func isZero(v r3.Vec) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Reflect mirrors v about the plane with unit normal n: v - 2(v·n)n.
// The reflected vector preserves the magnitude of v.
func Reflect(v, n r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(2*r3.Dot(v, n), n))
}

const normalEps = 1e-12

// fallbackNormal is returned when a normal is requested at a point where
// the direction is undefined (e.g. the exact center of a sphere).
var fallbackNormal = r3.Vec{Y: 1}

// unitOr normalizes v, returning fb when v is (near) zero.
func unitOr(v r3.Vec, fb r3.Vec) r3.Vec {
	n2 := r3.Norm2(v)
	if n2 < normalEps {
		return fb
	}
	return r3.Scale(1/math.Sqrt(n2), v)
}
