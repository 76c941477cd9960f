package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder is a solid capped cylinder aligned to one of the world axes.
// Height is the full axial extent; the caps sit at ±Height/2 from Center.
type Cylinder struct {
	Center r3.Vec
	Radius float64
	Height float64
	Axis   Axis
}

// Kind reports KindCylinder.
func (c Cylinder) Kind() Kind { return KindCylinder }

// Contains reports whether p lies inside or on the cylinder.
func (c Cylinder) Contains(p r3.Vec) bool {
	if c.Radius <= 0 || c.Height <= 0 {
		return false
	}
	d := r3.Sub(p, c.Center)
	if math.Abs(c.Axis.Component(d)) > c.Height/2 {
		return false
	}
	u, v := c.Axis.Planar(d)
	return u*u+v*v <= c.Radius*c.Radius
}

// IntersectsSegment reports whether the segment a-b passes through the
// cylinder wall within the capped axial extent. Both connection filtering
// and collision checks go through this one routine.
//
// Dropping the axial coordinate reduces the wall test to a quadratic in the
// segment parameter t; each real root in [0,1] is accepted when its axial
// position lies within ±Height/2. A segment that runs entirely inside the
// infinite cylinder produces no root in [0,1] and reports no intersection;
// callers that care about endpoints use Contains.
func (c Cylinder) IntersectsSegment(a, b r3.Vec) bool {
	if c.Radius <= 0 || c.Height <= 0 {
		return false
	}
	d := r3.Sub(b, a)
	if isZero(d) {
		return c.Contains(a)
	}

	o := r3.Sub(a, c.Center)
	ou, ov := c.Axis.Planar(o)
	du, dv := c.Axis.Planar(d)
	oAx := c.Axis.Component(o)
	dAx := c.Axis.Component(d)

	qa := du*du + dv*dv
	qb := 2 * (ou*du + ov*dv)
	qc := ou*ou + ov*ov - c.Radius*c.Radius

	if qa < normalEps {
		// Segment parallel to the axis: radially fixed.
		if qc > 0 {
			return false
		}
		lo := math.Min(oAx, oAx+dAx)
		hi := math.Max(oAx, oAx+dAx)
		return hi >= -c.Height/2 && lo <= c.Height/2
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < 0 || t > 1 {
			continue
		}
		if math.Abs(oAx+t*dAx) <= c.Height/2 {
			return true
		}
	}
	return false
}

// NormalAt returns the outward radial normal, the component of p-Center
// orthogonal to the cylinder axis.
func (c Cylinder) NormalAt(p r3.Vec) r3.Vec {
	d := r3.Sub(p, c.Center)
	u, v := c.Axis.Planar(d)
	return unitOr(c.Axis.FromPlanar(0, u, v), fallbackNormal)
}
