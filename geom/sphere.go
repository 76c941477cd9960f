package geom

import "gonum.org/v1/gonum/spatial/r3"

// Sphere is a solid ball.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Kind reports KindSphere.
func (s Sphere) Kind() Kind { return KindSphere }

// Contains reports whether p lies inside or on the sphere.
func (s Sphere) Contains(p r3.Vec) bool {
	if s.Radius <= 0 {
		return false
	}
	return r3.Norm2(r3.Sub(p, s.Center)) <= s.Radius*s.Radius
}

// IntersectsSegment reports whether the segment a-b passes through the
// sphere. The projection parameter is clamped to the segment, so a segment
// whose infinite line grazes the sphere outside [a,b] does not intersect.
func (s Sphere) IntersectsSegment(a, b r3.Vec) bool {
	if s.Radius <= 0 {
		return false
	}
	d := r3.Sub(b, a)
	if isZero(d) {
		return s.Contains(a)
	}
	t := clamp01(r3.Dot(r3.Sub(s.Center, a), d) / r3.Norm2(d))
	closest := r3.Add(a, r3.Scale(t, d))
	return r3.Norm2(r3.Sub(closest, s.Center)) <= s.Radius*s.Radius
}

// NormalAt returns the outward normal, the direction from center to p.
func (s Sphere) NormalAt(p r3.Vec) r3.Vec {
	return unitOr(r3.Sub(p, s.Center), fallbackNormal)
}
