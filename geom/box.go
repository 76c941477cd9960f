package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a solid axis-aligned box. Width, Height, and Depth are the full
// extents along x, y, and z.
type Box struct {
	Center r3.Vec
	Width  float64
	Height float64
	Depth  float64
}

// Kind reports KindBox.
func (b Box) Kind() Kind { return KindBox }

func (b Box) halves() r3.Vec {
	return r3.Vec{X: b.Width / 2, Y: b.Height / 2, Z: b.Depth / 2}
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p r3.Vec) bool {
	if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 {
		return false
	}
	d := r3.Sub(p, b.Center)
	h := b.halves()
	return math.Abs(d.X) <= h.X && math.Abs(d.Y) <= h.Y && math.Abs(d.Z) <= h.Z
}

// IntersectsSegment reports whether the segment p1-p2 passes through the box,
// using the slab method: the three per-axis entry/exit intervals are
// intersected and a hit requires the combined interval to overlap [0,1].
func (b Box) IntersectsSegment(p1, p2 r3.Vec) bool {
	if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 {
		return false
	}
	d := r3.Sub(p2, p1)
	if isZero(d) {
		return b.Contains(p1)
	}

	o := r3.Sub(p1, b.Center)
	h := b.halves()

	entry := math.Inf(-1)
	exit := math.Inf(1)
	for _, s := range [3]struct{ o, d, h float64 }{
		{o.X, d.X, h.X},
		{o.Y, d.Y, h.Y},
		{o.Z, d.Z, h.Z},
	} {
		if s.d == 0 {
			// Parallel to this slab: outside it means no hit at any t.
			if math.Abs(s.o) > s.h {
				return false
			}
			continue
		}
		t1 := (-s.h - s.o) / s.d
		t2 := (s.h - s.o) / s.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		entry = math.Max(entry, t1)
		exit = math.Min(exit, t2)
	}

	return exit >= math.Max(0, entry) && entry <= 1
}

// NormalAt returns the unit normal of the nearest face, chosen by comparing
// the six face distances from p.
func (b Box) NormalAt(p r3.Vec) r3.Vec {
	d := r3.Sub(p, b.Center)
	h := b.halves()

	best := math.Inf(1)
	normal := fallbackNormal
	for _, f := range [6]struct {
		dist float64
		n    r3.Vec
	}{
		{math.Abs(h.X - d.X), r3.Vec{X: 1}},
		{math.Abs(h.X + d.X), r3.Vec{X: -1}},
		{math.Abs(h.Y - d.Y), r3.Vec{Y: 1}},
		{math.Abs(h.Y + d.Y), r3.Vec{Y: -1}},
		{math.Abs(h.Z - d.Z), r3.Vec{Z: 1}},
		{math.Abs(h.Z + d.Z), r3.Vec{Z: -1}},
	} {
		if f.dist < best {
			best = f.dist
			normal = f.n
		}
	}
	return normal
}
