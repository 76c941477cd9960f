package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphereContains(t *testing.T) {
	s := Sphere{Center: r3.Vec{X: 5}, Radius: 5}

	tests := []struct {
		name string
		p    r3.Vec
		want bool
	}{
		{"center", r3.Vec{X: 5}, true},
		{"inside", r3.Vec{X: 7, Y: 1}, true},
		{"exactly on surface", r3.Vec{X: 10}, true},
		{"just outside", r3.Vec{X: 10.001}, false},
		{"far away", r3.Vec{X: 100, Y: 100}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestSphereIntersectsSegment(t *testing.T) {
	s := Sphere{Center: r3.Vec{X: 5}, Radius: 5}

	tests := []struct {
		name string
		a, b r3.Vec
		want bool
	}{
		{"through center", r3.Vec{X: -10}, r3.Vec{X: 20}, true},
		{"tangent line far from segment", r3.Vec{X: 100, Y: 5}, r3.Vec{X: 200, Y: 5}, false},
		{"stops short of sphere", r3.Vec{X: -20}, r3.Vec{X: -10}, false},
		{"grazes surface", r3.Vec{X: -10, Y: 5}, r3.Vec{X: 20, Y: 5}, true},
		{"endpoint inside", r3.Vec{X: 5, Y: 1}, r3.Vec{X: 50}, true},
		{"zero-length at surface point", r3.Vec{X: 10}, r3.Vec{X: 10}, true},
		{"zero-length outside", r3.Vec{X: 11}, r3.Vec{X: 11}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IntersectsSegment(tc.a, tc.b); got != tc.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDegenerateSolids(t *testing.T) {
	p := r3.Vec{}
	solids := []Solid{
		Sphere{Radius: 0},
		Cylinder{Radius: 0, Height: 10, Axis: AxisY},
		Cylinder{Radius: 10, Height: 0, Axis: AxisY},
		Box{Width: 0, Height: 10, Depth: 10},
	}
	for _, s := range solids {
		if s.Contains(p) {
			t.Errorf("%v: degenerate solid contains origin", s.Kind())
		}
		if s.IntersectsSegment(r3.Vec{X: -1}, r3.Vec{X: 1}) {
			t.Errorf("%v: degenerate solid intersects segment", s.Kind())
		}
	}
}

func TestCylinderContains(t *testing.T) {
	c := Cylinder{Radius: 2, Height: 4, Axis: AxisZ}

	tests := []struct {
		name string
		p    r3.Vec
		want bool
	}{
		{"center", r3.Vec{}, true},
		{"on wall", r3.Vec{X: 2}, true},
		{"on cap", r3.Vec{Z: 2}, true},
		{"past cap", r3.Vec{Z: 2.1}, false},
		{"outside wall", r3.Vec{X: 2.1}, false},
		{"corner inside", r3.Vec{X: 1, Y: 1, Z: 1.9}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestCylinderIntersectsSegment(t *testing.T) {
	c := Cylinder{Radius: 2, Height: 4, Axis: AxisZ}

	tests := []struct {
		name string
		a, b r3.Vec
		want bool
	}{
		{"crosses wall at mid-height", r3.Vec{X: -5}, r3.Vec{X: 5}, true},
		{"crosses infinite cylinder above cap", r3.Vec{X: -5, Z: 3}, r3.Vec{X: 5, Z: 3}, false},
		{"misses radially", r3.Vec{X: -5, Y: 3}, r3.Vec{X: 5, Y: 3}, false},
		{"stops before wall", r3.Vec{X: -5}, r3.Vec{X: -3}, false},
		{"axis-parallel inside", r3.Vec{X: 1, Z: -10}, r3.Vec{X: 1, Z: 10}, true},
		{"axis-parallel outside", r3.Vec{X: 3, Z: -10}, r3.Vec{X: 3, Z: 10}, false},
		{"axis-parallel above caps", r3.Vec{X: 1, Z: 5}, r3.Vec{X: 1, Z: 10}, false},
		{"diagonal through wall", r3.Vec{X: -5, Z: -1}, r3.Vec{X: 5, Z: 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IntersectsSegment(tc.a, tc.b); got != tc.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCylinderAxes(t *testing.T) {
	// The same geometry must hold under each axis orientation.
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		c := Cylinder{Radius: 1, Height: 2, Axis: axis}
		tip := r3.Scale(0.9, axis.Unit())
		if !c.Contains(tip) {
			t.Errorf("axis %v: axial point not contained", axis)
		}
		past := r3.Scale(1.1, axis.Unit())
		if c.Contains(past) {
			t.Errorf("axis %v: point past cap contained", axis)
		}
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Width: 4, Height: 2, Depth: 6}

	tests := []struct {
		name string
		p    r3.Vec
		want bool
	}{
		{"center", r3.Vec{}, true},
		{"on face", r3.Vec{X: 2}, true},
		{"corner", r3.Vec{X: 2, Y: 1, Z: 3}, true},
		{"past x face", r3.Vec{X: 2.1}, false},
		{"past y face", r3.Vec{Y: 1.1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestBoxIntersectsSegment(t *testing.T) {
	b := Box{Width: 4, Height: 2, Depth: 6}

	tests := []struct {
		name string
		a, c r3.Vec
		want bool
	}{
		{"straight through", r3.Vec{X: -5}, r3.Vec{X: 5}, true},
		{"misses above", r3.Vec{X: -5, Y: 2}, r3.Vec{X: 5, Y: 2}, false},
		{"stops short", r3.Vec{X: -5}, r3.Vec{X: -3}, false},
		{"starts inside", r3.Vec{}, r3.Vec{X: 10}, true},
		{"fully inside", r3.Vec{X: -1}, r3.Vec{X: 1}, true},
		{"diagonal corner cut", r3.Vec{X: -3, Y: -2, Z: 0}, r3.Vec{X: 3, Y: 2, Z: 0}, true},
		{"parallel outside slab", r3.Vec{Y: 5, Z: -10}, r3.Vec{Y: 5, Z: 10}, false},
		{"zero-length inside", r3.Vec{X: 1}, r3.Vec{X: 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IntersectsSegment(tc.a, tc.c); got != tc.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, want %v", tc.a, tc.c, got, tc.want)
			}
		})
	}
}

func TestNormals(t *testing.T) {
	tests := []struct {
		name  string
		solid Solid
		p     r3.Vec
		want  r3.Vec
	}{
		{"sphere +x", Sphere{Radius: 5}, r3.Vec{X: 5}, r3.Vec{X: 1}},
		{"sphere diagonal", Sphere{Radius: 5}, r3.Vec{X: 3, Y: 4}, r3.Vec{X: 0.6, Y: 0.8}},
		{"cylinder radial", Cylinder{Radius: 2, Height: 4, Axis: AxisZ}, r3.Vec{X: 2, Z: 1}, r3.Vec{X: 1}},
		{"box nearest +x face", Box{Width: 4, Height: 4, Depth: 4}, r3.Vec{X: 1.9}, r3.Vec{X: 1}},
		{"box nearest -y face", Box{Width: 4, Height: 4, Depth: 4}, r3.Vec{Y: -1.9}, r3.Vec{Y: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.solid.NormalAt(tc.p)
			if r3.Norm(r3.Sub(got, tc.want)) > 1e-9 {
				t.Errorf("NormalAt(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestNormalIsUnit(t *testing.T) {
	solids := []Solid{
		Sphere{Radius: 3},
		Cylinder{Radius: 3, Height: 6, Axis: AxisY},
		Box{Width: 6, Height: 6, Depth: 6},
	}
	points := []r3.Vec{{X: 2.5, Y: 0.5, Z: 0.1}, {X: -1, Y: 2, Z: 1}, {X: 0.1, Y: -2.9, Z: 0}}
	for _, s := range solids {
		for _, p := range points {
			n := s.NormalAt(p)
			if math.Abs(r3.Norm(n)-1) > 1e-9 {
				t.Errorf("%v: NormalAt(%v) not unit length: %v", s.Kind(), p, n)
			}
		}
	}
}

func TestReflect(t *testing.T) {
	v := r3.Vec{X: 3, Y: -4, Z: 1}
	n := r3.Vec{Y: 1}

	r := Reflect(v, n)

	if math.Abs(r3.Norm(r)-r3.Norm(v)) > 1e-12 {
		t.Errorf("reflection changed magnitude: %v -> %v", r3.Norm(v), r3.Norm(r))
	}
	if math.Abs(r3.Dot(r, n)+r3.Dot(v, n)) > 1e-12 {
		t.Errorf("normal component not negated: %v -> %v", r3.Dot(v, n), r3.Dot(r, n))
	}
	if r.X != v.X || r.Z != v.Z {
		t.Errorf("tangential components changed: %v -> %v", v, r)
	}
}
