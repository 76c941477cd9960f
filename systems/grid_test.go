package systems

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCellKey(t *testing.T) {
	g := NewSpatialGrid(100, 50)

	tests := []struct {
		name       string
		p          r3.Vec
		cx, cy, cz int
	}{
		{"min corner", r3.Vec{X: -100, Y: -100, Z: -100}, 0, 0, 0},
		{"origin", r3.Vec{}, 2, 2, 2},
		{"max corner", r3.Vec{X: 100, Y: 100, Z: 100}, 4, 4, 4},
		{"clamped outside", r3.Vec{X: 500, Y: -500}, 4, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy, cz := g.CellKey(tc.p)
			if cx != tc.cx || cy != tc.cy || cz != tc.cz {
				t.Errorf("CellKey(%v) = (%d,%d,%d), want (%d,%d,%d)",
					tc.p, cx, cy, cz, tc.cx, tc.cy, tc.cz)
			}
		})
	}
}

func TestNeighborhoodNoDuplicates(t *testing.T) {
	g := NewSpatialGrid(100, 50)
	// A corner-cell particle must appear exactly once even though the
	// 3x3x3 stencil hangs off the grid there.
	p := r3.Vec{X: -99, Y: -99, Z: -99}
	g.Rebuild([]r3.Vec{p})

	hood := g.NeighborhoodInto(nil, p)
	if len(hood) != 1 || hood[0] != 0 {
		t.Errorf("corner neighborhood = %v, want [0]", hood)
	}
}

// TestGridCompleteness checks the index's correctness contract: with the
// connection distance no larger than the cell size, every pair closer than
// the connection distance appears in each other's neighborhood.
func TestGridCompleteness(t *testing.T) {
	const (
		bound    = 100.0
		cellSize = 25.0
		connDist = 25.0
	)
	rng := rand.New(rand.NewSource(17))
	g := NewSpatialGrid(bound, cellSize)

	positions := make([]r3.Vec, 300)
	for i := range positions {
		positions[i] = r3.Vec{
			X: (rng.Float64()*2 - 1) * bound,
			Y: (rng.Float64()*2 - 1) * bound,
			Z: (rng.Float64()*2 - 1) * bound,
		}
	}
	g.Rebuild(positions)

	var hood []int32
	for i, p := range positions {
		hood = g.NeighborhoodInto(hood[:0], p)
		seen := make(map[int32]bool, len(hood))
		for _, j := range hood {
			seen[j] = true
		}
		for j, q := range positions {
			if i == j {
				continue
			}
			if r3.Norm(r3.Sub(q, p)) < connDist && !seen[int32(j)] {
				t.Fatalf("pair (%d,%d) at distance %v missing from neighborhood",
					i, j, r3.Norm(r3.Sub(q, p)))
			}
		}
	}
}

func TestConnectionsScenario(t *testing.T) {
	// bound=100, cellSize=50, connection distance 20. Particles 0 and 1
	// are 10 apart and reachable through the grid; particle 2 is far away.
	// The sphere zone at (5,0,0) r=5 blocks the 0-1 segment, so the final
	// filtered connection list is empty.
	positions := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 90, Y: 90, Z: 90},
	}
	g := NewSpatialGrid(100, 50)
	g.Rebuild(positions)

	var scratch []int32

	// Without the zone: exactly the 0-1 pair.
	conns := Connections(nil, g, positions, 20, nil, &scratch)
	if len(conns) != 1 || conns[0] != (Connection{A: 0, B: 1}) {
		t.Fatalf("unfiltered connections = %v, want [{0 1}]", conns)
	}

	// With the zone the pair is suppressed.
	zone := sphereAt(5, 0, 0, 5)
	conns = Connections(conns[:0], g, positions, 20, zone.IntersectsSegment, &scratch)
	if len(conns) != 0 {
		t.Errorf("filtered connections = %v, want none", conns)
	}
}

func TestConnectionsDistanceIsStrict(t *testing.T) {
	positions := []r3.Vec{{}, {X: 20}}
	g := NewSpatialGrid(100, 50)
	g.Rebuild(positions)

	var scratch []int32
	conns := Connections(nil, g, positions, 20, nil, &scratch)
	if len(conns) != 0 {
		t.Errorf("pair at exactly the threshold connected: %v", conns)
	}
}
