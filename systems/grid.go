// Package systems provides the per-tick simulation systems: the spatial
// index, particle kinematics, and connection enumeration.
package systems

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// SpatialGrid is a uniform 3D grid index over the domain cube
// [-bound, bound]^3. It is rebuilt every tick and holds particle indices,
// never particle state.
//
// Correctness contract: two particles closer than the connection distance are
// guaranteed to appear in each other's 3x3x3 neighborhood only when the
// connection distance is at most the cell size. Configurations that violate
// this are rejected at config validation, not tolerated here.
type SpatialGrid struct {
	bound    float64
	cellSize float64
	perAxis  int
	cells    [][]int32 // flat [z][y][x] buckets of particle indices
}

// NewSpatialGrid creates a grid covering [-bound, bound]^3 with the given
// cell size.
func NewSpatialGrid(bound, cellSize float64) *SpatialGrid {
	perAxis := int(2*bound/cellSize) + 1
	cells := make([][]int32, perAxis*perAxis*perAxis)
	for i := range cells {
		cells[i] = make([]int32, 0, 4)
	}
	return &SpatialGrid{
		bound:    bound,
		cellSize: cellSize,
		perAxis:  perAxis,
		cells:    cells,
	}
}

// Clear empties all cell buckets, keeping their capacity.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// CellKey returns the discrete cell coordinates for a position, clamped to
// the grid. Each coordinate maps through floor((c + bound) / cellSize).
func (g *SpatialGrid) CellKey(p r3.Vec) (cx, cy, cz int) {
	return g.axisKey(p.X), g.axisKey(p.Y), g.axisKey(p.Z)
}

func (g *SpatialGrid) axisKey(c float64) int {
	k := int((c + g.bound) / g.cellSize)
	if k < 0 {
		k = 0
	} else if k >= g.perAxis {
		k = g.perAxis - 1
	}
	return k
}

func (g *SpatialGrid) cellIndex(cx, cy, cz int) int {
	return (cz*g.perAxis+cy)*g.perAxis + cx
}

// Insert adds a particle index at the given position.
func (g *SpatialGrid) Insert(i int32, p r3.Vec) {
	cx, cy, cz := g.CellKey(p)
	idx := g.cellIndex(cx, cy, cz)
	g.cells[idx] = append(g.cells[idx], i)
}

// Rebuild clears the grid and inserts every position. Positions are indexed
// by their slice position; callers keep that ordering stable for the tick.
func (g *SpatialGrid) Rebuild(positions []r3.Vec) {
	g.Clear()
	for i, p := range positions {
		g.Insert(int32(i), p)
	}
}

// NeighborhoodInto appends the contents of the 27 cells (3x3x3, including
// the center cell) around the cell containing p to dst and returns the
// extended slice. Cells outside the grid are skipped, not clamped, so no
// bucket is visited twice. Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) NeighborhoodInto(dst []int32, p r3.Vec) []int32 {
	cx, cy, cz := g.CellKey(p)
	for dz := -1; dz <= 1; dz++ {
		z := cz + dz
		if z < 0 || z >= g.perAxis {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			y := cy + dy
			if y < 0 || y >= g.perAxis {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				x := cx + dx
				if x < 0 || x >= g.perAxis {
					continue
				}
				dst = append(dst, g.cells[g.cellIndex(x, y, z)]...)
			}
		}
	}
	return dst
}
