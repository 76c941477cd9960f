package systems

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Connection is an ephemeral pair of particle indices within connection
// distance of each other and not blocked by an exclusion zone. Connections
// are recomputed from scratch every tick and never persisted.
type Connection struct {
	A, B int32
}

// Connections appends every filtered connection among positions to dst and
// returns the extended slice. The grid must have been rebuilt from the same
// positions slice this tick. crosses, when non-nil, suppresses pairs whose
// segment passes through the active exclusion zone.
//
// Each pair is visited at most once (lower index first). With k the average
// neighborhood occupancy this is O(n·k), against O(n²) for the naive scan.
func Connections(
	dst []Connection,
	grid *SpatialGrid,
	positions []r3.Vec,
	maxDist float64,
	crosses func(a, b r3.Vec) bool,
	scratch *[]int32,
) []Connection {
	maxDistSq := maxDist * maxDist

	for i, p := range positions {
		*scratch = (*scratch)[:0]
		*scratch = grid.NeighborhoodInto(*scratch, p)

		for _, j := range *scratch {
			if int(j) <= i {
				continue
			}
			q := positions[j]
			if r3.Norm2(r3.Sub(q, p)) >= maxDistSq {
				continue
			}
			if crosses != nil && crosses(p, q) {
				continue
			}
			dst = append(dst, Connection{A: int32(i), B: j})
		}
	}
	return dst
}
