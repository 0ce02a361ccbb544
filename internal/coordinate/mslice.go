package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// mSliceEdges are the four "M-slice" edge identifiers (UF, UB, DF, DB):
// the edges that touch neither the L nor the R face.
var mSliceEdges = [4]int8{cube.EdgeUF, cube.EdgeUB, cube.EdgeDF, cube.EdgeDB}

func isMSliceEdge(id int8) bool {
	for _, m := range mSliceEdges {
		if id == m {
			return true
		}
	}
	return false
}

// MSliceCoord ranks the set of positions (among all twelve) currently
// holding an M-slice edge. Combined with CornerOrientCoord this is the
// phase-1 coordinate: a quiescent value means the M-slice edges have
// been herded into a single four-position coset, regardless of their
// order within it.
func MSliceCoord(s cube.State) uint32 {
	positions := make([]int, 0, 4)
	for pos, id := range s.EdgePerm {
		if isMSliceEdge(id) {
			positions = append(positions, pos)
		}
	}
	return uint32(rankCombination(positions, 12))
}
