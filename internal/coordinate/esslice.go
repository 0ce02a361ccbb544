package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// mPositions are the four position slots reserved for M-slice edges once
// phase 1's goal has been reached. They are a fixed set of slots, not a
// function of the current state — ESSliceCoord's "compressed index that
// skips M positions" skips exactly these four.
var mPositions = map[int]bool{
	int(cube.EdgeUF): true,
	int(cube.EdgeUB): true,
	int(cube.EdgeDF): true,
	int(cube.EdgeDB): true,
}

// eSliceEdges are the four "E/S-slice" edge identifiers (FL, FR, BL, BR):
// the remaining equatorial edges once the M-slice edges are set aside.
var eSliceEdges = [4]int8{cube.EdgeFL, cube.EdgeFR, cube.EdgeBL, cube.EdgeBR}

func isESliceEdge(id int8) bool {
	for _, e := range eSliceEdges {
		if id == e {
			return true
		}
	}
	return false
}

// ESSliceCoord ranks the placement of the four E-slice edges among the
// eight non-M positions, using a compressed index (0..7) that maps each
// non-M position to its rank within the non-M positions only.
func ESSliceCoord(s cube.State) uint32 {
	positions := make([]int, 0, 4)
	compressed := 0
	for pos := 0; pos < 12; pos++ {
		if mPositions[pos] {
			continue
		}
		if isESliceEdge(s.EdgePerm[pos]) {
			positions = append(positions, compressed)
		}
		compressed++
	}
	return uint32(rankCombination(positions, 8))
}
