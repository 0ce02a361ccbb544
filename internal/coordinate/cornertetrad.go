package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// tetradA are the four "tetrad A" corner identifiers (UFR, UBL, DBR,
// DFL) — alternating corners of the cube, one of the two sets a correct
// corner permutation in G2 must keep separate from tetrad B.
var tetradA = [4]int8{cube.CornerUFR, cube.CornerUBL, cube.CornerDBR, cube.CornerDFL}

func isTetradA(id int8) bool {
	for _, a := range tetradA {
		if id == a {
			return true
		}
	}
	return false
}

// CornerTetradCoord ranks the set of corner positions currently holding
// a tetrad-A corner.
func CornerTetradCoord(s cube.State) uint32 {
	positions := make([]int, 0, 4)
	for pos, id := range s.CornerPerm {
		if isTetradA(id) {
			positions = append(positions, pos)
		}
	}
	return uint32(rankCombination(positions, 8))
}
