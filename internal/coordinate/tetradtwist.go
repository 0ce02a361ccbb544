package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// tetradAIndex and tetradBIndex renumber the eight corner identifiers
// within their tetrad, 0..3, in the listing order used above. -1 marks
// an identifier that does not belong to that tetrad.
var tetradAIndex = buildTetradIndex([4]int8{
	cube.CornerUFR, cube.CornerUBL, cube.CornerDBR, cube.CornerDFL,
})
var tetradBIndex = buildTetradIndex([4]int8{
	cube.CornerUBR, cube.CornerUFL, cube.CornerDFR, cube.CornerDBL,
})

func buildTetradIndex(ids [4]int8) [8]int8 {
	var idx [8]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, id := range ids {
		idx[id] = int8(i)
	}
	return idx
}

// TetradTwistCoord captures the relative permutation between tetrad A
// and tetrad B corners that phase-2's moves induce, folded down to a
// single value in 0..5.
//
// The construction: walk corner positions 0..7 in order. Each time a
// tetrad-A corner is seen, record its A-index into the next open slot of
// combined[0..3], in scan order. Each time a tetrad-B corner is seen,
// record the scan-order arrival count into combined[4+its B-index].
// combined[0..3] is then a permutation of {0,1,2,3} describing which
// A-corner arrived in which scan slot; combined[4+b] tells us when the
// B-corner with B-index b arrived. Composing the two via
// tetradBPerm[i] = combined[4+combined[i]] extracts how tetrad B's
// arrangement correlates with tetrad A's, independent of which of the
// two tetrads the caller happens to think of as "first". XORing away
// tetradBPerm[0] removes the one remaining labeling degree of freedom,
// leaving a 3-element residue that a final comparison folds into 0..5.
func TetradTwistCoord(s cube.State) uint32 {
	var combined [8]int8
	nextA, nextB := int8(0), int8(0)
	for pos := 0; pos < 8; pos++ {
		id := s.CornerPerm[pos]
		if a := tetradAIndex[id]; a >= 0 {
			combined[nextA] = a
			nextA++
			continue
		}
		b := tetradBIndex[id]
		combined[4+b] = nextB
		nextB++
	}

	var tetradBPerm [4]int8
	for i := 0; i < 4; i++ {
		tetradBPerm[i] = combined[4+combined[i]]
	}

	fixed := tetradBPerm[0]
	for i := 1; i < 4; i++ {
		tetradBPerm[i] ^= fixed
	}

	result := int(tetradBPerm[1])*2 - 2
	if tetradBPerm[3] < tetradBPerm[2] {
		result++
	}
	return uint32(result)
}
