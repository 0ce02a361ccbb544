package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// Phase0Coord packs edge orientation alone. Its table has 2,048 entries
// (2^11) and a max depth of 7.
func Phase0Coord(s cube.State) uint32 {
	return EdgeOrientCoord(s)
}

// Phase1Coord packs corner orientation and the M-slice placement. Its
// table has 1,082,565 entries (2,187 x 495) and a max depth of 10.
func Phase1Coord(s cube.State) uint32 {
	return CornerOrientCoord(s)*495 + MSliceCoord(s)
}

// Phase2Coord packs the E/S-slice placement, the corner-tetrad placement
// and the tetrad-twist residue. Its table has 29,400 entries (70 x 70 x 6)
// and a max depth of 13.
func Phase2Coord(s cube.State) uint32 {
	return (ESSliceCoord(s)*70+CornerTetradCoord(s))*6 + TetradTwistCoord(s)
}

// Phase3Coord packs the phase-3 edge and corner permutation coordinates.
// Its table has 663,552 entries (6,912 x 96) and a max depth of 15.
func Phase3Coord(s cube.State) uint32 {
	return EdgePermCoord(s)*96 + CornerPermCoord(s)
}

// PhaseCoords holds one coordinate function per phase, indexed 0..3, for
// callers (the table generator and the search package) that need to
// select a phase's coordinate dynamically.
var PhaseCoords = [4]func(cube.State) uint32{
	Phase0Coord, Phase1Coord, Phase2Coord, Phase3Coord,
}

// PhaseTableSize is the exact number of reachable coordinate values for
// each phase — the declared size of that phase's table, and the
// correctness oracle the table generator checks its BFS output against.
var PhaseTableSize = [4]int{2048, 1082565, 29400, 663552}

// PhaseMaxDepth is the documented maximum BFS depth for each phase.
var PhaseMaxDepth = [4]int{7, 10, 13, 15}
