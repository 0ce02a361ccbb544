package cube

// Corner cubelet identifiers, also used as position indices — the same
// numbering scheme serves both roles, per the table-and-search design's
// requirement that states be fixed-size arrays rather than maps.
const (
	CornerUBL int8 = iota
	CornerDFL
	CornerDBR
	CornerUFR
	CornerUFL
	CornerDBL
	CornerDFR
	CornerUBR
)

// Edge cubelet identifiers / position indices.
const (
	EdgeUL int8 = iota
	EdgeDL
	EdgeDR
	EdgeUR
	EdgeBL
	EdgeFL
	EdgeFR
	EdgeBR
	EdgeUF
	EdgeDF
	EdgeDB
	EdgeUB
)

// faceMove describes, for one face, the 4-cycle a quarter clockwise turn
// induces on corner and edge positions, plus whether that face's quarter
// turns also twist corner orientation or flip edge orientation. These
// are fixed facts about cube geometry, so they live as package-level
// constants rather than being recomputed per turn.
type faceMove struct {
	corners      [4]int8
	edges        [4]int8
	twistsCorner bool
	flipsEdge    bool
}

// cornerTwistCW and cornerTwistCCW give the per-slot orientation delta
// (mod 3) a twisting quarter turn adds to the corner now occupying each
// of the move's four cycle positions, in the same order as faceMove.corners.
var (
	cornerTwistCW  = [4]int8{2, 1, 2, 1}
	cornerTwistCCW = [4]int8{2, 1, 2, 1}
)

var faceMoves = [6]faceMove{
	FaceR: {
		corners: [4]int8{CornerDBR, CornerDFR, CornerUFR, CornerUBR},
		edges:   [4]int8{EdgeUR, EdgeBR, EdgeDR, EdgeFR},
	},
	FaceL: {
		corners: [4]int8{CornerUBL, CornerUFL, CornerDFL, CornerDBL},
		edges:   [4]int8{EdgeFL, EdgeDL, EdgeBL, EdgeUL},
	},
	FaceU: {
		corners:      [4]int8{CornerUBL, CornerUBR, CornerUFR, CornerUFL},
		edges:        [4]int8{EdgeUB, EdgeUR, EdgeUF, EdgeUL},
		twistsCorner: true,
		flipsEdge:    true,
	},
	FaceD: {
		corners:      [4]int8{CornerDFL, CornerDFR, CornerDBR, CornerDBL},
		edges:        [4]int8{EdgeDL, EdgeDF, EdgeDR, EdgeDB},
		twistsCorner: true,
		flipsEdge:    true,
	},
	FaceF: {
		corners:      [4]int8{CornerUFL, CornerUFR, CornerDFR, CornerDFL},
		edges:        [4]int8{EdgeUF, EdgeFR, EdgeDF, EdgeFL},
		twistsCorner: true,
	},
	FaceB: {
		corners:      [4]int8{CornerDBL, CornerDBR, CornerUBR, CornerUBL},
		edges:        [4]int8{EdgeBL, EdgeDB, EdgeBR, EdgeUB},
		twistsCorner: true,
	},
}
