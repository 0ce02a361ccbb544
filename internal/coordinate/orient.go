package coordinate

import "github.com/rkessler/thistlecube/internal/cube"

// EdgeOrientCoord packs the orientation of edge positions 0..10 into the
// low 11 bits of the return value; position 11's orientation is implied
// by the global parity invariant (the sum of all edge orientations is
// always even) and carries no information of its own.
func EdgeOrientCoord(s cube.State) uint32 {
	var v uint32
	for i := 0; i < 11; i++ {
		id := s.EdgePerm[i]
		if s.EdgeOrient[id] != 0 {
			v |= 1 << uint(i)
		}
	}
	return v
}

// pow3 is a tiny lookup of powers of three, avoiding a loop in the hot
// CornerOrientCoord path.
var pow3 = [7]uint32{1, 3, 9, 27, 81, 243, 729}

// CornerOrientCoord packs the orientation of corner positions 0..6 as
// base-3 digits; position 7's orientation is implied by the invariant
// that the sum of all corner orientations is always a multiple of three.
func CornerOrientCoord(s cube.State) uint32 {
	var v uint32
	for i := 0; i < 7; i++ {
		id := s.CornerPerm[i]
		v += uint32(s.CornerOrient[id]) * pow3[i]
	}
	return v
}
