// Package cube implements the cubelet-level representation of a 3x3
// Rubik's Cube and the eighteen-token turn alphabet that mutates it.
// Every cubelet is tracked by identity, not by the facelet colors it
// currently shows, which is what makes the coordinate projections in
// the coordinate package well defined.
package cube

import "hash/fnv"

// State is a 3x3 cube held as four fixed-size cubelet arrays. Index i of
// a *_perm array holds the identifier of the cubelet currently at
// position i; index i of a *_orient array holds the orientation of the
// cubelet whose identifier is i (orientation is indexed by identity, not
// by position — this is the invariant every coordinate and turn
// application in this module depends on).
type State struct {
	CornerPerm   [8]int8
	CornerOrient [8]int8
	EdgePerm     [12]int8
	EdgeOrient   [12]int8
}

// NewSolved returns a cube in the solved state: identity permutations,
// zero orientation everywhere.
func NewSolved() State {
	var s State
	for i := range s.CornerPerm {
		s.CornerPerm[i] = int8(i)
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = int8(i)
	}
	return s
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return s
}

// IsSolved reports whether every cubelet is at its home position with
// zero orientation.
func (s State) IsSolved() bool {
	return s == NewSolved()
}

// Hash returns a value stable across runs for the same state, suitable
// as a map key or for deduplicating visited states during search.
func (s State) Hash() uint64 {
	h := fnv.New64a()
	var buf [40]byte
	for i, v := range s.CornerPerm {
		buf[i] = byte(v)
	}
	for i, v := range s.CornerOrient {
		buf[8+i] = byte(v)
	}
	for i, v := range s.EdgePerm {
		buf[16+i] = byte(v)
	}
	for i, v := range s.EdgeOrient {
		buf[28+i] = byte(v)
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// applyCycle4 rotates the four slots named by idx forward (cw) or
// backward (!cw) through arr, in place. Forward sends the value at
// idx[3] to idx[0], idx[2] to idx[3], idx[1] to idx[2] and idx[0] to
// idx[1] — i.e. values advance along the cycle idx[0]->idx[1]->idx[2]->
// idx[3]->idx[0]. Backward is the exact inverse of that.
func applyCycle4(arr []int8, idx [4]int8, cw bool) {
	if cw {
		t := arr[idx[0]]
		arr[idx[0]] = arr[idx[3]]
		arr[idx[3]] = arr[idx[2]]
		arr[idx[2]] = arr[idx[1]]
		arr[idx[1]] = t
	} else {
		t := arr[idx[0]]
		arr[idx[0]] = arr[idx[1]]
		arr[idx[1]] = arr[idx[2]]
		arr[idx[2]] = arr[idx[3]]
		arr[idx[3]] = t
	}
}

// applyQuarter applies one quarter turn of face in the given direction,
// including the orientation side-effects of that face (if any). Both
// ApplyTurn's quarter and half cases reduce to this.
func (s *State) applyQuarter(face Face, cw bool) {
	m := faceMoves[face]

	applyCycle4(s.CornerPerm[:], m.corners, cw)
	applyCycle4(s.EdgePerm[:], m.edges, cw)

	if m.twistsCorner {
		delta := cornerTwistCW
		if !cw {
			delta = cornerTwistCCW
		}
		for i, pos := range m.corners {
			id := s.CornerPerm[pos]
			s.CornerOrient[id] = (s.CornerOrient[id] + delta[i]) % 3
		}
	}

	if m.flipsEdge {
		for _, pos := range m.edges {
			id := s.EdgePerm[pos]
			s.EdgeOrient[id] ^= 1
		}
	}
}

// ApplyTurn mutates s by applying a single turn.
func (s *State) ApplyTurn(t Turn) {
	switch t.Variant {
	case VariantQuarter:
		s.applyQuarter(t.Face, true)
	case VariantInverse:
		s.applyQuarter(t.Face, false)
	case VariantHalf:
		s.applyQuarter(t.Face, true)
		s.applyQuarter(t.Face, true)
	}
}

// ApplyTurns mutates s by applying turns in sequence.
func (s *State) ApplyTurns(turns []Turn) {
	for _, t := range turns {
		s.ApplyTurn(t)
	}
}

// cornerLabels and edgeLabels give a short cubelet label for each
// identifier, used only by String for a human-readable dump.
var cornerLabels = [8]string{"UBL", "DFL", "DBR", "UFR", "UFL", "DBL", "DFR", "UBR"}
var edgeLabels = [12]string{"UL", "DL", "DR", "UR", "BL", "FL", "FR", "BR", "UF", "DF", "DB", "UB"}

// String renders the state as two lines of cubelet labels: the corner
// positions 0..7, then the edge positions 0..11, each entry naming the
// cubelet at that position and its orientation (e.g. "UFR^1"). It is a
// debugging and visualizer aid only; it carries no information the four
// arrays don't already hold.
func (s State) String() string {
	out := make([]byte, 0, 256)
	out = append(out, "corners: "...)
	for i, id := range s.CornerPerm {
		out = append(out, cornerLabels[id]...)
		out = append(out, '^')
		out = append(out, byte('0'+s.CornerOrient[id]))
		if i < len(s.CornerPerm)-1 {
			out = append(out, ' ')
		}
	}
	out = append(out, "\nedges:   "...)
	for i, id := range s.EdgePerm {
		out = append(out, edgeLabels[id]...)
		out = append(out, '^')
		out = append(out, byte('0'+s.EdgeOrient[id]))
		if i < len(s.EdgePerm)-1 {
			out = append(out, ' ')
		}
	}
	return string(out)
}
