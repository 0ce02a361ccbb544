package cube

import "strings"

// Face identifies one of the six faces a turn can be applied to.
type Face int8

const (
	FaceR Face = iota
	FaceL
	FaceU
	FaceD
	FaceF
	FaceB
)

// String returns the single-letter notation for the face.
func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Variant identifies the magnitude/direction of a turn.
type Variant int8

const (
	// VariantQuarter is a 90 degree clockwise turn (no notation suffix).
	VariantQuarter Variant = iota
	// VariantHalf is a 180 degree turn (notation suffix "2").
	VariantHalf
	// VariantInverse is a 90 degree counter-clockwise turn (notation suffix "'").
	VariantInverse
)

// variantValue maps a Variant onto the Z4 group used by Merge: quarter
// turns generate the group, half is quarter+quarter, inverse is
// quarter*3. This lets two turns on the same face be combined with
// ordinary addition mod 4.
func variantValue(v Variant) int {
	switch v {
	case VariantQuarter:
		return 1
	case VariantHalf:
		return 2
	case VariantInverse:
		return 3
	default:
		return 0
	}
}

func variantFromValue(v int) (Variant, bool) {
	switch v % 4 {
	case 0:
		return 0, false
	case 1:
		return VariantQuarter, true
	case 2:
		return VariantHalf, true
	case 3:
		return VariantInverse, true
	default:
		return 0, false
	}
}

// Turn is one element of the eighteen-token turn alphabet: a face paired
// with a variant. Turn is a value type, not a string — callers compare,
// merge and invert turns structurally rather than by notation.
type Turn struct {
	Face    Face
	Variant Variant
}

// Notation returns the standard cube notation for the turn: R, R', R2, etc.
func (t Turn) Notation() string {
	suffix := ""
	switch t.Variant {
	case VariantInverse:
		suffix = "'"
	case VariantHalf:
		suffix = "2"
	}
	return t.Face.String() + suffix
}

// String returns the notation string (alias for Notation, so Turn
// satisfies fmt.Stringer).
func (t Turn) String() string {
	return t.Notation()
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	inv := t
	switch t.Variant {
	case VariantQuarter:
		inv.Variant = VariantInverse
	case VariantInverse:
		inv.Variant = VariantQuarter
	// Half is its own inverse.
	}
	return inv
}

// Merge combines two turns on the same face into a single equivalent
// turn. ok is false when the pair cancels outright (e.g. R followed by
// R') or when the two turns are on different faces; in either case the
// returned Turn is the zero value and must be discarded by the caller.
func (t Turn) Merge(next Turn) (Turn, bool) {
	if t.Face != next.Face {
		return Turn{}, false
	}
	v, ok := variantFromValue(variantValue(t.Variant) + variantValue(next.Variant))
	if !ok {
		return Turn{}, false
	}
	return Turn{Face: t.Face, Variant: v}, true
}

// ParseTurn parses a single notation token such as "R", "R'" or "R2".
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Turn{}, ErrInvalidToken
	}

	var face Face
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Turn{}, ErrInvalidToken
	}

	variant := VariantQuarter
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			variant = VariantInverse
		case "2":
			variant = VariantHalf
		default:
			return Turn{}, ErrInvalidToken
		}
	}

	return Turn{Face: face, Variant: variant}, nil
}

// ParseTurns parses a space-separated sequence of notation tokens. Unlike
// ParseMoves in the BLE-facing predecessor of this package, a single bad
// token fails the whole parse — a scramble string is either entirely
// valid or rejected, never silently truncated.
func ParseTurns(s string) ([]Turn, error) {
	fields := strings.Fields(s)
	turns := make([]Turn, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTurn(f)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// FormatTurns formats a slice of turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}
	return strings.Join(parts, " ")
}

// Simplify collapses runs of adjacent turns on the same face into their
// merged equivalent, dropping any that cancel outright. It processes the
// sequence in a single left-to-right pass, folding each new turn into
// the tail of the result built so far.
func Simplify(turns []Turn) []Turn {
	out := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if len(out) == 0 || out[len(out)-1].Face != t.Face {
			out = append(out, t)
			continue
		}
		merged, ok := out[len(out)-1].Merge(t)
		if !ok {
			out = out[:len(out)-1]
			continue
		}
		out[len(out)-1] = merged
	}
	return out
}
