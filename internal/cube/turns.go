package cube

// Predefined turns for convenience, mirroring the predecessor library's
// style of exposing every move as a named value instead of making
// callers build Turn literals by hand.
var (
	R      = Turn{Face: FaceR, Variant: VariantQuarter}
	RPrime = Turn{Face: FaceR, Variant: VariantInverse}
	R2     = Turn{Face: FaceR, Variant: VariantHalf}

	L      = Turn{Face: FaceL, Variant: VariantQuarter}
	LPrime = Turn{Face: FaceL, Variant: VariantInverse}
	L2     = Turn{Face: FaceL, Variant: VariantHalf}

	U      = Turn{Face: FaceU, Variant: VariantQuarter}
	UPrime = Turn{Face: FaceU, Variant: VariantInverse}
	U2     = Turn{Face: FaceU, Variant: VariantHalf}

	D      = Turn{Face: FaceD, Variant: VariantQuarter}
	DPrime = Turn{Face: FaceD, Variant: VariantInverse}
	D2     = Turn{Face: FaceD, Variant: VariantHalf}

	F      = Turn{Face: FaceF, Variant: VariantQuarter}
	FPrime = Turn{Face: FaceF, Variant: VariantInverse}
	F2     = Turn{Face: FaceF, Variant: VariantHalf}

	B      = Turn{Face: FaceB, Variant: VariantQuarter}
	BPrime = Turn{Face: FaceB, Variant: VariantInverse}
	B2     = Turn{Face: FaceB, Variant: VariantHalf}
)

// AllTurns is the full eighteen-token alphabet, in the fixed order used
// whenever a phase needs a deterministic tie-break between moves of
// equal search cost.
var AllTurns = []Turn{
	R, RPrime, R2,
	L, LPrime, L2,
	U, UPrime, U2,
	D, DPrime, D2,
	F, FPrime, F2,
	B, BPrime, B2,
}

// PhaseTurnSets holds, for each of the four Thistlethwaite phases, the
// restricted set of turns that keeps the search inside that phase's
// subgroup. Each table generator and search routine walks its phase's
// set in this fixed order.
var PhaseTurnSets = [4][]Turn{
	0: AllTurns,
	1: {R, RPrime, R2, L, LPrime, L2, U2, D2, F, FPrime, F2, B, BPrime, B2},
	2: {R, RPrime, R2, L, LPrime, L2, U2, D2, F2, B2},
	3: {R2, L2, U2, D2, F2, B2},
}
