package cube

import "testing"

func TestNewSolvedIsSolved(t *testing.T) {
	s := NewSolved()
	if !s.IsSolved() {
		t.Fatal("NewSolved() is not solved")
	}
}

func TestRFourTimesIsIdentity(t *testing.T) {
	s := NewSolved()
	for i := 0; i < 4; i++ {
		s.ApplyTurn(Turn{Face: FaceR, Variant: VariantQuarter})
	}
	if !s.IsSolved() {
		t.Fatalf("R^4 did not return to solved: %s", s)
	}
}

func TestEachFaceFourTimesIsIdentity(t *testing.T) {
	for face := FaceR; face <= FaceB; face++ {
		s := NewSolved()
		for i := 0; i < 4; i++ {
			s.ApplyTurn(Turn{Face: face, Variant: VariantQuarter})
		}
		if !s.IsSolved() {
			t.Fatalf("face %s: ^4 did not return to solved: %s", face, s)
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	for face := FaceR; face <= FaceB; face++ {
		s := NewSolved()
		s.ApplyTurn(Turn{Face: face, Variant: VariantHalf})
		s.ApplyTurn(Turn{Face: face, Variant: VariantHalf})
		if !s.IsSolved() {
			t.Fatalf("face %s: half-turn twice did not return to solved: %s", face, s)
		}
	}
}

func TestQuarterThenInverseIsIdentity(t *testing.T) {
	for face := FaceR; face <= FaceB; face++ {
		s := NewSolved()
		s.ApplyTurn(Turn{Face: face, Variant: VariantQuarter})
		s.ApplyTurn(Turn{Face: face, Variant: VariantInverse})
		if !s.IsSolved() {
			t.Fatalf("face %s: quarter then inverse did not return to solved: %s", face, s)
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	s := NewSolved()
	sexy := []Turn{
		{Face: FaceR, Variant: VariantQuarter},
		{Face: FaceU, Variant: VariantQuarter},
		{Face: FaceR, Variant: VariantInverse},
		{Face: FaceU, Variant: VariantInverse},
	}
	for i := 0; i < 6; i++ {
		s.ApplyTurns(sexy)
	}
	if !s.IsSolved() {
		t.Fatalf("(R U R' U')^6 did not return to solved: %s", s)
	}
}

func TestApplyTurnsThenInverseReturnsToStart(t *testing.T) {
	start := NewSolved()
	start.ApplyTurns([]Turn{
		{Face: FaceR, Variant: VariantQuarter},
		{Face: FaceU, Variant: VariantHalf},
	})
	snapshot := start

	scramble, err := ParseTurns("F R U' R' U' R U R' F' R U R' U' R' F R F'")
	if err != nil {
		t.Fatal(err)
	}
	start.ApplyTurns(scramble)
	for i := len(scramble) - 1; i >= 0; i-- {
		start.ApplyTurn(scramble[i].Inverse())
	}
	if start != snapshot {
		t.Fatalf("scramble+inverse did not return to starting state\nwant %s\ngot  %s", snapshot, start)
	}
}

func TestOrientationStaysWithinRange(t *testing.T) {
	s := NewSolved()
	scramble, err := ParseTurns("R U2 F' D L2 B U' R2 F L' B2 D' R F2")
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyTurns(scramble)
	for _, v := range s.CornerOrient {
		if v < 0 || v > 2 {
			t.Fatalf("corner orientation out of range: %d", v)
		}
	}
	for _, v := range s.EdgeOrient {
		if v < 0 || v > 1 {
			t.Fatalf("edge orientation out of range: %d", v)
		}
	}
}

func TestPermutationsStayPermutations(t *testing.T) {
	s := NewSolved()
	scramble, err := ParseTurns("R U2 F' D L2 B U' R2 F L' B2 D' R F2 U B' L")
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyTurns(scramble)

	seenC := map[int8]bool{}
	for _, id := range s.CornerPerm {
		if seenC[id] {
			t.Fatalf("corner identifier %d appears twice", id)
		}
		seenC[id] = true
	}
	seenE := map[int8]bool{}
	for _, id := range s.EdgePerm {
		if seenE[id] {
			t.Fatalf("edge identifier %d appears twice", id)
		}
		seenE[id] = true
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSolved()
	s.ApplyTurn(Turn{Face: FaceR, Variant: VariantQuarter})
	clone := s.Clone()
	clone.ApplyTurn(Turn{Face: FaceU, Variant: VariantQuarter})
	if s == clone {
		t.Fatal("mutating clone affected original")
	}
}
