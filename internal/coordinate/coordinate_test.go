package coordinate

import (
	"testing"

	"github.com/rkessler/thistlecube/internal/cube"
)

func TestRankUnrankCombinationRoundTrip(t *testing.T) {
	n, k := 12, 4
	total := c(n, k)
	for rank := 0; rank < total; rank++ {
		positions := unrankCombination(rank, n, k)
		if len(positions) != k {
			t.Fatalf("unrank(%d) returned %d positions, want %d", rank, len(positions), k)
		}
		got := rankCombination(positions, n)
		if got != rank {
			t.Fatalf("rank(unrank(%d)) = %d", rank, got)
		}
	}
}

func TestRankCombinationBounds(t *testing.T) {
	if got := rankCombination([]int{0, 1, 2, 3}, 12); got != 0 {
		t.Fatalf("rank of smallest 4-subset = %d, want 0", got)
	}
	if got := rankCombination([]int{8, 9, 10, 11}, 12); got != c(12, 4)-1 {
		t.Fatalf("rank of largest 4-subset = %d, want %d", got, c(12, 4)-1)
	}
}

func TestEdgeOrientCoordRange(t *testing.T) {
	s := cube.NewSolved()
	s.ApplyTurns(mustParse(t, "R U2 F' D L2 B U' R2 F L' B2 D' R F2"))
	v := EdgeOrientCoord(s)
	if v >= 2048 {
		t.Fatalf("EdgeOrientCoord = %d, out of range", v)
	}
}

func TestCornerOrientCoordRange(t *testing.T) {
	s := cube.NewSolved()
	s.ApplyTurns(mustParse(t, "R U2 F' D L2 B U' R2 F L' B2 D' R F2"))
	v := CornerOrientCoord(s)
	if v >= 2187 {
		t.Fatalf("CornerOrientCoord = %d, out of range", v)
	}
}

func TestTetradTwistCoordRangeAllPlacements(t *testing.T) {
	// Walk the first four BFS levels of phase-2's move set from solved,
	// recording every tetrad-twist value seen, and check each lies in
	// 0..5. This samples corner-tetrad placements and twist residues; it
	// does not visit all 70 x 6 combinations.
	seen := map[uint32]bool{}
	frontier := []cube.State{cube.NewSolved()}
	visited := map[uint64]bool{frontier[0].Hash(): true}
	for step := 0; step < 4 && len(frontier) > 0; step++ {
		var next []cube.State
		for _, s := range frontier {
			for _, turn := range cube.PhaseTurnSets[2] {
				n := s
				n.ApplyTurn(turn)
				h := n.Hash()
				if visited[h] {
					continue
				}
				visited[h] = true
				seen[TetradTwistCoord(n)] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	for v := range seen {
		if v > 5 {
			t.Fatalf("TetradTwistCoord produced out-of-range value %d", v)
		}
	}
	if len(seen) == 0 {
		t.Fatal("no tetrad-twist values observed")
	}
}

func TestPhaseCoordsSolvedStateIsConsistent(t *testing.T) {
	s := cube.NewSolved()
	for phase := 0; phase < 4; phase++ {
		v1 := PhaseCoords[phase](s)
		v2 := PhaseCoords[phase](s)
		if v1 != v2 {
			t.Fatalf("phase %d coordinate not deterministic: %d != %d", phase, v1, v2)
		}
	}
}

func mustParse(t *testing.T, s string) []cube.Turn {
	t.Helper()
	turns, err := cube.ParseTurns(s)
	if err != nil {
		t.Fatal(err)
	}
	return turns
}
