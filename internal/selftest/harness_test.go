package selftest

import (
	"testing"

	"github.com/rkessler/thistlecube/internal/solver"
)

func TestFixedScramblesParse(t *testing.T) {
	scrambles := FixedScrambles()
	if len(scrambles) == 0 {
		t.Fatal("no fixed scrambles loaded")
	}
}

func TestRandomScramblesDeterministic(t *testing.T) {
	a := RandomScrambles(42)
	b := RandomScrambles(42)
	if len(a) != RandomScrambleCount {
		t.Fatalf("len(a) = %d, want %d", len(a), RandomScrambleCount)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("RandomScrambles(42) not deterministic at index %d: %q != %q", i, a[i], b[i])
		}
	}
}

func TestRunReportsEverySolved(t *testing.T) {
	dir := t.TempDir()
	s, err := solver.NewSolver(solver.WithTableDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.GenerateAllTables(); err != nil {
		t.Fatal(err)
	}

	report := Run(s, 7)
	if report.Total != len(FixedScrambles())+RandomScrambleCount {
		t.Fatalf("report.Total = %d, want %d", report.Total, len(FixedScrambles())+RandomScrambleCount)
	}
	if report.Solved != report.Total {
		for _, r := range report.Results {
			if !r.Solved {
				t.Logf("unsolved: %q err=%v", r.Scramble, r.Err)
			}
		}
		t.Fatalf("report.Solved = %d, want %d", report.Solved, report.Total)
	}
}
