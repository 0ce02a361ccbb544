package solver

import (
	"testing"

	"github.com/rkessler/thistlecube/internal/cube"
)

func newSolverWithFreshTables(t *testing.T) *Solver {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSolver(WithTableDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.GenerateAllTables(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSolveSolvedStateIsNoOp(t *testing.T) {
	s := newSolverWithFreshTables(t)
	turns, err := s.Solve(cube.NewSolved())
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 0 {
		t.Fatalf("solved input produced %d turns, want 0", len(turns))
	}
}

func TestSolveScrambleReachesSolved(t *testing.T) {
	s := newSolverWithFreshTables(t)
	scramble, err := cube.ParseTurns("R U F' D L2 B U' R2 F L' B2 D' R F2 U2 B' L")
	if err != nil {
		t.Fatal(err)
	}
	state := cube.NewSolved()
	state.ApplyTurns(scramble)

	solution, err := s.Solve(state)
	if err != nil {
		t.Fatal(err)
	}
	state.ApplyTurns(solution)
	if !state.IsSolved() {
		t.Fatalf("state not solved after applying solution %s", cube.FormatTurns(solution))
	}
}

func TestSolveWithMissingTablesFails(t *testing.T) {
	s, err := NewSolver(WithTableDir(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	scramble, _ := cube.ParseTurns("R U")
	state := cube.NewSolved()
	state.ApplyTurns(scramble)

	if _, err := s.Solve(state); err == nil {
		t.Fatal("expected error solving with no generated tables")
	}
}
