package search

import (
	"testing"

	"github.com/rkessler/thistlecube/internal/coordinate"
	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/table"
)

func buildTables(t *testing.T) [4][]uint8 {
	t.Helper()
	var tables [4][]uint8
	for phase := 0; phase < 4; phase++ {
		depths, err := table.Generate(phase)
		if err != nil {
			t.Fatalf("generate phase %d: %v", phase, err)
		}
		tables[phase] = depths
	}
	return tables
}

func solveAllPhases(t *testing.T, tables [4][]uint8, scramble []cube.Turn) []cube.Turn {
	t.Helper()
	state := cube.NewSolved()
	state.ApplyTurns(scramble)

	var solution []cube.Turn
	for phase := 0; phase < 2; phase++ {
		turns, err := GreedyDescend(phase, tables[phase], state)
		if err != nil {
			t.Fatalf("phase %d greedy descent: %v", phase, err)
		}
		state.ApplyTurns(turns)
		solution = append(solution, turns...)
	}
	for phase := 2; phase < 4; phase++ {
		turns, err := IDDFS(phase, tables[phase], state)
		if err != nil {
			t.Fatalf("phase %d iddfs: %v", phase, err)
		}
		state.ApplyTurns(turns)
		solution = append(solution, turns...)
	}
	if !state.IsSolved() {
		t.Fatalf("state not solved after all four phases")
	}
	return solution
}

func TestFullPipelineSolvesScramble(t *testing.T) {
	tables := buildTables(t)
	scramble, err := cube.ParseTurns("F R U' R' U' R U R' F' R U R' U' R' F R F'")
	if err != nil {
		t.Fatal(err)
	}
	solveAllPhases(t, tables, scramble)
}

func TestFullPipelineSolvedInputIsNoOp(t *testing.T) {
	tables := buildTables(t)
	solution := solveAllPhases(t, tables, nil)
	if len(solution) != 0 {
		t.Fatalf("solved input produced %d turns, want 0", len(solution))
	}
}

func TestGreedyDescendReachesPhaseGoal(t *testing.T) {
	depths, err := table.Generate(0)
	if err != nil {
		t.Fatal(err)
	}
	state := cube.NewSolved()
	scramble, err := cube.ParseTurns("R U F' D L2 B U' R2 F L' B2 D'")
	if err != nil {
		t.Fatal(err)
	}
	state.ApplyTurns(scramble)

	turns, err := GreedyDescend(0, depths, state)
	if err != nil {
		t.Fatal(err)
	}
	state.ApplyTurns(turns)
	if coordinate.Phase0Coord(state) != 0 {
		t.Fatalf("phase 0 coordinate after descent = %d, want 0", coordinate.Phase0Coord(state))
	}
}
