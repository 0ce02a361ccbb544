package search

import (
	"github.com/rkessler/thistlecube/internal/coordinate"
	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/table"
)

// IDDFS finds a shortest turn sequence from start to phase's goal using
// the phase table's recorded distance as an exact (hence perfectly
// admissible) heuristic. Because the heuristic is exact, the search
// degenerates into a single depth-first walk along a shortest path with
// no backtracking in the common case; the iterative-deepening loop exists
// to stay correct if a future table ever used an approximate heuristic.
func IDDFS(phase int, depths []uint8, start cube.State) ([]cube.Turn, error) {
	coordFn := coordinate.PhaseCoords[phase]

	startDepth, err := table.Depth(depths, coordFn(start))
	if err != nil {
		return nil, err
	}

	for limit := int(startDepth); limit <= coordinate.PhaseMaxDepth[phase]; limit++ {
		path, ok := dfsToGoal(phase, depths, start, limit)
		if ok {
			return path, nil
		}
	}
	return nil, table.ErrUnreachableCoordinate
}

func dfsToGoal(phase int, depths []uint8, cur cube.State, budget int) ([]cube.Turn, bool) {
	coordFn := coordinate.PhaseCoords[phase]

	depth, err := table.Depth(depths, coordFn(cur))
	if err != nil {
		return nil, false
	}
	if depth == 0 {
		return nil, true
	}
	if int(depth) > budget {
		return nil, false
	}

	for _, t := range cube.PhaseTurnSets[phase] {
		next := cur
		next.ApplyTurn(t)
		sub, ok := dfsToGoal(phase, depths, next, budget-1)
		if ok {
			return append([]cube.Turn{t}, sub...), true
		}
	}
	return nil, false
}
