// Package search implements the two move-selection strategies
// Thistlethwaite's algorithm uses against a built phase table: greedy
// distance-decreasing descent for the wide-branching early phases, and
// iterative-deepening depth-first search for the narrow, deep late
// phases.
package search

import (
	"github.com/rkessler/thistlecube/internal/coordinate"
	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/table"
)

// GreedyDescend repeatedly picks any turn from phase's move set that
// strictly decreases the table-recorded distance to that phase's goal,
// until the distance reaches zero. Every state BFS assigned a depth to
// has, by construction, at least one neighbor at depth-1 — since the
// move set is closed under inversion the reachability graph is
// symmetric, so this always terminates without backtracking.
func GreedyDescend(phase int, depths []uint8, start cube.State) ([]cube.Turn, error) {
	coordFn := coordinate.PhaseCoords[phase]
	turns := cube.PhaseTurnSets[phase]

	var result []cube.Turn
	cur := start

	for {
		curDepth, err := table.Depth(depths, coordFn(cur))
		if err != nil {
			return nil, err
		}
		if curDepth == 0 {
			return result, nil
		}

		advanced := false
		for _, t := range turns {
			next := cur
			next.ApplyTurn(t)
			nextDepth, err := table.Depth(depths, coordFn(next))
			if err != nil {
				continue
			}
			if nextDepth == curDepth-1 {
				result = append(result, t)
				cur = next
				advanced = true
				break
			}
		}
		if !advanced {
			return nil, table.ErrUnreachableCoordinate
		}
	}
}
