package coordinate

import (
	"sync"

	"github.com/rkessler/thistlecube/internal/cube"
)

// permIndex assigns a dense, BFS-discovery-order coordinate to every
// corner permutation and every edge permutation reachable from the
// solved state under phase 3's half-turn-only move set. Phase 3 reaches
// only 96 of the 8! corner permutations and 6912 of the 12! edge
// permutations (see the table generator's documented phase-3 table
// size); rather than derive a closed-form bijection onto those two
// specific subgroups, the reachable sets are discovered once by walking
// the same move set the table generator walks, and indexed in the order
// they're first seen. This is the standard technique reference
// Thistlethwaite implementations use for exactly this pair of
// coordinates: it is correct for whatever the reachable set turns out to
// be, rather than depending on an externally-derived group order.
type permIndex struct {
	cornerForward map[[8]int8]uint32
	cornerReverse [][8]int8
	edgeForward   map[[12]int8]uint32
	edgeReverse   [][12]int8
}

var (
	permIndexOnce  sync.Once
	permIndexValue *permIndex
)

func getPermIndex() *permIndex {
	permIndexOnce.Do(func() {
		permIndexValue = buildPermIndex()
	})
	return permIndexValue
}

func buildPermIndex() *permIndex {
	idx := &permIndex{
		cornerForward: make(map[[8]int8]uint32),
		edgeForward:   make(map[[12]int8]uint32),
	}

	start := cube.NewSolved()
	queue := []cube.State{start}
	visited := map[uint64]bool{start.Hash(): true}

	record := func(s cube.State) {
		if _, ok := idx.cornerForward[s.CornerPerm]; !ok {
			idx.cornerForward[s.CornerPerm] = uint32(len(idx.cornerReverse))
			idx.cornerReverse = append(idx.cornerReverse, s.CornerPerm)
		}
		if _, ok := idx.edgeForward[s.EdgePerm]; !ok {
			idx.edgeForward[s.EdgePerm] = uint32(len(idx.edgeReverse))
			idx.edgeReverse = append(idx.edgeReverse, s.EdgePerm)
		}
	}
	record(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range cube.PhaseTurnSets[3] {
			next := cur
			next.ApplyTurn(t)
			h := next.Hash()
			if visited[h] {
				continue
			}
			visited[h] = true
			record(next)
			queue = append(queue, next)
		}
	}

	return idx
}

// CornerPermCoord returns the dense phase-3 corner-permutation coordinate
// for s. The result is only meaningful for states reachable from solved
// under the phase-3 move set, which is the only case callers ever pass it.
func CornerPermCoord(s cube.State) uint32 {
	return getPermIndex().cornerForward[s.CornerPerm]
}

// EdgePermCoord returns the dense phase-3 edge-permutation coordinate for s.
func EdgePermCoord(s cube.State) uint32 {
	return getPermIndex().edgeForward[s.EdgePerm]
}

// CornerPermCount and EdgePermCount report how many distinct permutations
// the registry discovered — 96 and 6912 respectively, per the table
// generator's documented phase-3 sizing.
func CornerPermCount() int {
	return len(getPermIndex().cornerReverse)
}

func EdgePermCount() int {
	return len(getPermIndex().edgeReverse)
}
