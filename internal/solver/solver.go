// Package solver is the Thistlethwaite solver facade: it loads phase
// tables, runs each phase's search in order, and simplifies the
// concatenated result.
package solver

import (
	"errors"
	"fmt"
	"log"

	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/search"
	"github.com/rkessler/thistlecube/internal/table"
)

// Solver holds the four loaded phase tables and solves states against them.
type Solver struct {
	cfg    *config
	tables [4][]uint8
}

// NewSolver constructs a Solver, loading phase tables from the
// configured directory (see WithTableDir). A missing or corrupt table
// file is not fatal: it is logged once and that phase's table is
// treated as empty. Every phase's search looks its table up, even for a
// state already at that phase's goal, so with any empty table every
// Solve call fails with ErrUnsolvableInput — callers that only care
// about table generation, or that will call GenerateAllTables next,
// are unaffected.
func NewSolver(opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Solver{cfg: cfg}
	for phase := 0; phase < table.PhaseCount; phase++ {
		depths, err := table.Load(cfg.tableDir, phase)
		switch {
		case err == nil:
			s.tables[phase] = depths
		case errors.Is(err, table.ErrTableFileMissing):
			log.Printf("solver: phase %d table missing in %s (run gen-tables); solving will fail until tables are generated", phase, cfg.tableDir)
			s.tables[phase] = table.Empty(phase)
		default:
			log.Printf("solver: phase %d table corrupt: %v; treating as empty", phase, err)
			s.tables[phase] = table.Empty(phase)
		}
	}
	return s, nil
}

// GenerateAllTables (re)builds all four phase tables in the solver's
// configured table directory and format, then reloads them so the
// receiver immediately reflects the fresh tables.
func (s *Solver) GenerateAllTables() (table.Summary, error) {
	summary, err := table.GenerateAll(s.cfg.tableDir, s.cfg.format)
	if err != nil {
		return summary, err
	}
	for phase := 0; phase < table.PhaseCount; phase++ {
		depths, err := table.Load(s.cfg.tableDir, phase)
		if err != nil {
			return summary, fmt.Errorf("solver: reload phase %d after generation: %w", phase, err)
		}
		s.tables[phase] = depths
	}
	return summary, nil
}

// Solve returns a turn sequence that brings state to solved, by running
// phase 0 and 1's greedy descent followed by phase 2 and 3's
// iterative-deepening search, applying each phase's result before moving
// to the next. The returned sequence is simplified (adjacent same-face
// turns collapsed) but is not claimed to be move-optimal.
func (s *Solver) Solve(state cube.State) ([]cube.Turn, error) {
	cur := state
	var solution []cube.Turn

	for phase := 0; phase < 2; phase++ {
		turns, err := search.GreedyDescend(phase, s.tables[phase], cur)
		if err != nil {
			return nil, fmt.Errorf("solver: phase %d: %w", phase, ErrUnsolvableInput)
		}
		cur.ApplyTurns(turns)
		solution = append(solution, turns...)
	}
	for phase := 2; phase < 4; phase++ {
		turns, err := search.IDDFS(phase, s.tables[phase], cur)
		if err != nil {
			return nil, fmt.Errorf("solver: phase %d: %w", phase, ErrUnsolvableInput)
		}
		cur.ApplyTurns(turns)
		solution = append(solution, turns...)
	}

	if !cur.IsSolved() {
		return nil, fmt.Errorf("solver: all four phases reported success but result is not solved: %w", ErrUnsolvableInput)
	}
	return cube.Simplify(solution), nil
}
