package table

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rkessler/thistlecube/internal/coordinate"
	"github.com/rkessler/thistlecube/internal/cube"
)

// PhaseCount is the number of Thistlethwaite phases this package builds
// a table for.
const PhaseCount = 4

func fileName(phase int) string {
	return fmt.Sprintf("phase%d.tbl", phase)
}

// Generate runs a breadth-first search from the solved state under
// phase's restricted move set, recording the distance from solved for
// every coordinate value it reaches. The returned slice is dense: index
// i holds the BFS depth of coordinate i, for every i in
// [0, coordinate.PhaseTableSize[phase]).
func Generate(phase int) ([]uint8, error) {
	size := coordinate.PhaseTableSize[phase]
	depths := make([]uint8, size)
	for i := range depths {
		depths[i] = unreached
	}

	coordFn := coordinate.PhaseCoords[phase]
	turns := cube.PhaseTurnSets[phase]

	start := cube.NewSolved()
	startCoord := coordFn(start)
	depths[startCoord] = 0

	queue := make([]cube.State, 0, size)
	queue = append(queue, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDepth := depths[coordFn(cur)]

		for _, t := range turns {
			next := cur
			next.ApplyTurn(t)
			coord := coordFn(next)
			if depths[coord] != unreached {
				continue
			}
			depths[coord] = curDepth + 1
			queue = append(queue, next)
		}
	}

	return depths, nil
}

// PhaseSummary reports the outcome of generating one phase's table.
type PhaseSummary struct {
	Phase    int
	Entries  int
	MaxDepth int
}

// Summary reports the outcome of a full GenerateAll run.
type Summary struct {
	Phases   [PhaseCount]PhaseSummary
	Duration time.Duration
}

// GenerateAll builds all four phase tables and writes them to dir as
// phase0.tbl..phase3.tbl, encoding coordinates at the given format width.
func GenerateAll(dir string, format Format) (Summary, error) {
	start := time.Now()
	var summary Summary

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return summary, fmt.Errorf("table: create %s: %w", dir, err)
	}

	for phase := 0; phase < PhaseCount; phase++ {
		depths, err := Generate(phase)
		if err != nil {
			return summary, fmt.Errorf("table: generate phase %d: %w", phase, err)
		}

		entries, maxDepth := 0, 0
		for _, d := range depths {
			if d == unreached {
				continue
			}
			entries++
			if int(d) > maxDepth {
				maxDepth = int(d)
			}
		}
		summary.Phases[phase] = PhaseSummary{Phase: phase, Entries: entries, MaxDepth: maxDepth}

		path := filepath.Join(dir, fileName(phase))
		f, err := os.Create(path)
		if err != nil {
			return summary, fmt.Errorf("table: create %s: %w", path, err)
		}
		err = Write(f, format, depths)
		closeErr := f.Close()
		if err != nil {
			return summary, fmt.Errorf("table: write %s: %w", path, err)
		}
		if closeErr != nil {
			return summary, fmt.Errorf("table: close %s: %w", path, closeErr)
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// Load reads a single phase's table from dir. ErrTableFileMissing is
// returned (wrapped) if the file does not exist, so callers can decide
// whether to degrade to an empty table or fail outright.
func Load(dir string, phase int) ([]uint8, error) {
	path := filepath.Join(dir, fileName(phase))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("table: open %s: %w", path, ErrTableFileMissing)
		}
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	_, depths, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("table: load %s: %w", path, err)
	}
	return depths, nil
}

// Empty returns a phase table of the correct size with every coordinate
// marked unreached. Callers use it to degrade gracefully when a table
// file is missing or corrupt: lookups fail with ErrUnreachableCoordinate
// instead of panicking on an out-of-range index.
func Empty(phase int) []uint8 {
	depths := make([]uint8, coordinate.PhaseTableSize[phase])
	for i := range depths {
		depths[i] = unreached
	}
	return depths
}

// Depth looks up the BFS distance for coord in a phase table. It
// returns ErrUnreachableCoordinate if the table has no entry — or an
// entry still at the unreached sentinel — for that coordinate.
func Depth(depths []uint8, coord uint32) (uint8, error) {
	if int(coord) >= len(depths) || depths[coord] == unreached {
		return 0, ErrUnreachableCoordinate
	}
	return depths[coord], nil
}
