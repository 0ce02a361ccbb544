// Package selftest runs the solver against a battery of scrambles and
// reports whether every one was actually solved, how many moves each
// solution took, and how long solving took — the policeman for bugs in
// the coordinate and table machinery that unit tests alone might miss.
package selftest

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/solver"
)

//go:embed testdata/fixed_scrambles.txt
var fixedScramblesFile string

// FixedScrambles returns the checked-in battery of known scrambles, in
// file order, skipping blank and comment lines.
func FixedScrambles() []string {
	var out []string
	for _, line := range strings.Split(fixedScramblesFile, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// RandomScrambleTokenCount is the length of each generated random
// scramble, per the self-test harness's fixed battery shape.
const RandomScrambleTokenCount = 50

// RandomScrambleCount is how many random scrambles Run
// generates in addition to the fixed battery.
const RandomScrambleCount = 9

// RandomScrambles generates RandomScrambleCount scrambles of
// RandomScrambleTokenCount tokens each, drawn from the full turn
// alphabet, using the given seed — the same seed always produces the
// same scrambles, so a self-test run is reproducible.
func RandomScrambles(seed int64) []string {
	return RandomScramblesN(seed, RandomScrambleCount, RandomScrambleTokenCount)
}

// RandomScramblesN generates n scrambles of tokenCount tokens each,
// drawn from the full turn alphabet, using the given seed.
func RandomScramblesN(seed int64, n, tokenCount int) []string {
	rng := rand.New(rand.NewSource(seed))
	scrambles := make([]string, n)
	for i := range scrambles {
		tokens := make([]string, tokenCount)
		for j := range tokens {
			tokens[j] = cube.AllTurns[rng.Intn(len(cube.AllTurns))].Notation()
		}
		scrambles[i] = strings.Join(tokens, " ")
	}
	return scrambles
}

// ScrambleResult records the outcome of solving one scramble.
type ScrambleResult struct {
	Scramble  string
	Solved    bool
	MoveCount int
	Duration  time.Duration
	Err       error
}

// Report aggregates the results of a full self-test run.
type Report struct {
	Results []ScrambleResult
	Solved  int
	Total   int
	Best    time.Duration
	Worst   time.Duration
	Average time.Duration
}

// Run solves every scramble in FixedScrambles() plus RandomScrambles(seed)
// with s, recording per-scramble and aggregate results. It never returns
// an error itself — a scramble the solver fails on is recorded as an
// unsolved ScrambleResult, not a harness failure, since the whole point
// of this harness is to surface exactly that without stopping early.
func Run(s *solver.Solver, seed int64) Report {
	scrambles := append(append([]string{}, FixedScrambles()...), RandomScrambles(seed)...)
	return RunScrambles(s, scrambles)
}

// RunScrambles solves exactly the given scrambles, recording the same
// per-scramble and aggregate results as Run. Callers that want a custom
// scramble file or a different random batch size build their own
// scramble list and call this directly instead of Run.
func RunScrambles(s *solver.Solver, scrambles []string) Report {
	report := Report{Total: len(scrambles)}
	var totalDuration time.Duration

	for _, scrambleText := range scrambles {
		result := ScrambleResult{Scramble: scrambleText}

		turns, err := cube.ParseTurns(scrambleText)
		if err != nil {
			result.Err = fmt.Errorf("selftest: parse scramble %q: %w", scrambleText, err)
			report.Results = append(report.Results, result)
			continue
		}

		state := cube.NewSolved()
		state.ApplyTurns(turns)

		start := time.Now()
		solution, err := s.Solve(state)
		result.Duration = time.Since(start)

		if err != nil {
			result.Err = err
		} else {
			state.ApplyTurns(solution)
			result.MoveCount = len(solution)
			result.Solved = state.IsSolved()
		}

		if result.Solved {
			report.Solved++
		}
		totalDuration += result.Duration
		if report.Best == 0 || result.Duration < report.Best {
			report.Best = result.Duration
		}
		if result.Duration > report.Worst {
			report.Worst = result.Duration
		}
		report.Results = append(report.Results, result)
	}

	if report.Total > 0 {
		report.Average = totalDuration / time.Duration(report.Total)
	}
	return report
}
