package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkessler/thistlecube/internal/selftest"
	"github.com/rkessler/thistlecube/internal/storage"
)

var (
	selftestSeed      int64
	selftestSave      bool
	selftestScrambles string
	selftestRandom    int

	historyLast int
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Solve a battery of fixed and random scrambles",
	Long: `Runs the solver against the checked-in battery of fixed scrambles
plus a deterministic batch of random scrambles, and reports whether every
one actually reached the solved state.`,
	RunE: runSelftest,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past selftest and gen-tables runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
	selftestCmd.Flags().Int64Var(&selftestSeed, "seed", 1, "Random scramble seed")
	selftestCmd.Flags().BoolVar(&selftestSave, "save", false, "Record this run's results to the database")
	selftestCmd.Flags().StringVar(&selftestScrambles, "scrambles", "", "Scramble file to use instead of the checked-in battery (one scramble per line)")
	selftestCmd.Flags().IntVar(&selftestRandom, "random", selftest.RandomScrambleCount, "Number of random scrambles to add")

	selftestCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLast, "last", 20, "Maximum number of runs to display")
}

func runSelftest(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	var scrambles []string
	if selftestScrambles != "" {
		data, err := os.ReadFile(selftestScrambles)
		if err != nil {
			return fmt.Errorf("failed to read scramble file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			scrambles = append(scrambles, line)
		}
	} else {
		scrambles = append(scrambles, selftest.FixedScrambles()...)
	}
	scrambles = append(scrambles, selftest.RandomScramblesN(selftestSeed, selftestRandom, selftest.RandomScrambleTokenCount)...)

	report := selftest.RunScrambles(s, scrambles)

	fmt.Println(titleStyle.Render("thistlecube selftest"))
	fmt.Println(statusStyle.Render(fmt.Sprintf("solved %d/%d scrambles", report.Solved, report.Total)))
	fmt.Println(statusStyle.Render(fmt.Sprintf("best %s  worst %s  average %s",
		formatDuration(report.Best), formatDuration(report.Worst), formatDuration(report.Average))))

	for _, r := range report.Results {
		if !r.Solved {
			fmt.Println(errorStyle.Render(fmt.Sprintf("FAILED: %q: %v", r.Scramble, r.Err)))
		}
	}

	if !selftestSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runRepo := storage.NewRunRepository(db)
	resultRepo := storage.NewScrambleResultRepository(db)

	runID, err := runRepo.Start("selftest", fmt.Sprintf("seed=%d", selftestSeed))
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	for _, r := range report.Results {
		var errText *string
		if r.Err != nil {
			s := r.Err.Error()
			errText = &s
		}
		if err := resultRepo.Create(storage.ScrambleResult{
			RunID:      runID,
			Scramble:   r.Scramble,
			Solved:     r.Solved,
			MoveCount:  r.MoveCount,
			DurationMs: r.Duration.Milliseconds(),
			Error:      errText,
		}); err != nil {
			return fmt.Errorf("failed to record scramble result: %w", err)
		}
	}

	summaryJSON, err := json.Marshal(struct {
		Solved, Total int
	}{report.Solved, report.Total})
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := runRepo.Finish(runID, "", string(summaryJSON)); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	fmt.Printf("\nSaved run %s\n", runID)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runRepo := storage.NewRunRepository(db)
	resultRepo := storage.NewScrambleResultRepository(db)

	runs, err := runRepo.List("", historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	fmt.Println(titleStyle.Render("thistlecube selftest history"))

	if len(runs) == 0 {
		fmt.Println(helpStyle.Render("No runs recorded yet. Use --save with 'thistlecube selftest' or 'gen-tables'."))
		return nil
	}

	for _, run := range runs {
		fmt.Println(statusStyle.Render(fmt.Sprintf("%s  %-10s  %s", run.RunID, run.Kind, run.StartedAt.Format(time.RFC3339))))
		if run.Kind == "selftest" {
			solved, total, err := resultRepo.CountSolved(run.RunID)
			if err != nil {
				continue
			}
			line := fmt.Sprintf("  solved %d/%d", solved, total)
			if solved < total {
				fmt.Println(errorStyle.Render(line))
			} else {
				fmt.Println(statusStyle.Render(line))
			}
		}
	}
	return nil
}
