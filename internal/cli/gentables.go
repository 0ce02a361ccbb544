package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkessler/thistlecube/internal/storage"
)

var genTablesCmd = &cobra.Command{
	Use:   "gen-tables",
	Short: "Generate the four Thistlethwaite phase tables",
	Long: `Runs a breadth-first search from the solved cube under each phase's
restricted move set and writes the resulting distance table to disk, so
that 'thistlecube solve' does not need to rebuild it on every run.`,
	RunE: runGenTables,
}

func init() {
	rootCmd.AddCommand(genTablesCmd)
}

func runGenTables(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runRepo := storage.NewRunRepository(db)
	summaryRepo := storage.NewTableSummaryRepository(db)

	runID, err := runRepo.Start("gen-tables", "")
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	fmt.Println("Generating phase tables...")
	summary, err := s.GenerateAllTables()
	if err != nil {
		return fmt.Errorf("failed to generate tables: %w", err)
	}

	for _, ps := range summary.Phases {
		buildMs := summary.Duration.Milliseconds() / int64(len(summary.Phases))
		if err := summaryRepo.Create(storage.TableSummary{
			RunID:    runID,
			Phase:    ps.Phase,
			Reached:  ps.Entries,
			MaxDepth: ps.MaxDepth,
			BuildMs:  buildMs,
		}); err != nil {
			return fmt.Errorf("failed to record table summary: %w", err)
		}
		fmt.Printf("  phase %d: %d states reached, max depth %d\n", ps.Phase, ps.Entries, ps.MaxDepth)
	}

	summaryJSON, err := json.Marshal(summary.Phases)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := runRepo.Finish(runID, tableFmt, string(summaryJSON)); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	fmt.Printf("Done in %s\n", formatDuration(summary.Duration))
	return nil
}
