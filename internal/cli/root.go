// Package cli implements the thistlecube command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkessler/thistlecube/internal/solver"
	"github.com/rkessler/thistlecube/internal/storage"
	"github.com/rkessler/thistlecube/internal/table"
)

const version = "0.1.0"

var (
	dbPath   string
	tableDir string
	tableFmt string
	verbose  bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "thistlecube",
	Short: "Thistlethwaite's algorithm Rubik's cube solver",
	Long: `thistlecube solves a scrambled 3x3 Rubik's cube using Thistlethwaite's
four-phase group-reduction algorithm.

Generate the phase lookup tables once, then solve as many scrambles as you
like against them:

  thistlecube gen-tables
  thistlecube solve "R U R' U' R' F R2 U' R' U' R U R' F'"`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.thistlecube/thistlecube.db)")
	rootCmd.PersistentFlags().StringVar(&tableDir, "dir", "", "Phase table directory (default: ~/.thistlecube/tables)")
	rootCmd.PersistentFlags().StringVar(&tableFmt, "table-format", "u32", "Phase table coordinate width: u32 or u64")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func openDB() (*storage.DB, error) {
	if dbPath == "" {
		return storage.OpenDefault()
	}
	return storage.Open(dbPath)
}

func tableFormat() (table.Format, error) {
	switch tableFmt {
	case "u32":
		return table.FormatU32, nil
	case "u64":
		return table.FormatU64, nil
	default:
		return 0, fmt.Errorf("unknown table format %q (want u32 or u64)", tableFmt)
	}
}

func newSolver() (*solver.Solver, error) {
	var opts []solver.Option
	if tableDir != "" {
		opts = append(opts, solver.WithTableDir(tableDir))
	}
	format, err := tableFormat()
	if err != nil {
		return nil, err
	}
	opts = append(opts, solver.WithTableFormat(format))
	return solver.NewSolver(opts...)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
