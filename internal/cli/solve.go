package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkessler/thistlecube/internal/cube"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Solve a scrambled cube",
	Long: `Solve takes a scramble as whitespace-separated turn notation (e.g.
"R U R' U' R' F R2 U' R' U' R U R' F'") and prints the solution in the
same notation.

Phase tables must already exist in the table directory; run
'thistlecube gen-tables' first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	scrambleText := strings.Join(args, " ")
	scramble, err := cube.ParseTurns(scrambleText)
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	s, err := newSolver()
	if err != nil {
		return err
	}

	state := cube.NewSolved()
	state.ApplyTurns(scramble)

	solution, err := s.Solve(state)
	if err != nil {
		return fmt.Errorf("could not solve scramble: %w", err)
	}

	fmt.Println(cube.FormatTurns(solution))
	if verbose {
		fmt.Printf("%d moves\n", len(solution))
	}
	return nil
}
