// Package thistlecube solves a scrambled 3x3 Rubik's cube using
// Thistlethwaite's four-phase group-reduction algorithm.
//
// # Quick Start
//
// Solve a scramble given as turn notation:
//
//	s, err := thistlecube.NewSolver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := s.GenerateAllTables(); err != nil {
//	    log.Fatal(err)
//	}
//
//	scramble, err := thistlecube.ParseTurns("R U R' U' R' F R2 U' R' U' R U R' F'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state := thistlecube.NewSolved()
//	state.ApplyTurns(scramble)
//
//	solution, err := s.Solve(state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(thistlecube.FormatTurns(solution))
//
// # Phase Tables
//
// NewSolver loads its four phase tables from disk (see WithTableDir); a
// missing or corrupt table does not make NewSolver fail, but Solve
// returns ErrUnsolvableInput until the tables exist. Call
// GenerateAllTables to build them.
//
// # Predefined Turns
//
// The package provides predefined turns for convenience: R, RPrime, R2,
// and similarly for L, U, D, F, B.
package thistlecube

import (
	"github.com/rkessler/thistlecube/internal/cube"
	"github.com/rkessler/thistlecube/internal/solver"
	"github.com/rkessler/thistlecube/internal/table"
)

// State is a cubelet-level representation of a 3x3 cube's scramble state.
type State = cube.State

// Turn is one face turn: a face plus how far to rotate it.
type Turn = cube.Turn

// Solver loads phase tables and solves states against them.
type Solver = solver.Solver

// Option configures a Solver.
type Option = solver.Option

// TableFormat selects the on-disk integer width used to encode phase
// table coordinates.
type TableFormat = table.Format

const (
	FormatU32 = table.FormatU32
	FormatU64 = table.FormatU64
)

var (
	R, RPrime, R2 = cube.R, cube.RPrime, cube.R2
	L, LPrime, L2 = cube.L, cube.LPrime, cube.L2
	U, UPrime, U2 = cube.U, cube.UPrime, cube.U2
	D, DPrime, D2 = cube.D, cube.DPrime, cube.D2
	F, FPrime, F2 = cube.F, cube.FPrime, cube.F2
	B, BPrime, B2 = cube.B, cube.BPrime, cube.B2
)

// ErrUnsolvableInput is returned by Solve when a phase's search cannot
// reach that phase's goal, or when the four phases complete without
// reaching the solved state, which only happens for a missing,
// internally inconsistent or incomplete table.
var ErrUnsolvableInput = solver.ErrUnsolvableInput

// ErrInvalidToken is returned by ParseTurn and ParseTurns for a token
// outside the eighteen-token turn alphabet.
var ErrInvalidToken = cube.ErrInvalidToken

// NewSolved returns a cube in the solved state.
func NewSolved() State {
	return cube.NewSolved()
}

// ParseTurn parses a single turn token such as "R", "R'", or "R2".
func ParseTurn(token string) (Turn, error) {
	return cube.ParseTurn(token)
}

// ParseTurns parses a whitespace-separated sequence of turn tokens.
func ParseTurns(s string) ([]Turn, error) {
	return cube.ParseTurns(s)
}

// FormatTurns renders a turn sequence back to whitespace-separated notation.
func FormatTurns(turns []Turn) string {
	return cube.FormatTurns(turns)
}

// Simplify collapses adjacent same-face turns in a sequence, cancelling
// or merging them where possible.
func Simplify(turns []Turn) []Turn {
	return cube.Simplify(turns)
}

// NewSolver constructs a Solver, loading phase tables from the
// configured directory. See WithTableDir and WithTableFormat.
func NewSolver(opts ...Option) (*Solver, error) {
	return solver.NewSolver(opts...)
}

// WithTableDir overrides the directory a Solver loads and writes phase
// tables from. The default is $HOME/.thistlecube/tables.
func WithTableDir(dir string) Option {
	return solver.WithTableDir(dir)
}

// WithTableFormat overrides the integer width a Solver uses when writing
// phase tables with GenerateAllTables.
func WithTableFormat(f TableFormat) Option {
	return solver.WithTableFormat(f)
}
