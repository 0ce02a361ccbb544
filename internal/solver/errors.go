package solver

import "errors"

// ErrUnsolvableInput is returned by Solve when a phase's search cannot
// reach that phase's goal from the current state. This should not
// happen for any state reachable from solved by apply_turn, which is
// the only kind of input Solve is ever asked to handle — it signals a
// bug in the coordinate or table machinery, not a bad scramble, and the
// self-test harness exists precisely to catch it before users do.
var ErrUnsolvableInput = errors.New("solver: input not solvable with loaded tables")
