// thistlecube is a command-line Thistlethwaite's algorithm cube solver.
package main

import (
	"github.com/rkessler/thistlecube/internal/cli"
)

func main() {
	cli.Execute()
}
