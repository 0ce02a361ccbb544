package solver

import (
	"os"
	"path/filepath"

	"github.com/rkessler/thistlecube/internal/table"
)

// Option configures Solver construction.
type Option func(*config)

type config struct {
	tableDir string
	format   table.Format
}

func defaultTableDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".thistlecube", "tables")
}

func defaultConfig() *config {
	return &config{
		tableDir: defaultTableDir(),
		format:   table.FormatU32,
	}
}

// WithTableDir sets the directory phase tables are loaded from and
// written to. Defaults to $HOME/.thistlecube/tables.
func WithTableDir(dir string) Option {
	return func(c *config) {
		c.tableDir = dir
	}
}

// WithTableFormat sets the on-disk coordinate width used when
// (re)generating tables. Defaults to table.FormatU32.
func WithTableFormat(f table.Format) Option {
	return func(c *config) {
		c.format = f
	}
}
