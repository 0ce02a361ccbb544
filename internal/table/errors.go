package table

import "errors"

// Sentinel errors for the table package.
var (
	// ErrTableFileMissing is returned when a phase table file does not
	// exist on disk. Callers degrade to an empty table rather than
	// failing outright — see the solver package.
	ErrTableFileMissing = errors.New("table: file missing")

	// ErrTableFileCorrupt is returned when a phase table file exists but
	// cannot be parsed as the binary format Write produces.
	ErrTableFileCorrupt = errors.New("table: file corrupt")

	// ErrUnreachableCoordinate is returned when a lookup misses entirely
	// — the coordinate has no recorded depth in a table that should be
	// dense over its declared range. This indicates a coordinate
	// function and a table generator have drifted out of sync.
	ErrUnreachableCoordinate = errors.New("table: unreachable coordinate")
)
