// Package storage provides SQLite-backed persistence for gen-tables and
// selftest runs, the scramble results of selftest runs and the per-phase
// table summaries of gen-tables runs, versioned by the schema_version
// migration history in schema.go.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection opened against a specific file.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns ~/.thistlecube/thistlecube.db, creating the
// containing directory if it doesn't already exist.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".thistlecube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create %s: %w", dir, err)
	}

	return filepath.Join(dir, "thistlecube.db"), nil
}

// Open opens (or creates) the SQLite database at dbPath and brings its
// schema up to date. Pragma setup and migrations both happen inside
// MigrateUp, so a freshly returned DB is always ready to use.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("storage: create directory for %s: %w", dbPath, err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dbPath, err)
	}

	db := &DB{DB: conn, path: dbPath}
	if err := db.MigrateUp(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultDBPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the file path this DB was opened against.
func (db *DB) Path() string {
	return db.path
}

// MigrateUp puts the connection's pragmas in the shape every repository
// in this package relies on (enforced foreign keys, WAL journaling),
// then runs whatever migrations haven't been applied yet. Safe to call
// on an already-current database.
func (db *DB) MigrateUp() error {
	pragmas := [...]string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("storage: set %q: %w", p, err)
		}
	}
	return applyMigrations(db.DB)
}

// CurrentVersion reports the schema version the database is currently
// at, or 0 for a brand-new file that has never been migrated.
func (db *DB) CurrentVersion() (int, error) {
	return schemaVersionOf(db.DB)
}

// Transaction runs fn inside a transaction, committing on a nil return
// and rolling back otherwise.
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("storage: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit transaction: %w", err)
	}
	return nil
}
