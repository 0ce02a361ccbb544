package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_initial.sql
var migrationInitial string

//go:embed migrations/002_scramble_results.sql
var migrationScrambleResults string

//go:embed migrations/003_table_summaries.sql
var migrationTableSummaries string

// schemaVersion is the schema this package knows how to build. Bump it
// and add a branch to applyMigrations when a new migration file lands.
const schemaVersion = 3

// schemaVersionOf reports the schema_version row currently recorded in
// db, or 0 if the table doesn't exist yet (a brand-new database file).
func schemaVersionOf(db *sql.DB) (int, error) {
	var tableExists int
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'
	`).Scan(&tableExists); err != nil {
		return 0, fmt.Errorf("storage: check for schema_version table: %w", err)
	}
	if tableExists == 0 {
		return 0, nil
	}

	var version int
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("storage: read schema_version: %w", err)
	}
	return version, nil
}

// applyMigrations steps a database from whatever version it's currently
// at up through schemaVersion, one named migration at a time. Each
// branch is idempotent against a database already past it.
func applyMigrations(db *sql.DB) error {
	version, err := schemaVersionOf(db)
	if err != nil {
		return err
	}

	if version < 1 {
		if _, err := db.Exec(migrationInitial); err != nil {
			return fmt.Errorf("storage: apply initial schema: %w", err)
		}
		version = 1
	}
	if version < 2 {
		if _, err := db.Exec(migrationScrambleResults); err != nil {
			return fmt.Errorf("storage: apply scramble_results schema: %w", err)
		}
		version = 2
	}
	if version < 3 {
		if _, err := db.Exec(migrationTableSummaries); err != nil {
			return fmt.Errorf("storage: apply table_summaries schema: %w", err)
		}
		version = 3
	}

	if version != schemaVersion {
		return fmt.Errorf("storage: reached version %d, want %d", version, schemaVersion)
	}
	return nil
}
