package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one invocation of gen-tables or selftest.
type Run struct {
	RunID       string
	Kind        string
	StartedAt   time.Time
	FinishedAt  *time.Time
	TableFormat *string
	SummaryJSON *string
	Notes       *string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Start records the start of a new run and returns its ID.
func (r *RunRepository) Start(kind, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, kind, started_at, notes)
		VALUES (?, ?, ?, ?)
	`, id, kind, startedAt.Format(time.RFC3339), notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// Finish marks a run as complete, optionally recording the table format
// used (for gen-tables runs) and a JSON summary blob.
func (r *RunRepository) Finish(runID, tableFormat, summaryJSON string) error {
	finishedAt := time.Now().UTC()

	var formatPtr, summaryPtr *string
	if tableFormat != "" {
		formatPtr = &tableFormat
	}
	if summaryJSON != "" {
		summaryPtr = &summaryJSON
	}

	_, err := r.db.Exec(`
		UPDATE runs SET finished_at = ?, table_format = ?, summary_json = ?
		WHERE run_id = ?
	`, finishedAt.Format(time.RFC3339), formatPtr, summaryPtr, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (r *RunRepository) Get(runID string) (*Run, error) {
	var run Run
	var startedAtStr string
	var finishedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT run_id, kind, started_at, finished_at, table_format, summary_json, notes
		FROM runs WHERE run_id = ?
	`, runID).Scan(&run.RunID, &run.Kind, &startedAtStr, &finishedAtStr, &run.TableFormat, &run.SummaryJSON, &run.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if finishedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, finishedAtStr.String)
		run.FinishedAt = &t
	}
	return &run, nil
}

// List retrieves the most recent runs, optionally filtered by kind.
// An empty kind matches every run.
func (r *RunRepository) List(kind string, limit int) ([]Run, error) {
	var rows *sql.Rows
	var err error
	if kind == "" {
		rows, err = r.db.Query(`
			SELECT run_id, kind, started_at, finished_at, table_format, summary_json, notes
			FROM runs ORDER BY started_at DESC LIMIT ?
		`, limit)
	} else {
		rows, err = r.db.Query(`
			SELECT run_id, kind, started_at, finished_at, table_format, summary_json, notes
			FROM runs WHERE kind = ? ORDER BY started_at DESC LIMIT ?
		`, kind, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAtStr string
		var finishedAtStr sql.NullString

		if err := rows.Scan(&run.RunID, &run.Kind, &startedAtStr, &finishedAtStr, &run.TableFormat, &run.SummaryJSON, &run.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if finishedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, finishedAtStr.String)
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// Delete deletes a run and all of its scramble results and table
// summaries (cascading).
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
