package storage

import "fmt"

// TableSummary is one phase table's generation stats for a gen-tables run.
type TableSummary struct {
	ID       int64
	RunID    string
	Phase    int
	Reached  int
	MaxDepth int
	BuildMs  int64
}

// TableSummaryRepository provides CRUD operations for table summaries.
type TableSummaryRepository struct {
	db *DB
}

// NewTableSummaryRepository creates a new table summary repository.
func NewTableSummaryRepository(db *DB) *TableSummaryRepository {
	return &TableSummaryRepository{db: db}
}

// Create records one phase's generation summary against a run.
func (r *TableSummaryRepository) Create(s TableSummary) error {
	_, err := r.db.Exec(`
		INSERT INTO table_summaries (run_id, phase, reached, max_depth, build_ms)
		VALUES (?, ?, ?, ?, ?)
	`, s.RunID, s.Phase, s.Reached, s.MaxDepth, s.BuildMs)
	if err != nil {
		return fmt.Errorf("failed to create table summary: %w", err)
	}
	return nil
}

// ListByRun retrieves every phase summary recorded for a run, ordered by phase.
func (r *TableSummaryRepository) ListByRun(runID string) ([]TableSummary, error) {
	rows, err := r.db.Query(`
		SELECT id, run_id, phase, reached, max_depth, build_ms
		FROM table_summaries WHERE run_id = ? ORDER BY phase ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list table summaries: %w", err)
	}
	defer rows.Close()

	var summaries []TableSummary
	for rows.Next() {
		var s TableSummary
		if err := rows.Scan(&s.ID, &s.RunID, &s.Phase, &s.Reached, &s.MaxDepth, &s.BuildMs); err != nil {
			return nil, fmt.Errorf("failed to scan table summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
