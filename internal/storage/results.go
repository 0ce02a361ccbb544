package storage

import (
	"fmt"
)

// ScrambleResult is one scramble solved during a selftest run.
type ScrambleResult struct {
	ID         int64
	RunID      string
	Scramble   string
	Solved     bool
	MoveCount  int
	DurationMs int64
	Error      *string
}

// ScrambleResultRepository provides CRUD operations for scramble results.
type ScrambleResultRepository struct {
	db *DB
}

// NewScrambleResultRepository creates a new scramble result repository.
func NewScrambleResultRepository(db *DB) *ScrambleResultRepository {
	return &ScrambleResultRepository{db: db}
}

// Create records one scramble result against a run.
func (r *ScrambleResultRepository) Create(res ScrambleResult) error {
	_, err := r.db.Exec(`
		INSERT INTO scramble_results (run_id, scramble, solved, move_count, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`, res.RunID, res.Scramble, boolToInt(res.Solved), res.MoveCount, res.DurationMs, res.Error)
	if err != nil {
		return fmt.Errorf("failed to create scramble result: %w", err)
	}
	return nil
}

// ListByRun retrieves every scramble result recorded for a run, in
// insertion order.
func (r *ScrambleResultRepository) ListByRun(runID string) ([]ScrambleResult, error) {
	rows, err := r.db.Query(`
		SELECT id, run_id, scramble, solved, move_count, duration_ms, error
		FROM scramble_results WHERE run_id = ? ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scramble results: %w", err)
	}
	defer rows.Close()

	var results []ScrambleResult
	for rows.Next() {
		var res ScrambleResult
		var solved int
		if err := rows.Scan(&res.ID, &res.RunID, &res.Scramble, &solved, &res.MoveCount, &res.DurationMs, &res.Error); err != nil {
			return nil, fmt.Errorf("failed to scan scramble result: %w", err)
		}
		res.Solved = solved != 0
		results = append(results, res)
	}
	return results, nil
}

// CountSolved returns how many of a run's scramble results solved, and
// how many were recorded in total.
func (r *ScrambleResultRepository) CountSolved(runID string) (solved, total int, err error) {
	err = r.db.QueryRow(`
		SELECT COALESCE(SUM(solved), 0), COUNT(*)
		FROM scramble_results WHERE run_id = ?
	`, runID).Scan(&solved, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count scramble results: %w", err)
	}
	return solved, total, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
