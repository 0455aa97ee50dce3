package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CreateRun inserts a new run and returns its row ID and generated
// run identifier.
func (db *DB) CreateRun(version string) (int64, string, error) {
	runID := uuid.NewString()
	result, err := db.conn.Exec(
		"INSERT INTO runs (run_id, taken_at, version) VALUES (?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339), version,
	)
	if err != nil {
		return 0, "", err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, "", err
	}
	return id, runID, nil
}

// GetLatestRun returns the most recent run, or nil if none exist.
func (db *DB) GetLatestRun() (*Run, error) {
	row := db.conn.QueryRow("SELECT id, run_id, taken_at, version FROM runs ORDER BY id DESC LIMIT 1")
	return scanRun(row)
}

// GetRun returns a run by row ID.
func (db *DB) GetRun(id int64) (*Run, error) {
	row := db.conn.QueryRow("SELECT id, run_id, taken_at, version FROM runs WHERE id = ?", id)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var takenAt string
	err := row.Scan(&r.ID, &r.RunID, &takenAt, &r.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &r, nil
}

// ListRuns returns the most recent runs, newest first, capped at limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, taken_at, version FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var takenAt string
		if err := rows.Scan(&r.ID, &r.RunID, &takenAt, &r.Version); err != nil {
			return nil, err
		}
		r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// InsertDimensionScore inserts one aggregated dimension value for a run.
func (db *DB) InsertDimensionScore(runID int64, model, dimension string, score float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO dimension_scores (run_id, model, dimension, score) VALUES (?, ?, ?, ?)",
		runID, model, dimension, score,
	)
	return err
}

// InsertInsight inserts one relationship narrative for a run.
func (db *DB) InsertInsight(runID int64, context, narrative string) error {
	_, err := db.conn.Exec(
		"INSERT INTO run_insights (run_id, context, narrative) VALUES (?, ?, ?)",
		runID, context, narrative,
	)
	return err
}

// GetDimensionScores returns a run's dimension scores in insertion order.
func (db *DB) GetDimensionScores(runID int64) ([]DimensionScore, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, model, dimension, score FROM dimension_scores WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scores []DimensionScore
	for rows.Next() {
		var ds DimensionScore
		if err := rows.Scan(&ds.ID, &ds.RunID, &ds.Model, &ds.Dimension, &ds.Score); err != nil {
			return nil, err
		}
		scores = append(scores, ds)
	}
	return scores, rows.Err()
}

// GetInsights returns a run's narratives in insertion order.
func (db *DB) GetInsights(runID int64) ([]RunInsight, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, context, narrative FROM run_insights WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var insights []RunInsight
	for rows.Next() {
		var ri RunInsight
		if err := rows.Scan(&ri.ID, &ri.RunID, &ri.Context, &ri.Narrative); err != nil {
			return nil, err
		}
		insights = append(insights, ri)
	}
	return insights, rows.Err()
}
