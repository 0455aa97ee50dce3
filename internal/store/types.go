// Package store provides SQLite persistence for survey run history.
package store

import "time"

// Run is one saved survey run.
type Run struct {
	ID      int64     `json:"id"`
	RunID   string    `json:"run_id"`
	TakenAt time.Time `json:"taken_at"`
	Version string    `json:"version"`
}

// DimensionScore is one aggregated dimension value within a run.
type DimensionScore struct {
	ID        int64   `json:"id"`
	RunID     int64   `json:"run_id"`
	Model     string  `json:"model"`
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
}

// RunInsight is one relationship narrative within a run.
type RunInsight struct {
	ID        int64  `json:"id"`
	RunID     int64  `json:"run_id"`
	Context   string `json:"context"`
	Narrative string `json:"narrative"`
}
