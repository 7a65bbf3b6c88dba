package models

import "time"

// StageDetail is the unit count of one stage: which item is being worked on
// and how many of the stage's units are done.
type StageDetail struct {
	Current   string `json:"current,omitempty"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ProgressState is the externally visible snapshot of a catalog
// initialization run.
type ProgressState struct {
	Stage         string                 `json:"stage"`
	StageProgress float64                `json:"stage_progress"`
	Overall       float64                `json:"overall"`
	CurrentBrand  string                 `json:"current_brand,omitempty"`
	Message       string                 `json:"message,omitempty"`
	Details       map[string]StageDetail `json:"details,omitempty"`
	Errors        []string               `json:"errors,omitempty"`
	IsRunning     bool                   `json:"is_running"`
	StartedAt     *time.Time             `json:"started_at,omitempty"`
	FinishedAt    *time.Time             `json:"finished_at,omitempty"`
}
