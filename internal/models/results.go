package models

import (
	"time"

	"chanarr/internal/domain/consts"
)

// ItemResult records the outcome of one item in a batch.
type ItemResult struct {
	URL       string
	Title     string
	Status    consts.DownloadStatus
	Filepaths []string
	Err       error
	Elapsed   time.Duration
}

// RunResult aggregates per-item outcomes for a whole run.
type RunResult struct {
	Items      []ItemResult
	Successful int
	Failed     int
	Skipped    int
}

// Add appends an item result and updates the counters.
func (r *RunResult) Add(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Status {
	case consts.DLStatusCompleted:
		r.Successful++
	case consts.DLStatusSkipped:
		r.Skipped++
	case consts.DLStatusFailed:
		r.Failed++
	}
}

// Succeeded reports whether the run should count as an overall success.
// A run with zero eligible items is a success, a run where every attempted
// item failed is not.
func (r *RunResult) Succeeded() bool {
	if r.Failed == 0 {
		return true
	}
	return r.Successful > 0
}
