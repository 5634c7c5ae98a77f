package models_test

import (
	"testing"

	"chanarr/internal/domain/consts"
	"chanarr/internal/models"
)

func TestRunResultCounters(t *testing.T) {
	r := &models.RunResult{}
	r.Add(models.ItemResult{URL: "a", Status: consts.DLStatusCompleted})
	r.Add(models.ItemResult{URL: "b", Status: consts.DLStatusFailed})
	r.Add(models.ItemResult{URL: "c", Status: consts.DLStatusSkipped})
	r.Add(models.ItemResult{URL: "d", Status: consts.DLStatusCompleted})

	if r.Successful != 2 || r.Failed != 1 || r.Skipped != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", r.Successful, r.Failed, r.Skipped)
	}
	if len(r.Items) != 4 {
		t.Errorf("expected 4 items, got %d", len(r.Items))
	}
}

func TestRunResultSucceeded(t *testing.T) {
	cases := []struct {
		name     string
		statuses []consts.DownloadStatus
		want     bool
	}{
		{"empty run", nil, true},
		{"all completed", []consts.DownloadStatus{consts.DLStatusCompleted, consts.DLStatusCompleted}, true},
		{"partial failure", []consts.DownloadStatus{consts.DLStatusCompleted, consts.DLStatusFailed}, true},
		{"all failed", []consts.DownloadStatus{consts.DLStatusFailed, consts.DLStatusFailed}, false},
		{"only skips", []consts.DownloadStatus{consts.DLStatusSkipped}, true},
		{"skips and failures", []consts.DownloadStatus{consts.DLStatusSkipped, consts.DLStatusFailed}, false},
	}

	for _, c := range cases {
		r := &models.RunResult{}
		for i, status := range c.statuses {
			r.Add(models.ItemResult{URL: string(rune('a' + i)), Status: status})
		}
		if got := r.Succeeded(); got != c.want {
			t.Errorf("%s: Succeeded() = %v, want %v", c.name, got, c.want)
		}
	}
}
