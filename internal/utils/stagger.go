// Package utils holds small shared helpers.
package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"chanarr/internal/utils/logging"
)

// StaggerWait sleeps a random duration between minSeconds and maxSeconds
// before the next item, spacing out requests to the source. A zero or
// inverted range returns immediately.
func StaggerWait(ctx context.Context, minSeconds, maxSeconds int, videoURL string) error {
	if maxSeconds <= 0 || maxSeconds < minSeconds {
		return nil
	}

	span := maxSeconds - minSeconds + 1
	stagger := time.Duration(minSeconds+rand.Intn(span)) * time.Second
	if stagger <= 0 {
		return nil
	}

	logging.I("Sleeping %v before processing video %q", stagger.Round(time.Second), videoURL)

	timer := time.NewTimer(stagger)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context cancelled during stagger wait for video %q", videoURL)
	}
}
