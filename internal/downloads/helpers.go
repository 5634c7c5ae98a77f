package downloads

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"chanarr/internal/domain/command"
	"chanarr/internal/models"
)

// CheckYTDLPAvailable verifies the yt-dlp binary is on PATH.
func CheckYTDLPAvailable() error {
	if _, err := exec.LookPath(command.YTDLP); err != nil {
		return &models.PreconditionError{Tool: command.YTDLP, Err: err}
	}
	return nil
}

// waitForFile waits until the file exists and its size has settled.
func waitForFile(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	var lastSize int64 = -1
	for time.Now().Before(deadline) {
		info, err := os.Stat(path)
		if err == nil {
			if info.Size() == lastSize {
				return nil
			}
			lastSize = info.Size()
		}
		time.Sleep(250 * time.Millisecond)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file %q did not appear within %v: %w", path, timeout, err)
	}
	return nil
}
