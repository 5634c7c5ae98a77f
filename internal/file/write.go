package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chanarr/internal/domain/consts"
	"chanarr/internal/models"
)

// ErrorLog is the append-only per-item failure record inside the output
// directory. One line per failed item, with timestamp and reason.
type ErrorLog struct {
	path string
	f    *os.File
}

// OpenErrorLog opens (or creates) error_log.txt in the output directory.
func OpenErrorLog(outputDir string) (*ErrorLog, error) {
	path := filepath.Join(outputDir, consts.ErrorLogFile)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log %q: %w", path, err)
	}

	return &ErrorLog{path: path, f: f}, nil
}

// Path returns the error log's location.
func (e *ErrorLog) Path() string { return e.path }

// SessionHeader writes the session start banner.
func (e *ErrorLog) SessionHeader() error {
	_, err := fmt.Fprintf(e.f, "\n%s\nSession started: %s\n%s\n",
		divider, time.Now().Format(time.RFC1123Z), divider)
	return err
}

// ItemFailure appends one timestamped line for a failed item.
func (e *ErrorLog) ItemFailure(url, reason string) error {
	_, err := fmt.Fprintf(e.f, "[%s] ERROR: %s | URL: %s\n",
		time.Now().Format("2006-01-02 15:04:05"), reason, url)
	return err
}

// Summary appends the session summary counts.
func (e *ErrorLog) Summary(result *models.RunResult) error {
	_, err := fmt.Fprintf(e.f,
		"\nSession summary:\nSuccessfully processed: %d\nFailed: %d\nSkipped: %d\nSession ended: %s\n",
		result.Successful, result.Failed, result.Skipped, time.Now().Format(time.RFC1123Z))
	return err
}

// Close closes the underlying file.
func (e *ErrorLog) Close() error { return e.f.Close() }

const divider = "=================================================="

// WriteChannelInfo writes the trimmed channel summary to channel_info.json.
func WriteChannelInfo(outputDir string, info *models.ChannelInfo) error {
	path := filepath.Join(outputDir, consts.ChannelInfoFile)

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal channel info: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
