package downloads

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"chanarr/internal/command/builder"
	"chanarr/internal/domain/command"
	"chanarr/internal/domain/consts"
	"chanarr/internal/downloads/downloaders"
	"chanarr/internal/models"
	"chanarr/internal/utils/logging"
)

// Execute performs the download with retries and returns the item result.
// Per-item failures are returned inside the result, never panicked or fatal.
func (d *Download) Execute() models.ItemResult {
	result := models.ItemResult{
		URL:    d.Entry.URL,
		Title:  d.Entry.Title,
		Status: consts.DLStatusPending,
	}

	start := time.Now()
	defer func() { result.Elapsed = time.Since(start) }()

	var lastErr error
	for attempt := 1; attempt <= d.Options.MaxRetries; attempt++ {
		logging.I("Starting download attempt %d/%d for URL: %s",
			attempt, d.Options.MaxRetries, d.Entry.URL)

		files, skipped, err := d.executeAttempt()
		if err == nil {
			if skipped {
				logging.I("Skipped (filtered) URL: %s", d.Entry.URL)
				result.Status = consts.DLStatusSkipped
				return result
			}
			logging.S("Successfully completed download for URL: %s", d.Entry.URL)
			result.Status = consts.DLStatusCompleted
			result.Filepaths = files
			return result
		}

		lastErr = err
		logging.E("Download attempt %d failed: %v", attempt, err)

		// Fatal invocation errors will not improve with retries
		var toolErr *models.ToolInvocationError
		if errors.As(err, &toolErr) {
			break
		}

		if attempt < d.Options.MaxRetries {
			select {
			case <-time.After(d.Options.RetryInterval):
			case <-d.Context.Done():
				result.Status = consts.DLStatusFailed
				result.Err = d.Context.Err()
				return result
			}
		}
	}

	result.Status = consts.DLStatusFailed
	result.Err = lastErr
	return result
}

// executeAttempt performs a single yt-dlp invocation.
func (d *Download) executeAttempt() (files []string, skipped bool, err error) {
	args := builder.DownloadArgs(d.Request, d.Entry.URL)
	cmd := exec.CommandContext(d.Context, command.YTDLP, args...)
	logging.D(1, "Built download command for URL %q:\n%v", d.Entry.URL, cmd.String())

	// Set process group to allow killing child processes (e.g. ffmpeg)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, false, fmt.Errorf("stdout pipe error: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, false, fmt.Errorf("stderr pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, false, &models.ToolInvocationError{Tool: command.YTDLP, Err: err}
	}

	scan := newOutputScan()
	prog := newItemProgress(d.Entry.Title)
	defer prog.finish()

	scanner := bufio.NewScanner(io.MultiReader(stdout, stderr))
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			logging.D(4, "yt-dlp output for %q: %q", d.Entry.URL, line)
		}
		if gotLine, pct := downloaders.YtdlpOutputParser(line); gotLine {
			prog.update(pct)
		}
		scan.consume(line)

		select {
		case <-d.Context.Done():
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
			_ = cmd.Wait()
			return nil, false, d.Context.Err()
		default:
		}
	}

	if waitErr := cmd.Wait(); waitErr != nil {
		return nil, false, scan.classify(d.Entry.URL, waitErr)
	}

	if len(scan.files) == 0 {
		if scan.filtered {
			return nil, true, nil
		}
		// yt-dlp exited clean with no output file; usually an extraction
		// problem it swallowed.
		return nil, false, scan.classify(d.Entry.URL, errors.New("no output file produced"))
	}

	for _, f := range scan.files {
		if err := waitForFile(f, 10*time.Second); err != nil {
			return nil, false, err
		}
	}

	return scan.files, false, nil
}

// outputScan accumulates relevant yt-dlp output lines.
type outputScan struct {
	files     []string
	errorLine string
	filtered  bool
	convert   bool
}

func newOutputScan() *outputScan {
	return &outputScan{}
}

// consume inspects a single output line.
func (s *outputScan) consume(line string) {
	// Final filepaths arrive via '--print after_move:filepath'
	if strings.HasPrefix(line, "/") && isMediaFile(line) {
		s.files = append(s.files, line)
		return
	}

	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, "not in range") ||
		strings.Contains(lower, "does not pass filter"):
		s.filtered = true

	case strings.Contains(lower, "error"):
		if s.errorLine == "" {
			s.errorLine = strings.TrimSpace(line)
		}
		if strings.Contains(lower, "postprocess") ||
			strings.Contains(lower, "ffmpeg") ||
			strings.Contains(lower, "audio conversion") {
			s.convert = true
		}
	}
}

// classify turns a failed invocation into the proper per-item error type.
func (s *outputScan) classify(url string, waitErr error) error {
	reason := s.errorLine
	if reason == "" {
		reason = waitErr.Error()
	}

	if s.convert {
		return &models.ItemConvertError{URL: url, Reason: reason, Err: waitErr}
	}
	return &models.ItemFetchError{URL: url, Reason: reason, Err: waitErr}
}

// isMediaFile reports whether the path carries a known media extension.
func isMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range consts.AllVidExtensions {
		if ext == valid {
			return true
		}
	}
	for _, valid := range consts.AllAudioExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}
