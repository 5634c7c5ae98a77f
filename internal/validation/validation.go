// Package validation handles fail-fast validation of user input.
package validation

import (
	"fmt"
	"os"

	"chanarr/internal/domain/consts"
	"chanarr/internal/models"
	"chanarr/internal/parsing"
)

// ValidateRequest checks every field of the request before any network
// activity. The first violation found is returned as a *models.ValidationError.
func ValidateRequest(req *models.DownloadRequest) error {
	if err := ValidateSource(req.Source); err != nil {
		return err
	}

	if !consts.ValidContentTypes[req.ContentType] {
		return &models.ValidationError{
			Field:  "video-types",
			Reason: fmt.Sprintf("%q is not one of all, videos, shorts, streams", req.ContentType),
		}
	}

	if !consts.ValidAudioFormats[req.AudioFormat] {
		return &models.ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("%q is not one of mp3, wav, aac, flac", req.AudioFormat),
		}
	}

	if err := ValidateSleepRange(req.SleepInterval, req.MaxSleepInterval); err != nil {
		return err
	}

	if err := ValidateDateRange(req.DateAfter, req.DateBefore); err != nil {
		return err
	}

	if req.MaxDownloads < 0 {
		return &models.ValidationError{
			Field:  "max-downloads",
			Reason: "must be a positive integer",
		}
	}

	if req.RateLimit < 0 {
		return &models.ValidationError{
			Field:  "rate-limit",
			Reason: "must not be negative",
		}
	}

	if req.Retries < 0 {
		return &models.ValidationError{
			Field:  "dl-retries",
			Reason: "must not be negative",
		}
	}

	if req.OutputDir == "" {
		return &models.ValidationError{
			Field:  "output",
			Reason: "output directory must not be empty",
		}
	}

	return nil
}

// ValidateSource checks the source URL points at a supported host.
// The host check lives in parsing; this wraps its result into the error model.
func ValidateSource(source string) error {
	if source == "" {
		return &models.ValidationError{Field: "source", Reason: "source URL is required"}
	}
	if !parsing.IsSupportedHost(source) {
		return &models.ValidationError{
			Field:  "source",
			Reason: fmt.Sprintf("%q is not a YouTube URL", source),
		}
	}
	return nil
}

// ValidateSleepRange rejects negative intervals and inverted ranges.
func ValidateSleepRange(sleep, maxSleep int) error {
	if sleep < 0 || maxSleep < 0 {
		return &models.ValidationError{
			Field:  "sleep-interval",
			Reason: "sleep intervals must not be negative",
		}
	}
	if sleep > 0 && maxSleep > 0 && sleep > maxSleep {
		return &models.ValidationError{
			Field:  "sleep-interval",
			Reason: fmt.Sprintf("sleep interval %d exceeds max sleep interval %d", sleep, maxSleep),
		}
	}
	return nil
}

// ValidateDateRange rejects inverted yyyymmdd date ranges.
func ValidateDateRange(after, before string) error {
	if after == "" || before == "" {
		return nil
	}
	// yyyymmdd strings order correctly as plain strings.
	if after > before {
		return &models.ValidationError{
			Field:  "date-after",
			Reason: fmt.Sprintf("date-after %s is later than date-before %s", after, before),
		}
	}
	return nil
}

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q exists but is not a directory", dir)
		}
		return info, nil
	}

	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}

	if !createIfNotFound {
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	info, err = os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat created directory %q: %w", dir, err)
	}
	return info, nil
}

// ValidateLoggingLevel clamps the debug level into the supported range.
func ValidateLoggingLevel(l int) int {
	return min(max(l, 0), 5)
}
