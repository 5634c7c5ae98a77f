// Package downloads handles the yt-dlp invocations and their output.
package downloads

import (
	"context"
	"time"

	"chanarr/internal/models"
)

// Options holds configuration for download operations.
type Options struct {
	MaxRetries    int
	RetryInterval time.Duration
}

// DefaultOptions provides sensible defaults.
var DefaultOptions = Options{
	MaxRetries:    3,
	RetryInterval: 5 * time.Second,
}

// Download encapsulates a single-item download operation.
type Download struct {
	Request *models.DownloadRequest
	Entry   models.ChannelEntry
	Options Options
	Context context.Context
}

// NewDownload creates a download operation for one channel entry.
func NewDownload(ctx context.Context, req *models.DownloadRequest, entry models.ChannelEntry, opts *Options) *Download {
	dl := &Download{
		Request: req,
		Entry:   entry,
		Context: ctx,
	}

	if opts != nil {
		dl.Options = *opts
	} else {
		dl.Options = DefaultOptions
	}

	return dl
}
