// Package process orchestrates a full run: pre-flight checks, channel
// enumeration, the sequential per-item download loop, and output
// organization.
package process

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"chanarr/internal/browser"
	"chanarr/internal/domain/consts"
	"chanarr/internal/downloads"
	"chanarr/internal/ffmpeg"
	"chanarr/internal/file"
	"chanarr/internal/history"
	"chanarr/internal/models"
	"chanarr/internal/parsing"
	"chanarr/internal/tags"
	"chanarr/internal/utils"
	"chanarr/internal/utils/logging"
)

// Run executes a validated download request end to end. Per-item failures
// are recorded and do not abort the run; the returned error is reserved for
// fatal conditions (missing tools, unreachable source, unusable output dir).
func Run(ctx context.Context, req *models.DownloadRequest) (*models.RunResult, error) {
	if err := downloads.CheckYTDLPAvailable(); err != nil {
		return nil, err
	}
	if err := ffmpeg.CheckAvailable(ctx); err != nil {
		return nil, err
	}

	db, err := history.InitDB(req.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.E("failed to close history database: %v", err)
		}
	}()
	store := history.GetStore(db.DB)

	elog, err := file.OpenErrorLog(req.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := elog.Close(); err != nil {
			logging.E("failed to close error log: %v", err)
		}
	}()
	if err := elog.SessionHeader(); err != nil {
		logging.W("failed to write error log header: %v", err)
	}

	cookies, err := loadSessionCookies(ctx, req)
	if err != nil {
		logging.W("Browser cookie load failed: %v", err)
	}

	entries, info, err := collectEntries(ctx, req, cookies)
	if err != nil {
		return nil, err
	}

	if info != nil {
		if err := file.WriteChannelInfo(req.OutputDir, info); err != nil {
			logging.W("failed to write channel info: %v", err)
		}
	}

	result := processEntries(ctx, req, store, elog, entries)

	if err := file.OrganizeOutputs(req); err != nil {
		logging.E("failed to organize outputs: %v", err)
	}

	if !req.SkipMetadata {
		if n := tags.TagAudioDir(filepath.Join(req.OutputDir, consts.AudioDirName)); n > 0 {
			logging.I("Wrote ID3 tags to %d audio files", n)
		}
	}

	if err := elog.Summary(result); err != nil {
		logging.W("failed to write error log summary: %v", err)
	}

	logging.I("Run finished: %d successful, %d failed, %d skipped",
		result.Successful, result.Failed, result.Skipped)

	return result, nil
}

// collectEntries resolves the source URL into the list of items to process.
// A channel URL is enumerated via yt-dlp; a single video URL becomes a
// one-entry list.
func collectEntries(ctx context.Context, req *models.DownloadRequest, cookies []*http.Cookie) ([]models.ChannelEntry, *models.ChannelInfo, error) {
	if !parsing.IsChannelURL(req.Source) {
		logging.I("Source %q is a single video", req.Source)
		return []models.ChannelEntry{{URL: req.Source}}, nil, nil
	}

	channelURL := parsing.NormalizeChannelURL(req.Source, req.ContentType)

	pf := preflightChannel(channelURL, cookies)

	info, err := downloads.FetchChannelMetadata(ctx, req, channelURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enumerate channel %q: %w", channelURL, err)
	}

	// Some channel tabs enumerate without a title; fall back to the scrape.
	if info.Title == "" && pf != nil {
		info.Title = pf.Title
	}

	return info.Entries, info, nil
}

// preflightChannel scrapes the channel page as an advisory reachability
// check before the real enumeration. Returns nil when the scrape failed.
func preflightChannel(channelURL string, cookies []*http.Cookie) *browser.Preflight {
	pf, err := browser.PreflightChannel(channelURL, cookies)
	if err != nil {
		logging.W("Channel pre-flight failed (continuing): %v", err)
		return nil
	}
	if pf.Title != "" {
		logging.I("Channel page reachable: %q", pf.Title)
	}
	return pf
}

// loadSessionCookies reads and exports browser cookies when requested.
func loadSessionCookies(ctx context.Context, req *models.DownloadRequest) ([]*http.Cookie, error) {
	if req.CookieSource == "" {
		return nil, nil
	}

	cookies, err := browser.LoadCookies(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	if path, err := browser.ExportCookies(req.OutputDir, cookies); err != nil {
		logging.W("Cookie export failed: %v", err)
	} else if path != "" {
		logging.D(1, "Exported cookies to %s", path)
	}

	return cookies, nil
}

// processEntries runs the sequential download loop.
func processEntries(
	ctx context.Context,
	req *models.DownloadRequest,
	store *history.Store,
	elog *file.ErrorLog,
	entries []models.ChannelEntry,
) *models.RunResult {
	result := &models.RunResult{}

	opts := downloads.DefaultOptions
	if req.Retries > 0 {
		opts.MaxRetries = req.Retries
	}

	limit := len(entries)
	if req.MaxDownloads > 0 && req.MaxDownloads < limit {
		limit = req.MaxDownloads
	}

	logging.I("Processing %d of %d items", limit, len(entries))

	for i := 0; i < limit; i++ {
		entry := entries[i]

		if ctx.Err() != nil {
			logging.W("Run cancelled, stopping after %d of %d items", i, limit)
			break
		}

		if !req.Redownload {
			grabbed, err := store.IsGrabbed(entry.URL)
			if err != nil {
				logging.W("History lookup failed for %q: %v", entry.URL, err)
			} else if grabbed {
				logging.I("Skipping %q, already downloaded", entry.URL)
				result.Add(models.ItemResult{
					URL:    entry.URL,
					Title:  entry.Title,
					Status: consts.DLStatusSkipped,
				})
				continue
			}
		}

		if i > 0 {
			if err := utils.StaggerWait(ctx, req.SleepInterval, req.MaxSleepInterval, entry.URL); err != nil {
				logging.W("%v", err)
				break
			}
		}

		item := downloads.NewDownload(ctx, req, entry, &opts).Execute()
		result.Add(item)

		if err := store.RecordResult(item); err != nil {
			logging.W("Failed to record result for %q: %v", item.URL, err)
		}

		if item.Status == consts.DLStatusFailed {
			reason := "unknown error"
			if item.Err != nil {
				reason = item.Err.Error()
			}
			if err := elog.ItemFailure(item.URL, reason); err != nil {
				logging.W("Failed to log failure for %q: %v", item.URL, err)
			}
		}
	}

	return result
}
