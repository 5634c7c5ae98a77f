// Package builder constructs argument lists for the wrapped external tools.
package builder

import (
	"strconv"

	"chanarr/internal/domain/command"
	"chanarr/internal/domain/consts"
	"chanarr/internal/models"
)

// DownloadArgs builds the yt-dlp argument list for downloading a single item.
//
// The mapping is pure and deterministic: every set request field maps to
// exactly one yt-dlp option, unset optional fields are omitted entirely.
func DownloadArgs(req *models.DownloadRequest, targetURL string) []string {
	args := make([]string, 0, 32)

	// Output location and filename template
	args = append(args, command.Paths, req.OutputDir)
	args = append(args, command.Output, command.FilenameSyntax)

	// Print final filepath to console upon completion
	args = append(args, command.Print, command.AfterMove)

	// Audio extraction (FFmpeg post-processing)
	args = append(args,
		command.ExtractAudio,
		command.AudioFormat, req.AudioFormat,
		command.AudioQuality, consts.DefaultAudioQuality)

	// Format selection: audio-only avoids fetching a full A/V stream
	if req.AudioOnly {
		args = append(args, command.Format, command.FormatBestAudio)
	} else if req.Quality != "" {
		args = append(args, command.Format, req.Quality)
	}

	// Retain the source container after extraction
	if req.KeepVideo {
		args = append(args, command.KeepVideo)
	}

	// Throttling
	if req.RateLimit > 0 {
		args = append(args, command.LimitRate, strconv.FormatInt(req.RateLimit, 10))
	}
	if req.SleepInterval > 0 {
		args = append(args, command.SleepInterval, strconv.Itoa(req.SleepInterval))
	}
	if req.MaxSleepInterval > 0 {
		args = append(args, command.MaxSleepInterval, strconv.Itoa(req.MaxSleepInterval))
	}

	// Publish-date filters
	if req.DateAfter != "" {
		args = append(args, command.DateAfter, req.DateAfter)
	}
	if req.DateBefore != "" {
		args = append(args, command.DateBefore, req.DateBefore)
	}

	// Metadata and subtitles
	if !req.SkipMetadata {
		args = append(args, command.WriteInfoJSON)
	}
	if !req.SkipSubs {
		args = append(args,
			command.WriteSubs,
			command.WriteAutoSubs,
			command.SubLangs, command.SubLangsEN)
	}

	// Retry download X times
	if req.Retries > 0 {
		args = append(args, command.Retries, strconv.Itoa(req.Retries))
	}

	// Browser cookies
	if req.CookieSource != "" {
		args = append(args, command.CookiesFromBrowser, req.CookieSource)
	}

	// Item URLs must never expand into playlists
	args = append(args, command.NoPlaylist)

	// Add target URL [ MUST GO LAST !! ]
	args = append(args, targetURL)

	return args
}

// EnumerateArgs builds the yt-dlp argument list for flat-playlist channel
// enumeration. No media is fetched.
func EnumerateArgs(req *models.DownloadRequest, channelURL string) []string {
	args := make([]string, 0, 16)

	args = append(args, command.OutputJSON, command.FlatPlaylist, command.SkipVideo)

	if req.MaxDownloads > 0 {
		args = append(args, command.PlaylistEnd, strconv.Itoa(req.MaxDownloads))
	}

	if req.DateAfter != "" {
		args = append(args, command.DateAfter, req.DateAfter)
	}
	if req.DateBefore != "" {
		args = append(args, command.DateBefore, req.DateBefore)
	}

	if req.CookieSource != "" {
		args = append(args, command.CookiesFromBrowser, req.CookieSource)
	}

	args = append(args, channelURL)

	return args
}
