package downloads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"chanarr/internal/command/builder"
	"chanarr/internal/domain/command"
	"chanarr/internal/models"
	"chanarr/internal/utils/logging"
)

// rawPlaylist mirrors the subset of yt-dlp's -J flat-playlist output we use.
type rawPlaylist struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Uploader   string      `json:"uploader"`
	Channel    string      `json:"channel"`
	ChannelURL string      `json:"channel_url"`
	WebpageURL string      `json:"webpage_url"`
	Entries    []*rawEntry `json:"entries"`
}

type rawEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
}

// FetchChannelMetadata enumerates a channel URL in flat-playlist mode and
// returns the trimmed channel summary. No media is downloaded.
func FetchChannelMetadata(ctx context.Context, req *models.DownloadRequest, channelURL string) (*models.ChannelInfo, error) {
	args := builder.EnumerateArgs(req, channelURL)
	cmd := exec.CommandContext(ctx, command.YTDLP, args...)
	logging.D(1, "Built enumeration command for URL %q:\n%v", channelURL, cmd.String())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, startErr := exec.LookPath(command.YTDLP); startErr != nil {
			return nil, &models.PreconditionError{Tool: command.YTDLP, Err: startErr}
		}
		return nil, &models.ToolInvocationError{
			Tool: command.YTDLP,
			Err:  fmt.Errorf("%w: %s", err, firstLine(stderr.String())),
		}
	}

	info, err := parsePlaylist(stdout.Bytes())
	if err != nil {
		return nil, &models.ToolInvocationError{Tool: command.YTDLP, Err: err}
	}

	logging.I("Found %d entries for channel %q", info.EntryCount, channelURL)
	return info, nil
}

// parsePlaylist decodes yt-dlp's flat-playlist JSON into the trimmed channel
// summary, dropping null or URL-less entry holes.
func parsePlaylist(data []byte) (*models.ChannelInfo, error) {
	var raw rawPlaylist
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse enumeration output: %w", err)
	}

	info := &models.ChannelInfo{
		ID:         raw.ID,
		Title:      raw.Title,
		Uploader:   raw.Uploader,
		ChannelURL: raw.ChannelURL,
	}
	if info.Uploader == "" {
		info.Uploader = raw.Channel
	}
	if info.ChannelURL == "" {
		info.ChannelURL = raw.WebpageURL
	}

	for _, e := range raw.Entries {
		if e == nil || e.URL == "" {
			continue
		}
		info.Entries = append(info.Entries, models.ChannelEntry{
			ID:       e.ID,
			Title:    e.Title,
			URL:      e.URL,
			Uploader: e.Uploader,
			Duration: e.Duration,
		})
	}
	info.EntryCount = len(info.Entries)

	return info, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
