package builder_test

import (
	"slices"
	"testing"

	"chanarr/internal/command/builder"
	"chanarr/internal/models"
)

const itemURL = "https://www.youtube.com/watch?v=abc123"

func baseRequest() *models.DownloadRequest {
	return &models.DownloadRequest{
		Source:      "https://www.youtube.com/@Creator",
		ContentType: "all",
		AudioFormat: "mp3",
		Quality:     "best",
		OutputDir:   "downloads",
	}
}

// hasPair reports whether flag is followed immediately by value in args.
func hasPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestDownloadArgs_Deterministic(t *testing.T) {
	req := baseRequest()
	req.RateLimit = 1024 * 1024
	req.SleepInterval = 2
	req.MaxSleepInterval = 8
	req.DateAfter = "20240101"
	req.DateBefore = "20241231"

	a := builder.DownloadArgs(req, itemURL)
	b := builder.DownloadArgs(req, itemURL)

	if !slices.Equal(a, b) {
		t.Fatalf("expected identical output for identical input:\n%v\n%v", a, b)
	}
}

func TestDownloadArgs_TargetURLLast(t *testing.T) {
	args := builder.DownloadArgs(baseRequest(), itemURL)
	if args[len(args)-1] != itemURL {
		t.Fatalf("expected target URL last, got %q", args[len(args)-1])
	}
}

func TestDownloadArgs_AudioFormatMapping(t *testing.T) {
	for _, format := range []string{"mp3", "wav", "aac", "flac"} {
		req := baseRequest()
		req.AudioFormat = format

		args := builder.DownloadArgs(req, itemURL)
		if !slices.Contains(args, "-x") {
			t.Errorf("format %s: missing -x", format)
		}
		if !hasPair(args, "--audio-format", format) {
			t.Errorf("format %s: missing --audio-format mapping", format)
		}
	}
}

func TestDownloadArgs_AudioOnlySelectsBestAudio(t *testing.T) {
	req := baseRequest()
	req.AudioOnly = true

	args := builder.DownloadArgs(req, itemURL)
	if !hasPair(args, "-f", "bestaudio/best") {
		t.Error("audio-only request should select bestaudio/best")
	}

	req.AudioOnly = false
	args = builder.DownloadArgs(req, itemURL)
	if !hasPair(args, "-f", "best") {
		t.Error("full request should select the quality format")
	}
}

func TestDownloadArgs_UnsetOptionalsOmitted(t *testing.T) {
	args := builder.DownloadArgs(baseRequest(), itemURL)

	for _, flag := range []string{
		"--limit-rate",
		"--sleep-interval",
		"--max-sleep-interval",
		"--dateafter",
		"--datebefore",
		"--retries",
		"--keep-video",
		"--cookies-from-browser",
	} {
		if slices.Contains(args, flag) {
			t.Errorf("unset field leaked flag %s into args: %v", flag, args)
		}
	}
}

func TestDownloadArgs_ThrottlingMapping(t *testing.T) {
	req := baseRequest()
	req.RateLimit = 51200
	req.SleepInterval = 3
	req.MaxSleepInterval = 9

	args := builder.DownloadArgs(req, itemURL)
	if !hasPair(args, "--limit-rate", "51200") {
		t.Error("missing rate limit mapping")
	}
	if !hasPair(args, "--sleep-interval", "3") {
		t.Error("missing sleep interval mapping")
	}
	if !hasPair(args, "--max-sleep-interval", "9") {
		t.Error("missing max sleep interval mapping")
	}
}

func TestDownloadArgs_DateMapping(t *testing.T) {
	req := baseRequest()
	req.DateAfter = "20240101"
	req.DateBefore = "20240301"

	args := builder.DownloadArgs(req, itemURL)
	if !hasPair(args, "--dateafter", "20240101") {
		t.Error("missing dateafter mapping")
	}
	if !hasPair(args, "--datebefore", "20240301") {
		t.Error("missing datebefore mapping")
	}
}

func TestDownloadArgs_SkipToggles(t *testing.T) {
	args := builder.DownloadArgs(baseRequest(), itemURL)
	if !slices.Contains(args, "--write-info-json") {
		t.Error("metadata should be written by default")
	}
	if !slices.Contains(args, "--write-subs") {
		t.Error("subtitles should be written by default")
	}

	req := baseRequest()
	req.SkipSubs = true
	req.SkipMetadata = true

	args = builder.DownloadArgs(req, itemURL)
	for _, flag := range []string{"--write-info-json", "--write-subs", "--write-auto-subs", "--sub-langs"} {
		if slices.Contains(args, flag) {
			t.Errorf("skip toggle leaked flag %s", flag)
		}
	}
}

func TestDownloadArgs_KeepVideo(t *testing.T) {
	req := baseRequest()
	req.KeepVideo = true

	args := builder.DownloadArgs(req, itemURL)
	if !slices.Contains(args, "--keep-video") {
		t.Error("missing keep-video mapping")
	}
}

func TestEnumerateArgs(t *testing.T) {
	req := baseRequest()
	req.MaxDownloads = 2

	channelURL := "https://www.youtube.com/@Creator/videos"
	args := builder.EnumerateArgs(req, channelURL)

	if !slices.Contains(args, "-J") || !slices.Contains(args, "--flat-playlist") {
		t.Error("enumeration must run in flat-playlist JSON mode")
	}
	if !slices.Contains(args, "--skip-download") {
		t.Error("enumeration must not download media")
	}
	if !hasPair(args, "--playlist-end", "2") {
		t.Error("missing max-downloads mapping")
	}
	if args[len(args)-1] != channelURL {
		t.Errorf("expected channel URL last, got %q", args[len(args)-1])
	}

	req.MaxDownloads = 0
	args = builder.EnumerateArgs(req, channelURL)
	if slices.Contains(args, "--playlist-end") {
		t.Error("unset max-downloads leaked into args")
	}
}
