// Package command holds argument strings for the wrapped external tools.
package command

// General
const (
	YTDLP              = "yt-dlp"
	AfterMove          = "after_move:%(filepath)s"
	FilenameSyntax     = "%(uploader)s - [%(upload_date)s] %(title)s.%(ext)s"
	Format             = "-f"
	IgnoreErrors       = "--ignore-errors"
	NoPlaylist         = "--no-playlist"
	Output             = "-o"
	Paths              = "-P"
	Print              = "--print"
	Retries            = "--retries"
	CookiesFromBrowser = "--cookies-from-browser"
)

// Audio extraction
const (
	ExtractAudio = "-x"
	AudioFormat  = "--audio-format"
	AudioQuality = "--audio-quality"
	KeepVideo    = "--keep-video"

	FormatBestAudio = "bestaudio/best"
)

// Throttling and filters
const (
	LimitRate        = "--limit-rate"
	SleepInterval    = "--sleep-interval"
	MaxSleepInterval = "--max-sleep-interval"
	DateAfter        = "--dateafter"
	DateBefore       = "--datebefore"
	PlaylistEnd      = "--playlist-end"
)

// Metadata and subtitles
const (
	WriteInfoJSON = "--write-info-json"
	WriteSubs     = "--write-subs"
	WriteAutoSubs = "--write-auto-subs"
	SubLangs      = "--sub-langs"
	SubLangsEN    = "en.*"
)

// Enumeration only
const (
	SkipVideo    = "--skip-download"
	FlatPlaylist = "--flat-playlist"
	OutputJSON   = "-J"
)

// FFmpeg
const (
	FFmpeg        = "ffmpeg"
	FFmpegVersion = "-version"
)
