// Package keys holds the Viper keys used across chanarr.
package keys

// Terminal keys
const (
	Source     string = "source"
	OutputDir  string = "output"
	VideoTypes string = "video-types"

	AudioOnly   string = "audio-only"
	AudioFormat string = "format"
	Quality     string = "quality"
	KeepVideo   string = "keep-video"

	SleepInterval    string = "sleep-interval"
	MaxSleepInterval string = "max-sleep-interval"
	RateLimit        string = "rate-limit"
	MaxDownloads     string = "max-downloads"
	DateAfter        string = "date-after"
	DateBefore       string = "date-before"

	NoSubs     string = "no-subs"
	NoMetadata string = "no-metadata"

	DLRetries    string = "dl-retries"
	CookieSource string = "cookie-source"
	Redownload   string = "redownload"

	ConfigFile string = "config-file"
)

// Logging
const (
	DebugLevel string = "debug-level"
)

// Internal program keys
const (
	Execute string = "execute"
)
