// Package models holds the data models used across chanarr.
package models

// DownloadRequest is the fully validated description of a single run.
//
// A request is built once from CLI/config input, validated before any
// network activity, and never mutated afterwards.
type DownloadRequest struct {
	Source      string
	ContentType string
	AudioOnly   bool
	AudioFormat string
	Quality     string
	OutputDir   string

	RateLimit        int64 // bytes per second, 0 = unset
	SleepInterval    int   // seconds
	MaxSleepInterval int   // seconds
	MaxDownloads     int   // 0 = unlimited
	DateAfter        string
	DateBefore       string // yyyymmdd, "" = unset

	KeepVideo    bool
	SkipSubs     bool
	SkipMetadata bool

	Retries      int
	CookieSource string
	Redownload   bool
}
