// Package consts holds various global, unchanging values.
package consts

// Content type filters for channel URLs.
const (
	ContentAll     = "all"
	ContentVideos  = "videos"
	ContentShorts  = "shorts"
	ContentStreams = "streams"
)

// ValidContentTypes holds the supported channel content filters.
var ValidContentTypes = map[string]bool{
	ContentAll:     true,
	ContentVideos:  true,
	ContentShorts:  true,
	ContentStreams: true,
}

// Audio formats supported for extraction.
const (
	AudioMP3  = "mp3"
	AudioWAV  = "wav"
	AudioAAC  = "aac"
	AudioFLAC = "flac"
)

// ValidAudioFormats holds the supported audio extraction targets.
var ValidAudioFormats = map[string]bool{
	AudioMP3:  true,
	AudioWAV:  true,
	AudioAAC:  true,
	AudioFLAC: true,
}

// AllVidExtensions is a list of video file extensions.
var AllVidExtensions = [...]string{".3gp", ".avi", ".f4v", ".flv", ".m4v", ".mkv",
	".mov", ".mp4", ".mpeg", ".mpg", ".ogm", ".ogv",
	".ts", ".vob", ".webm", ".wmv"}

// AllAudioExtensions is a list of audio file extensions yt-dlp may emit.
var AllAudioExtensions = [...]string{".aac", ".flac", ".m4a", ".mp3", ".oga",
	".ogg", ".opus", ".wav"}

// Sidecar file extensions which follow their media file.
var SidecarExtensions = [...]string{".json", ".srt", ".vtt"}

// DownloadStatus represents the state of a single item download.
type DownloadStatus string

const (
	DLStatusPending     DownloadStatus = "Pending"
	DLStatusDownloading DownloadStatus = "Downloading"
	DLStatusCompleted   DownloadStatus = "Completed"
	DLStatusSkipped     DownloadStatus = "Skipped"
	DLStatusFailed      DownloadStatus = "Failed"
)

// Output layout names inside the output directory.
const (
	AudioDirName        = "audio"
	VideoDirName        = "videos"
	ChannelInfoFile     = "channel_info.json"
	ErrorLogFile        = "error_log.txt"
	HistoryDBFile       = "chanarr.db"
	CookieExportFile    = ".cookies.txt"
	DefaultAudioQuality = "192K"
)

// Valid hosts for source URLs.
var ValidSourceHosts = [...]string{"youtube.com", "youtu.be"}
