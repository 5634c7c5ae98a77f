package models

// ChannelEntry is a single item discovered during channel enumeration.
type ChannelEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Uploader string  `json:"uploader,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// ChannelInfo is the trimmed channel summary written to channel_info.json.
type ChannelInfo struct {
	ID         string         `json:"id,omitempty"`
	Title      string         `json:"title,omitempty"`
	Uploader   string         `json:"uploader,omitempty"`
	ChannelURL string         `json:"channel_url,omitempty"`
	EntryCount int            `json:"entry_count"`
	Entries    []ChannelEntry `json:"entries,omitempty"`
}
