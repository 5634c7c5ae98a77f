package parsing

import (
	"net/url"
	"strings"

	"chanarr/internal/domain/consts"
)

var channelMarkers = [...]string{"/channel/", "/user/", "/c/", "/@"}

var contentSuffixes = [...]string{"/videos", "/shorts", "/streams", "/live"}

// IsChannelURL reports whether the source URL addresses a channel feed
// rather than a single video.
func IsChannelURL(source string) bool {
	for _, marker := range channelMarkers {
		if strings.Contains(source, marker) {
			return true
		}
	}
	return false
}

// IsSupportedHost reports whether the URL points at a supported video host.
func IsSupportedHost(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, valid := range consts.ValidSourceHosts {
		if host == valid {
			return true
		}
	}
	return false
}

// NormalizeChannelURL strips any existing content-type suffix from a channel
// URL and appends the suffix selected by the content type filter. The base
// URL is returned unchanged for the "all" filter.
func NormalizeChannelURL(source, contentType string) string {
	clean := strings.TrimSuffix(source, "/")
	for _, suffix := range contentSuffixes {
		clean = strings.TrimSuffix(clean, suffix)
	}

	switch contentType {
	case consts.ContentVideos, consts.ContentShorts, consts.ContentStreams:
		return clean + "/" + contentType
	default:
		return clean
	}
}
