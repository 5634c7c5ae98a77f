package browser

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"chanarr/internal/utils/logging"

	"github.com/gocolly/colly"
)

// Preflight describes what a quick scrape of the channel page found.
type Preflight struct {
	Title     string
	WatchHits int
}

// PreflightChannel visits the channel page and reports its title and how
// many watch links appear, as an early signal the source is reachable and
// public. Failures here are advisory; yt-dlp remains the source of truth.
func PreflightChannel(channelURL string, cookies []*http.Cookie) (*Preflight, error) {
	collector := colly.NewCollector()
	collector.SetRequestTimeout(30 * time.Second)

	if len(cookies) > 0 {
		if err := collector.SetCookies(channelURL, cookies); err != nil {
			return nil, fmt.Errorf("failed to set cookies for %q: %w", channelURL, err)
		}
	}

	result := &Preflight{}
	seen := make(map[string]struct{})

	collector.OnHTML(`meta[property="og:title"]`, func(e *colly.HTMLElement) {
		if result.Title == "" {
			result.Title = strings.TrimSpace(e.Attr("content"))
		}
	})

	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if strings.Contains(link, "/watch?v=") || strings.Contains(link, "/shorts/") {
			seen[link] = struct{}{}
		}
	})

	if err := collector.Visit(channelURL); err != nil {
		return nil, fmt.Errorf("error visiting webpage %q: %w", channelURL, err)
	}
	collector.Wait()

	result.WatchHits = len(seen)

	if result.Title != "" {
		logging.D(1, "Pre-flight: page title %q, %d watch links", result.Title, result.WatchHits)
	} else {
		logging.D(1, "Pre-flight: no page title found at %q", channelURL)
	}

	return result, nil
}
