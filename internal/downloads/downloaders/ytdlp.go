// Package downloaders holds logic specific to external downloader output.
package downloaders

import (
	"regexp"
	"strconv"
)

// Matches yt-dlp progress lines like:
// "[download]  45.2% of 10.55MiB at 2.34MiB/s ETA 00:02"
var ytdlpProgress = regexp.MustCompile(`^\[download\]\s+(\d+(?:\.\d+)?)%`)

// YtdlpOutputParser parses a yt-dlp terminal output line for download
// progress. It reports whether the line carried a percentage.
func YtdlpOutputParser(line string) (parsedLine bool, pct float64) {
	matches := ytdlpProgress.FindStringSubmatch(line)
	if matches == nil {
		return false, 0
	}

	pct, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return false, 0
	}

	if pct > 100.0 {
		pct = 100.0
	}
	return true, pct
}
