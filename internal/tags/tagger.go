// Package tags writes ID3 metadata onto extracted MP3 files, derived from
// the organized filename template.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"chanarr/internal/utils/logging"

	"github.com/bogem/id3v2"
)

// namePattern captures channel, upload date and title from filenames shaped
// by the output template "<Channel> - [<YYYYMMDD>] <Title>.<ext>".
var namePattern = regexp.MustCompile(`^(.+) - \[(\d{8})\] (.+)\.[^.]+$`)

// ParseName splits an organized filename into its channel, upload date and
// title parts.
func ParseName(name string) (channel, date, title string, ok bool) {
	matches := namePattern.FindStringSubmatch(name)
	if matches == nil {
		return "", "", "", false
	}
	return matches[1], matches[2], matches[3], true
}

// TagMP3 writes artist, title and date frames onto one MP3 file. The upload
// date must be an 8-digit yyyymmdd string.
func TagMP3(path, channel, date, title string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %q for tagging: %w", path, err)
	}
	defer func() {
		if err := tag.Close(); err != nil {
			logging.E("failed to close tag for %q: %v", path, err)
		}
	}()

	tag.SetArtist(channel)
	tag.SetTitle(title)

	if len(date) == 8 {
		// TYER for ID3v2.3 readers, TDRC for ID3v2.4.
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, date[:4])
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8,
			fmt.Sprintf("%s-%s-%s", date[:4], date[4:6], date[6:8]))
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags for %q: %w", path, err)
	}
	return nil
}

// TagAudioDir tags every MP3 in the directory whose name matches the output
// template. Per-file failures are logged and skipped. Returns the number of
// files tagged.
func TagAudioDir(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.D(1, "Nothing to tag, cannot read %q: %v", dir, err)
		return 0
	}

	var tagged int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp3") {
			continue
		}

		channel, date, title, ok := ParseName(entry.Name())
		if !ok {
			logging.D(2, "Filename %q does not match the output template, skipping tags", entry.Name())
			continue
		}

		if err := TagMP3(filepath.Join(dir, entry.Name()), channel, date, title); err != nil {
			logging.W("%v", err)
			continue
		}
		tagged++
	}

	return tagged
}
