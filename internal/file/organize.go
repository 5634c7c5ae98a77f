// Package file handles output layout and the run's on-disk records.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"chanarr/internal/domain/consts"
	"chanarr/internal/models"
	"chanarr/internal/utils/logging"
)

// TemplatePattern matches filenames produced by the yt-dlp output template
// "<Channel> - [<YYYYMMDD>] <Title>.<ext>".
var TemplatePattern = regexp.MustCompile(`^.+ - \[\d{8}\] .+\..+$`)

// FormatFilename is the Go-side mirror of the yt-dlp output template.
// The upload date is zero-padded to eight digits.
func FormatFilename(channel, uploadDate, title, ext string) string {
	for len(uploadDate) < 8 {
		uploadDate = "0" + uploadDate
	}
	return fmt.Sprintf("%s - [%s] %s.%s", channel, uploadDate, title, strings.TrimPrefix(ext, "."))
}

// OrganizeOutputs sweeps the top level of the output directory, moving audio
// files into audio/ and, when keepVideo is set, video files into videos/.
// Sidecar files (.info.json, subtitles) follow the media destination.
func OrganizeOutputs(req *models.DownloadRequest) error {
	audioDir := filepath.Join(req.OutputDir, consts.AudioDirName)
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	videoDir := filepath.Join(req.OutputDir, consts.VideoDirName)
	if req.KeepVideo {
		if err := os.MkdirAll(videoDir, 0o755); err != nil {
			return fmt.Errorf("failed to create videos directory: %w", err)
		}
	}

	entries, err := os.ReadDir(req.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}

	// Sidecars follow the primary media destination.
	sidecarDir := audioDir
	if req.KeepVideo && !req.AudioOnly {
		sidecarDir = videoDir
	}

	for _, entry := range entries {
		if entry.IsDir() || isRunRecord(entry.Name()) {
			continue
		}

		name := entry.Name()
		src := filepath.Join(req.OutputDir, name)

		switch {
		case hasExtension(name, consts.AllAudioExtensions[:]):
			if !TemplatePattern.MatchString(name) {
				logging.D(2, "File %q does not match the output template", name)
			}
			if err := moveFile(src, filepath.Join(audioDir, name)); err != nil {
				return err
			}

		case hasExtension(name, consts.AllVidExtensions[:]):
			if !req.KeepVideo {
				logging.D(1, "Leaving unexpected video file %q in place (keep-video not set)", name)
				continue
			}
			if err := moveFile(src, filepath.Join(videoDir, name)); err != nil {
				return err
			}

		case hasExtension(name, consts.SidecarExtensions[:]):
			if err := moveFile(src, filepath.Join(sidecarDir, name)); err != nil {
				return err
			}
		}
	}

	return nil
}

// isRunRecord reports whether the filename is one of chanarr's own records,
// which stay at the top level of the output directory.
func isRunRecord(name string) bool {
	switch name {
	case consts.ChannelInfoFile, consts.ErrorLogFile, consts.HistoryDBFile, consts.CookieExportFile:
		return true
	}
	return name == logging.SessionLogFile
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, valid := range exts {
		if ext == valid {
			return true
		}
	}
	return false
}

func moveFile(src, dst string) error {
	logging.D(2, "Moving %q -> %q", src, dst)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %q to %q: %w", src, dst, err)
	}
	return nil
}
