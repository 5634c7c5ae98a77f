// Package ffmpeg checks availability of the FFmpeg transcoding tool.
package ffmpeg

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"chanarr/internal/domain/command"
	"chanarr/internal/models"
	"chanarr/internal/utils/logging"
)

// CheckAvailable verifies FFmpeg is installed and runnable. Audio extraction
// is delegated to FFmpeg via yt-dlp post-processing, so a missing binary is
// a fatal precondition failure before any network activity.
func CheckAvailable(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, command.FFmpeg, command.FFmpegVersion)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return &models.PreconditionError{Tool: command.FFmpeg, Err: err}
	}

	logging.D(1, "FFmpeg available: %s", firstLine(out.String()))
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
