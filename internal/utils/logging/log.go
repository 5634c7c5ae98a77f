// Package logging handles console and file logging for chanarr.
package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rs/zerolog"
)

// SessionLogFile is the name of the session log inside the output directory.
const SessionLogFile = "chanarr.log"

var (
	loggable bool
	logger   zerolog.Logger
	logFile  *os.File
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the session log file in the target directory.
func SetupLogging(targetDir string) error {
	path := filepath.Join(targetDir, SessionLogFile)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	logFile = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	loggable = true

	logger.Info().Msgf("=========== session started %s ===========", time.Now().Format(time.RFC1123Z))
	return nil
}

// CloseLogging flushes and closes the session log file.
func CloseLogging() {
	if logFile != nil {
		logger.Info().Msgf("=========== session ended %s ===========", time.Now().Format(time.RFC1123Z))
		_ = logFile.Close()
		logFile = nil
		loggable = false
	}
}

// writeLog writes a console message to the session log file, minus ANSI codes.
func writeLog(level zerolog.Level, msg string) {
	if !loggable {
		return
	}
	logger.WithLevel(level).Msg(stripAnsiCodes(msg))
}

// stripAnsiCodes removes ANSI escape codes from a string.
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
