package logging

import (
	"fmt"
	"strings"
	"sync"

	"chanarr/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the active debug verbosity (0-5).
	Level int
	mu    sync.Mutex
)

// I prints an info message.
func I(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.BlueInfo, format, args...)
	fmt.Print(msg)
	writeLog(zerolog.InfoLevel, strings.TrimSuffix(msg, "\n"))
}

// S prints a success message.
func S(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.GreenSuccess, format, args...)
	fmt.Print(msg)
	writeLog(zerolog.InfoLevel, strings.TrimSuffix(msg, "\n"))
}

// W prints a warning message.
func W(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.YellowWarning, format, args...)
	fmt.Print(msg)
	writeLog(zerolog.WarnLevel, strings.TrimSuffix(msg, "\n"))
}

// E prints an error message.
func E(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.RedError, format, args...)
	fmt.Print(msg)
	writeLog(zerolog.ErrorLevel, strings.TrimSuffix(msg, "\n"))
}

// D prints a debug message when the given level is within the active verbosity.
func D(l int, format string, args ...interface{}) {
	if l > Level {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.YellowDebug, format, args...)
	fmt.Print(msg)
	writeLog(zerolog.DebugLevel, strings.TrimSuffix(msg, "\n"))
}

// P prints a plain message with no level tag.
func P(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := build("", format, args...)
	fmt.Print(msg)
	writeLog(zerolog.InfoLevel, strings.TrimSuffix(msg, "\n"))
}

func build(tag, format string, args ...interface{}) string {
	var b strings.Builder
	b.Grow(len(tag) + len(format) + 1 + (len(args) * 32))
	b.WriteString(tag)

	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	b.WriteString("\n")
	return b.String()
}
