// Package parsing parses and normalizes raw user input values.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rateLimitPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([KMGT]?)B?$`)

// ParseRateLimit converts a rate limit string like "50K", "1M" or "2G" into
// bytes per second. An empty string returns 0 (unset).
func ParseRateLimit(input string) (int64, error) {
	if input == "" {
		return 0, nil
	}

	s := strings.ToUpper(strings.TrimSpace(input))

	matches := rateLimitPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid rate limit format %q (expected e.g. 50K, 1M)", input)
	}

	number, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate limit number %q", matches[1])
	}

	multipliers := map[string]int64{
		"":  1,
		"K": 1024,
		"M": 1024 * 1024,
		"G": 1024 * 1024 * 1024,
		"T": 1024 * 1024 * 1024 * 1024,
	}

	bytes := int64(number * float64(multipliers[matches[2]]))
	if bytes <= 0 {
		return 0, fmt.Errorf("rate limit %q resolves to zero bytes/sec", input)
	}

	return bytes, nil
}
