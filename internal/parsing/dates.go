package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate normalizes a user-entered date into yt-dlp's yyyymmdd form.
// Accepts raw "20240101", hyphenated "2024-01-01", word dates like
// "Jan 2, 2024" and the special value "today". Empty input returns "".
func ParseDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	d := strings.TrimSpace(input)
	if strings.EqualFold(d, "today") {
		return time.Now().Format("20060102"), nil
	}

	// Raw yyyymmdd passes straight through once range-checked.
	compact := strings.ReplaceAll(d, "-", "")
	if len(compact) == 8 && isDigits(compact) {
		if _, err := time.Parse("20060102", compact); err != nil {
			return "", fmt.Errorf("invalid calendar date %q", input)
		}
		return compact, nil
	}

	t, err := dateparse.ParseAny(d)
	if err != nil {
		return "", fmt.Errorf("unable to parse date %q", input)
	}

	return t.Format("20060102"), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
