package parsing_test

import (
	"testing"
	"time"

	"chanarr/internal/parsing"
)

func TestParseRateLimit(t *testing.T) {
	cases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"500", 500, false},
		{"50K", 50 * 1024, false},
		{"50k", 50 * 1024, false},
		{"1M", 1024 * 1024, false},
		{"1.5M", 1572864, false},
		{"2G", 2 * 1024 * 1024 * 1024, false},
		{"1MB", 1024 * 1024, false},
		{" 1M ", 1024 * 1024, false},
		{"fast", 0, true},
		{"-5K", 0, true},
		{"M", 0, true},
	}

	for _, c := range cases {
		got, err := parsing.ParseRateLimit(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseRateLimit(%q): expected error, got %d", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRateLimit(%q): unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRateLimit(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"20240101", "20240101", false},
		{"2024-01-01", "20240101", false},
		{"Jan 2, 2024", "20240102", false},
		{"20241301", "", true}, // month 13
		{"not-a-date", "", true},
	}

	for _, c := range cases {
		got, err := parsing.ParseDate(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %q", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDate(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseDateToday(t *testing.T) {
	got, err := parsing.ParseDate("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Now().Format("20060102"); got != want {
		t.Errorf("ParseDate(\"today\") = %q, want %q", got, want)
	}
}

func TestIsChannelURL(t *testing.T) {
	channels := []string{
		"https://www.youtube.com/@SomeCreator",
		"https://www.youtube.com/channel/UC12345",
		"https://www.youtube.com/c/SomeCreator",
		"https://www.youtube.com/user/SomeCreator",
	}
	for _, u := range channels {
		if !parsing.IsChannelURL(u) {
			t.Errorf("IsChannelURL(%q) = false, want true", u)
		}
	}

	videos := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtu.be/abc123",
	}
	for _, u := range videos {
		if parsing.IsChannelURL(u) {
			t.Errorf("IsChannelURL(%q) = true, want false", u)
		}
	}
}

func TestIsSupportedHost(t *testing.T) {
	if !parsing.IsSupportedHost("https://www.youtube.com/@Creator") {
		t.Error("expected youtube.com to be supported")
	}
	if !parsing.IsSupportedHost("https://youtu.be/abc123") {
		t.Error("expected youtu.be to be supported")
	}
	if parsing.IsSupportedHost("https://vimeo.com/12345") {
		t.Error("expected vimeo.com to be unsupported")
	}
	if parsing.IsSupportedHost("::::::not-a-url") {
		t.Error("expected malformed URL to be unsupported")
	}
}

func TestNormalizeChannelURL(t *testing.T) {
	base := "https://www.youtube.com/@Creator"

	cases := []struct {
		source      string
		contentType string
		want        string
	}{
		{base, "all", base},
		{base, "videos", base + "/videos"},
		{base, "shorts", base + "/shorts"},
		{base, "streams", base + "/streams"},
		{base + "/videos", "all", base},
		{base + "/shorts", "videos", base + "/videos"},
		{base + "/live", "streams", base + "/streams"},
		{base + "/", "all", base},
	}

	for _, c := range cases {
		got := parsing.NormalizeChannelURL(c.source, c.contentType)
		if got != c.want {
			t.Errorf("NormalizeChannelURL(%q, %q) = %q, want %q", c.source, c.contentType, got, c.want)
		}
	}
}
