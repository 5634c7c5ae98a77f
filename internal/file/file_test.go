package file_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chanarr/internal/file"
	"chanarr/internal/models"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFormatFilename(t *testing.T) {
	got := file.FormatFilename("Creator", "20240101", "Some Title", "mp3")
	want := "Creator - [20240101] Some Title.mp3"
	if got != want {
		t.Errorf("FormatFilename = %q, want %q", got, want)
	}

	// Dates are zero-padded to eight digits.
	got = file.FormatFilename("Creator", "101", "Title", ".mp4")
	want = "Creator - [00000101] Title.mp4"
	if got != want {
		t.Errorf("FormatFilename = %q, want %q", got, want)
	}

	if !file.TemplatePattern.MatchString(got) {
		t.Errorf("formatted name %q does not match the template pattern", got)
	}
}

func TestOrganizeOutputs_AudioAndVideo(t *testing.T) {
	tmp := t.TempDir()

	audioName := "Creator - [20240101] Title.mp3"
	videoName := "Creator - [20240101] Title.mp4"
	sidecarName := "Creator - [20240101] Title.info.json"
	touch(t, tmp, audioName)
	touch(t, tmp, videoName)
	touch(t, tmp, sidecarName)

	req := &models.DownloadRequest{OutputDir: tmp, KeepVideo: true}
	if err := file.OrganizeOutputs(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "audio", audioName)); err != nil {
		t.Error("audio file was not moved under audio/")
	}
	if _, err := os.Stat(filepath.Join(tmp, "videos", videoName)); err != nil {
		t.Error("video file was not moved under videos/")
	}
	if _, err := os.Stat(filepath.Join(tmp, "videos", sidecarName)); err != nil {
		t.Error("sidecar did not follow the video destination")
	}
}

func TestOrganizeOutputs_NoVideosDirWithoutKeepVideo(t *testing.T) {
	tmp := t.TempDir()

	audioName := "Creator - [20240101] Title.mp3"
	touch(t, tmp, audioName)

	req := &models.DownloadRequest{OutputDir: tmp, AudioOnly: true}
	if err := file.OrganizeOutputs(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "videos")); !os.IsNotExist(err) {
		t.Error("videos/ should not be created without keep-video")
	}
	if _, err := os.Stat(filepath.Join(tmp, "audio", audioName)); err != nil {
		t.Error("audio file was not moved under audio/")
	}
}

func TestOrganizeOutputs_NoAudioUnderVideos(t *testing.T) {
	tmp := t.TempDir()

	for _, name := range []string{
		"Creator - [20240101] One.mp3",
		"Creator - [20240102] Two.flac",
		"Creator - [20240103] Three.mkv",
	} {
		touch(t, tmp, name)
	}

	req := &models.DownloadRequest{OutputDir: tmp, KeepVideo: true}
	if err := file.OrganizeOutputs(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	videoEntries, err := os.ReadDir(filepath.Join(tmp, "videos"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range videoEntries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".mp3" || ext == ".flac" {
			t.Errorf("audio file %q appeared under videos/", e.Name())
		}
	}
}

func TestOrganizeOutputs_RunRecordsStayPut(t *testing.T) {
	tmp := t.TempDir()

	touch(t, tmp, "channel_info.json")
	touch(t, tmp, "error_log.txt")

	req := &models.DownloadRequest{OutputDir: tmp}
	if err := file.OrganizeOutputs(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "channel_info.json")); err != nil {
		t.Error("channel_info.json should stay at the top level")
	}
	if _, err := os.Stat(filepath.Join(tmp, "error_log.txt")); err != nil {
		t.Error("error_log.txt should stay at the top level")
	}
}

func TestErrorLog_OneLinePerFailure(t *testing.T) {
	tmp := t.TempDir()

	elog, err := file.OpenErrorLog(tmp)
	if err != nil {
		t.Fatal(err)
	}

	if err := elog.ItemFailure("https://youtu.be/abc123", "Private video"); err != nil {
		t.Fatal(err)
	}
	if err := elog.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(tmp, "error_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() != "" {
			lines = append(lines, scanner.Text())
		}
	}

	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Private video") || !strings.Contains(lines[0], "abc123") {
		t.Errorf("line missing reason or URL: %q", lines[0])
	}
}

func TestErrorLog_AppendsAcrossSessions(t *testing.T) {
	tmp := t.TempDir()

	for i := 0; i < 2; i++ {
		elog, err := file.OpenErrorLog(tmp)
		if err != nil {
			t.Fatal(err)
		}
		if err := elog.ItemFailure("https://youtu.be/abc123", "Video unavailable"); err != nil {
			t.Fatal(err)
		}
		if err := elog.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmp, "error_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "Video unavailable"); got != 2 {
		t.Errorf("expected 2 appended entries, got %d", got)
	}
}

func TestWriteChannelInfo(t *testing.T) {
	tmp := t.TempDir()

	info := &models.ChannelInfo{
		Title:      "Creator",
		Uploader:   "Creator",
		EntryCount: 2,
		Entries: []models.ChannelEntry{
			{ID: "a", Title: "One", URL: "https://youtu.be/a"},
			{ID: "b", Title: "Two", URL: "https://youtu.be/b"},
		},
	}

	if err := file.WriteChannelInfo(tmp, info); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "channel_info.json"))
	if err != nil {
		t.Fatal(err)
	}

	var got models.ChannelInfo
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("channel_info.json is not valid JSON: %v", err)
	}
	if got.EntryCount != 2 || len(got.Entries) != 2 {
		t.Errorf("round-tripped info lost entries: %+v", got)
	}
}
