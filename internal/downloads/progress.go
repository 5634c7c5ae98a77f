package downloads

import (
	"time"

	"github.com/cheggaaa/pb/v3"
)

// Progress bar format: item title, percentage, bar.
const progressTemplate = `{{with string . "prefix"}}{{.}}{{end}}: {{percent . }} {{bar . }}`

// itemProgress renders a console progress bar for a single item, driven by
// percentages parsed from yt-dlp's terminal output.
type itemProgress struct {
	bar *pb.ProgressBar
}

// newItemProgress prepares a progress bar labeled with the item title. The
// bar stays hidden until the first percentage arrives.
func newItemProgress(label string) *itemProgress {
	if label == "" {
		label = "downloading"
	}
	if r := []rune(label); len(r) > 32 {
		label = string(r[:29]) + "..."
	}

	bar := pb.New64(100).
		Set("prefix", label).
		SetRefreshRate(100 * time.Millisecond).
		SetTemplateString(progressTemplate)

	return &itemProgress{bar: bar}
}

// update advances the bar to the parsed percentage.
func (p *itemProgress) update(pct float64) {
	if !p.bar.IsStarted() {
		p.bar.Start()
	}
	p.bar.SetCurrent(int64(pct))
}

// finish stops the bar. Safe to call when it never started.
func (p *itemProgress) finish() {
	if p.bar.IsStarted() {
		p.bar.Finish()
	}
}
