package internal

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar draws a single-line progress bar on a terminal.
type ProgressBar struct {
	Total      int
	Current    int
	Unit       string
	Width      int
	StartTime  time.Time
	out        io.Writer
	lastUpdate time.Time
}

func NewProgressBar(out io.Writer, total int, unit string) *ProgressBar {
	return &ProgressBar{
		Total:     total,
		Unit:      unit,
		Width:     40,
		StartTime: time.Now(),
		out:       out,
	}
}

// Add moves the bar forward by n.
func (p *ProgressBar) Add(n int) {
	p.Update(p.Current + n)
}

// Update redraws the bar at current. Redraws are throttled except for the last one.
func (p *ProgressBar) Update(current int) {
	p.Current = current
	now := time.Now()
	if current < p.Total && now.Sub(p.lastUpdate) < 100*time.Millisecond {
		return
	}
	p.lastUpdate = now

	ratio := 0.0
	if p.Total > 0 {
		ratio = min(float64(current)/float64(p.Total), 1)
	}
	completed := max(int(float64(p.Width)*ratio), 0)
	bar := strings.Repeat("=", completed) + strings.Repeat("-", p.Width-completed)

	rate := 0.0
	if elapsed := now.Sub(p.StartTime).Seconds(); elapsed > 0 {
		rate = float64(current) / elapsed
	}

	// [=====-----] 50.0% (5/10) | 2.50 files/s
	fmt.Fprintf(p.out, "\r[%s] %.1f%% (%d/%d) | %.2f %s/s   ", bar, ratio*100, current, p.Total, rate, p.Unit)
}

func (p *ProgressBar) Finish() {
	fmt.Fprintln(p.out)
}
