// Package render draws the live tier dashboard with tcell.
// It shows counters and estimates only; the scene geometry is never drawn.
package render

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/parameter"
	"github.com/lixenwraith/mcarea/sampler"
	"github.com/lixenwraith/mcarea/status"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorTeal).Underline(true)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDone    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePending = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// Dashboard renders per-tier progress from the metrics registry
// Complete and SetActive may be called from any goroutine
type Dashboard struct {
	screen  tcell.Screen
	metrics *status.Registry

	rect  core.Rectangle
	set   core.ShapeSet
	tiers []int
	seed  uint64

	mu      sync.Mutex
	active  int
	results map[int]sampler.Result
}

// NewDashboard binds an initialized screen to the registry the sampler publishes to
func NewDashboard(screen tcell.Screen, metrics *status.Registry, rect core.Rectangle, set core.ShapeSet, tiers []int, seed uint64) *Dashboard {
	return &Dashboard{
		screen:  screen,
		metrics: metrics,
		rect:    rect,
		set:     set,
		tiers:   tiers,
		seed:    seed,
		active:  -1,
		results: make(map[int]sampler.Result),
	}
}

// SetActive marks tier i as running
func (d *Dashboard) SetActive(i int) {
	d.mu.Lock()
	d.active = i
	d.mu.Unlock()
}

// Complete stores the result of tier i
func (d *Dashboard) Complete(i int, r sampler.Result) {
	d.mu.Lock()
	d.results[i] = r
	if d.active == i {
		d.active = -1
	}
	d.mu.Unlock()
}

// Run redraws on a ticker and handles keys until ctx ends
// q, Esc and Ctrl-C call cancel so the caller can abort the running estimate
func (d *Dashboard) Run(ctx context.Context, cancel context.CancelFunc) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.DashboardRefreshInterval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			d.Draw()
			return
		case <-ticker.C:
			d.Draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
				}
			case *tcell.EventResize:
				d.screen.Sync()
				d.Draw()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Draw renders one frame
func (d *Dashboard) Draw() {
	d.mu.Lock()
	active := d.active
	results := make(map[int]sampler.Result, len(d.results))
	for k, v := range d.results {
		results[k] = v
	}
	d.mu.Unlock()

	snap := d.metrics.Snapshot()
	s := d.screen
	s.Clear()

	title := fmt.Sprintf("mcarea  rectangle %.2f x %.2f  circles %d  triangles %d  seed %d",
		d.rect.Width, d.rect.Height, len(d.set.Circles), len(d.set.Triangles), d.seed)
	drawText(s, 0, 0, styleTitle, title)
	drawText(s, 0, 1, stylePending, "q quit")

	drawText(s, 0, 3, styleHeader, fmt.Sprintf("  %12s  %-*s  %12s  %10s", "samples", parameter.ProgressBarWidth+2, "progress", "estimate", "stderr"))

	for i, n := range d.tiers {
		y := 4 + i
		r, done := results[i]
		switch {
		case done:
			drawText(s, 0, y, styleDone, fmt.Sprintf("  %12d  ", n))
			drawText(s, 16, y, styleBar, bar(1))
			drawText(s, 18+parameter.ProgressBarWidth, y, styleDone, fmt.Sprintf("  %12.6f  %10.6f", r.Area, r.StdErr))
		case i == active:
			drawText(s, 0, y, styleActive, fmt.Sprintf("> %12d  ", n))
			drawText(s, 16, y, styleBar, bar(snap.Fraction()))
			drawText(s, 18+parameter.ProgressBarWidth, y, styleActive, fmt.Sprintf("  %12.6f  %10s", snap.Running(), "-"))
		default:
			drawText(s, 0, y, stylePending, fmt.Sprintf("  %12d  ", n))
			drawText(s, 16, y, stylePending, bar(0))
			drawText(s, 18+parameter.ProgressBarWidth, y, stylePending, fmt.Sprintf("  %12s  %10s", "-", "-"))
		}
	}

	footer := fmt.Sprintf("workers %d  batches %d  samples %d/%d  run %s  sampled %.2fs over %d runs",
		snap.Workers, snap.Batches, snap.Done, snap.Total, shortID(snap.RunID), snap.Seconds, snap.Runs)
	drawText(s, 0, 5+len(d.tiers), styleDefault, footer)

	s.Show()
}

// Close restores the terminal
func (d *Dashboard) Close() {
	d.screen.Fini()
}

func bar(fraction float64) string {
	filled := int(fraction * float64(parameter.ProgressBarWidth))
	if filled > parameter.ProgressBarWidth {
		filled = parameter.ProgressBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", parameter.ProgressBarWidth-filled) + "]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// drawText writes text left to right, clipping at the screen edge
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
