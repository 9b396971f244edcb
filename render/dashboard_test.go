package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/sampler"
	"github.com/lixenwraith/mcarea/status"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(100, 16)
	return screen
}

// rowText reads one screen row back as a string
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func newTestDashboard(screen tcell.Screen, reg *status.Registry) *Dashboard {
	set := core.ShapeSet{
		Circles:   []core.Circle{{Radius: 1}},
		Triangles: []core.Triangle{{Side: 1}, {Side: 2}},
	}
	return NewDashboard(screen, reg, core.Rectangle{Width: 15, Height: 20}, set, []int{100, 10000, 1000000}, 42)
}

// TestDashboardDrawStates verifies done, active and pending rows
func TestDashboardDrawStates(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	reg := status.NewRegistry()
	reg.Ints.Get(status.KeySamplesTotal).Store(10000)
	reg.Ints.Get(status.KeySamplesDone).Store(5000)
	reg.Ints.Get(status.KeySafe).Store(4000)
	reg.Ints.Get(status.KeyWorkers).Store(4)
	reg.Floats.Get(status.KeyRectArea).Set(300)
	reg.Strings.Get(status.KeyRunID).Store("0123456789abcdef")

	d := newTestDashboard(screen, reg)
	d.Complete(0, sampler.Result{Samples: 100, Area: 250.5, StdErr: 1.25})
	d.SetActive(1)
	d.Draw()

	title := rowText(screen, 0)
	if !strings.Contains(title, "circles 1") || !strings.Contains(title, "triangles 2") || !strings.Contains(title, "seed 42") {
		t.Errorf("Unexpected title %q", title)
	}

	done := rowText(screen, 4)
	if !strings.Contains(done, "250.500000") || !strings.Contains(done, "1.250000") {
		t.Errorf("Expected completed tier values, got %q", done)
	}

	active := rowText(screen, 5)
	if !strings.HasPrefix(active, ">") {
		t.Errorf("Expected active marker, got %q", active)
	}
	// Running estimate: 300 * 4000/5000
	if !strings.Contains(active, "240.000000") {
		t.Errorf("Expected running estimate 240, got %q", active)
	}
	if got := strings.Count(active, "█"); got != 15 {
		t.Errorf("Expected half-filled bar (15 cells), got %d", got)
	}

	pending := rowText(screen, 6)
	if strings.Contains(pending, "█") {
		t.Errorf("Expected empty bar for pending tier, got %q", pending)
	}

	footer := rowText(screen, 8)
	if !strings.Contains(footer, "workers 4") || !strings.Contains(footer, "run 01234567") {
		t.Errorf("Unexpected footer %q", footer)
	}
}

// TestDashboardQuitKey verifies q cancels the run
func TestDashboardQuitKey(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	d := newTestDashboard(screen, status.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := make(chan struct{})
	go func() {
		d.Run(ctx, cancel)
		close(finished)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected dashboard to stop after quit key")
	}
	if ctx.Err() == nil {
		t.Error("Expected context to be cancelled")
	}
}

// TestBarClamp verifies bar width stays fixed
func TestBarClamp(t *testing.T) {
	for _, f := range []float64{-1, 0, 0.5, 1, 3} {
		if n := len([]rune(bar(f))); n != 32 {
			t.Errorf("Fraction %v: expected 32 runes, got %d", f, n)
		}
	}
}
