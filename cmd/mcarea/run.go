package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/render"
	"github.com/lixenwraith/mcarea/report"
	"github.com/lixenwraith/mcarea/sampler"
	"github.com/lixenwraith/mcarea/status"
)

// tierRun estimates one scene at every tier, each tier independently
type tierRun struct {
	out    io.Writer
	errOut io.Writer
	logger *logrus.Logger

	rect  core.Rectangle
	set   core.ShapeSet
	tiers []int
	seed  uint64
	opts  sampler.Options

	// progress draws a pb bar per tier on errOut
	progress bool
}

// execute runs the tiers in order, printing one line per tier
// dash, when set, is told which tier is active and receives each result
func (r *tierRun) execute(ctx context.Context, dash *render.Dashboard) ([]sampler.Result, error) {
	results := make([]sampler.Result, 0, len(r.tiers))
	for i, n := range r.tiers {
		if dash != nil {
			dash.SetActive(i)
		}

		opts := r.opts
		var bar *report.ProgressBar
		if r.progress {
			bar = report.NewProgressBar(r.errOut, int64(n), fmt.Sprintf("%d", n))
			opts.Tracker = bar
		}

		res, err := sampler.New(opts).Estimate(ctx, sampler.Request{
			Rectangle: r.rect,
			Shapes:    r.set,
			Samples:   n,
		})
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return results, errors.Wrapf(err, "tier %d", n)
		}

		report.Tier(r.out, res)
		if dash != nil {
			dash.Complete(i, res)
		}
		results = append(results, res)
	}
	return results, nil
}

// executeDashboard runs the tiers under the tcell dashboard
// Report lines are held back until the screen is restored; after the last tier the
// dashboard stays up until the quit key
func (r *tierRun) executeDashboard(ctx context.Context) ([]sampler.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	metrics := status.NewRegistry()
	dash := render.NewDashboard(screen, metrics, r.rect, r.set, r.tiers, r.seed)

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if p := recover(); p != nil {
			handleCrash(screen, p)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if p := recover(); p != nil {
				handleCrash(screen, p)
			}
		}()
		dash.Run(runCtx, cancel)
	}()

	var held bytes.Buffer
	tr := *r
	tr.out = &held
	tr.progress = false
	tr.opts.Metrics = metrics

	results, err := tr.execute(runCtx, dash)
	if err == nil {
		<-runCtx.Done()
	}
	cancel()
	wg.Wait()
	dash.Close()
	r.logger.WithFields(logrus.Fields(metrics.Fields())).Debug("dashboard closed")

	report.Scene(r.out, r.rect, r.set)
	report.Header(r.out, r.seed)
	if _, werr := held.WriteTo(r.out); werr != nil {
		r.logger.WithError(werr).Warn("flush report")
	}
	if errors.Is(err, context.Canceled) && ctx.Err() == nil {
		return results, errors.Wrap(err, "stopped from dashboard")
	}
	return results, err
}

// handleCrash resets the terminal and prints the stack trace
func handleCrash(screen tcell.Screen, p any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\n\x1b[31mMCAREA CRASHED: %v\x1b[0m\n", p)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}
