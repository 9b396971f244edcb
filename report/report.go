// Package report writes scenes and estimates as console text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/sampler"
)

// Scene lists the rectangle and every shape, numbering from 1
func Scene(w io.Writer, rect core.Rectangle, set core.ShapeSet) {
	fmt.Fprintf(w, "\tAll created figures.\n")
	fmt.Fprintf(w, "Rectangle: width = %.2f, height = %.2f\n", rect.Width, rect.Height)
	for i, c := range set.Circles {
		fmt.Fprintf(w, "Circle %d: center(%.2f, %.2f), radius = %.2f\n",
			i+1, c.Center.X, c.Center.Y, c.Radius)
	}
	for i, t := range set.Triangles {
		fmt.Fprintf(w, "Triangle %d: center(%.2f, %.2f), side = %.2f, angle = %.2f°\n",
			i+1, t.Center.X, t.Center.Y, t.Side, t.Angle)
	}
}

// Header precedes the per-tier lines
func Header(w io.Writer, seed uint64) {
	fmt.Fprintf(w, "\n\tArea calculation (seed %d).\n", seed)
}

// Tier writes one estimate line
func Tier(w io.Writer, r sampler.Result) {
	fmt.Fprintf(w, "Points: %d, Area estimate: %f (± %.4f, %.0f%% CI [%.4f, %.4f])\n",
		r.Samples, r.Area, r.StdErr, r.Confidence*100, r.Low, r.High)
}

// Summary writes an aligned table of all tiers
func Summary(w io.Writer, results []sampler.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "samples\tsafe\tfraction\tarea\tcovered\tstderr\tbatch stderr\tworkers\telapsed\tsamples/s\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%d\t%s\t%.0f\t\n",
			r.Samples, r.Safe, r.SafeFraction(), r.Area, r.CoveredArea(), r.StdErr, r.BatchStdErr,
			r.Workers, r.Elapsed.Round(time.Microsecond), r.Throughput())
	}
	return tw.Flush()
}
