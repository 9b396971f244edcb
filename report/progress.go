package report

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const barTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{speed . "%s p/s" }}`

// ProgressBar adapts a pb bar to sampler.Tracker
// pb counters are atomic, so Advance is safe from worker goroutines
type ProgressBar struct {
	bar *pb.ProgressBar
}

// NewProgressBar starts a bar for total samples writing to w
func NewProgressBar(w io.Writer, total int64, prefix string) *ProgressBar {
	bar := pb.New64(total)
	bar.SetTemplateString(barTemplate)
	bar.Set("prefix", prefix)
	bar.SetWriter(w)
	bar.Start()
	return &ProgressBar{bar: bar}
}

func (p *ProgressBar) Advance(samples int64) {
	p.bar.Add64(samples)
}

// Current returns the samples counted so far
func (p *ProgressBar) Current() int64 {
	return p.bar.Current()
}

// Finish stops refreshing and prints the final state
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
