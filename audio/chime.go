// Package audio plays the optional completion chime.
package audio

import (
	"context"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		attack, release = total/2, total-total/2
	}
	return &envelope{streamer: s, attack: attack, release: release, totalSamples: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining <= e.release && e.release > 0 {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps linear gain to beep's log2 volume; 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Tone builds the chime streamer: root note then the fifth above it
func Tone(cfg *ChimeConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	total := rate.N(cfg.Duration)
	attack := rate.N(cfg.Attack)
	release := rate.N(cfg.Release)

	note := func(freq float64) (beep.Streamer, error) {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, errors.Wrapf(err, "sine tone %.1f Hz", freq)
		}
		return newEnvelope(beep.Take(total, sine), total, attack, release), nil
	}

	root, err := note(cfg.Frequency)
	if err != nil {
		return nil, err
	}
	fifth, err := note(cfg.Frequency * 1.5)
	if err != nil {
		return nil, err
	}

	return newVolume(beep.Seq(root, fifth), cfg.Volume), nil
}

// Play initializes the speaker, plays the chime and waits for it or ctx
func Play(ctx context.Context, cfg *ChimeConfig) error {
	tone, err := Tone(cfg)
	if err != nil {
		return err
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
