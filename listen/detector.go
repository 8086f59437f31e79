// SPDX-License-Identifier: EPL-2.0

package listen

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
)

const (
	DefaultSampleRate = 8000
	DefaultWindow     = 5 * time.Millisecond
	DefaultThreshold  = 0.5

	dashUnits      = 2
	letterGapUnits = 2
	wordGapUnits   = 5
)

type Config struct {
	// SampleRate the input is resampled to before analysis.
	SampleRate int
	// Window is the envelope resolution.
	Window time.Duration
	// Threshold is the key-down level as a fraction of the peak envelope.
	Threshold float64
	// Unit is the dot length. Zero estimates it from the input.
	Unit time.Duration
}

type Detector struct {
	cfg Config
}

var defaultDetector = New(Config{})

func New(cfg Config) *Detector {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Unit < 0 {
		cfg.Unit = 0
	}
	return &Detector{cfg: cfg}
}

func (d *Detector) Config() Config { return d.cfg }

type run struct {
	on      bool
	windows int
}

// Detect reads src to the end and returns the Morse string it carries.
func (d *Detector) Detect(src audio.Source) (string, error) {
	samples, err := audio.ReadAll(audio.Normalize(src, d.cfg.SampleRate), 0)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	env := envelope(samples, max(int(int64(d.cfg.Window)*int64(d.cfg.SampleRate)/int64(time.Second)), 1))
	runs := d.runs(env)
	if len(runs) == 0 {
		return "", ErrNoSignal
	}

	unit := d.unit(runs)

	var b strings.Builder
	for _, r := range runs {
		n := float64(r.windows)
		switch {
		case r.on && n < dashUnits*unit:
			b.WriteByte('.')
		case r.on:
			b.WriteByte('-')
		case n < letterGapUnits*unit:
		case n < wordGapUnits*unit:
			b.WriteByte(' ')
		default:
			b.WriteString(" / ")
		}
	}

	return b.String(), nil
}

// envelope is the mean absolute value of each window.
func envelope(samples []float32, size int) []float64 {
	out := make([]float64, 0, len(samples)/size+1)
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		var sum float64
		for _, v := range samples[start:end] {
			sum += math.Abs(float64(v))
		}
		out = append(out, sum/float64(end-start))
	}
	return out
}

// runs keys env against the threshold and collapses it into runs with the
// leading and trailing silence removed.
func (d *Detector) runs(env []float64) []run {
	var peak float64
	for _, v := range env {
		peak = max(peak, v)
	}
	if peak == 0 {
		return nil
	}
	level := d.cfg.Threshold * peak

	var runs []run
	for _, v := range env {
		on := v >= level
		if len(runs) > 0 && runs[len(runs)-1].on == on {
			runs[len(runs)-1].windows++
			continue
		}
		runs = append(runs, run{on: on, windows: 1})
	}

	if len(runs) > 0 && !runs[0].on {
		runs = runs[1:]
	}
	if len(runs) > 0 && !runs[len(runs)-1].on {
		runs = runs[:len(runs)-1]
	}
	return runs
}

// unit returns the dot length in windows.
func (d *Detector) unit(runs []run) float64 {
	if d.cfg.Unit > 0 {
		return float64(d.cfg.Unit) / float64(d.cfg.Window)
	}

	shortest := math.MaxInt
	for _, r := range runs {
		shortest = min(shortest, r.windows)
	}
	return float64(shortest)
}

// Detect runs the default detector: 8000 Hz, 5 ms windows, half-peak
// threshold, estimated unit.
func Detect(src audio.Source) (string, error) {
	return defaultDetector.Detect(src)
}
