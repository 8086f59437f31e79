// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a mock source of totalSamples frames computed by
// waveform.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return value })
}

// NewSliceSource replays interleaved samples.
func NewSliceSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(sample int, channel int) float32 {
		return samples[sample*channels+channel]
	})
}

// NewKeyedSource keys a sine tone on and off following pattern: '=' is one
// unit of tone and '.' one unit of silence, anything else is ignored.
// "=.===" is a dot, a one unit gap and a dash.
func NewKeyedSource(sampleRate int, unitSamples int, frequency float64, amplitude float32, pattern string) *MockSource {
	var keyed []bool
	for _, c := range pattern {
		switch c {
		case '=':
			keyed = append(keyed, true)
		case '.':
			keyed = append(keyed, false)
		}
	}

	return NewMockSource(sampleRate, 1, len(keyed)*unitSamples, func(sample int, _ int) float32 {
		if !keyed[sample/unitSamples] {
			return 0
		}
		t := float64(sample) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// ErrSource fails every read with err.
type ErrSource struct {
	Rate int
	Err  error
}

func (e ErrSource) SampleRate() int                    { return e.Rate }
func (e ErrSource) Channels() int                      { return 1 }
func (e ErrSource) BufSize() int                       { return 4096 }
func (e ErrSource) Close() error                       { return nil }
func (e ErrSource) ReadSamples([]float32) (int, error) { return 0, e.Err }
