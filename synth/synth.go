// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"math"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/wav"
	"github.com/Katlego-Ram2/MorseCodeTranslator/utils"
)

const DefaultSampleRate = 44100

// ContainerEncoder wraps signed 8-bit mono PCM in an audio file.
type ContainerEncoder interface {
	EncodePCM8(sampleRate int, samples []int8) ([]byte, error)
}

// Config of a Synthesizer. Zero fields take their defaults: 44100 Hz,
// DefaultSchedule, the International alphabet and the WAV encoder.
type Config struct {
	SampleRate int
	Schedule   Schedule
	Transducer *code.Transducer
	Encoder    ContainerEncoder
}

// Synthesizer turns text into Morse audio. It is immutable once built and
// safe for concurrent use.
type Synthesizer struct {
	rate     int
	schedule Schedule
	tr       *code.Transducer
	enc      ContainerEncoder
}

var defaultSynthesizer = New(Config{})

func New(cfg Config) *Synthesizer {
	s := &Synthesizer{
		rate:     cfg.SampleRate,
		schedule: cfg.Schedule,
		tr:       cfg.Transducer,
		enc:      cfg.Encoder,
	}

	if s.rate <= 0 {
		s.rate = DefaultSampleRate
	}
	if s.schedule == (Schedule{}) {
		s.schedule = DefaultSchedule()
	}
	if s.tr == nil {
		s.tr = code.NewTransducer(nil)
	}
	if s.enc == nil {
		s.enc = wav.Encoder{}
	}

	return s
}

func (s *Synthesizer) SampleRate() int { return s.rate }

func (s *Synthesizer) Schedule() Schedule { return s.schedule }

// Transducer is the transducer Synthesize encodes text with.
func (s *Synthesizer) Transducer() *code.Transducer { return s.tr }

// Render expands a Morse string into signed 8-bit samples.
func (s *Synthesizer) Render(morse string) []int8 {
	out := make([]int8, 0, sampleCount(s.schedule.Duration(morse), s.rate))
	step := 2 * math.Pi * s.schedule.Frequency / float64(s.rate)

	for _, r := range morse {
		for _, seg := range s.schedule.Segments(r) {
			n := sampleCount(seg.Duration, s.rate)
			if !seg.Tone {
				out = append(out, make([]int8, n)...)
				continue
			}
			for i := range n {
				out = append(out, int8(math.Round(127*math.Sin(step*float64(i)))))
			}
		}
	}

	return out
}

// Synthesize encodes text and returns it as an audio file.
func (s *Synthesizer) Synthesize(text string) ([]byte, error) {
	samples := s.Render(s.tr.Encode(text))
	if len(samples) == 0 {
		return nil, ErrEmptyWaveform
	}

	data, err := s.enc.EncodePCM8(s.rate, samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoderUnavailable, err)
	}
	return data, nil
}

// GenerateAudio is Synthesize with every failure mapped to an empty slice.
func (s *Synthesizer) GenerateAudio(text string) []byte {
	data, err := s.Synthesize(text)
	if err != nil {
		return []byte{}
	}
	return data
}

// Source renders text as a mono audio.Source at the synthesizer rate.
func (s *Synthesizer) Source(text string) audio.Source {
	return &pcmSource{rate: s.rate, samples: s.Render(s.tr.Encode(text))}
}

// GenerateAudio renders text with the default synthesizer: 800 Hz, 100 ms
// dot, 8-bit mono WAV at 44100 Hz.
func GenerateAudio(text string) []byte {
	return defaultSynthesizer.GenerateAudio(text)
}

type pcmSource struct {
	rate    int
	samples []int8
	pos     int
}

func (p *pcmSource) SampleRate() int { return p.rate }
func (p *pcmSource) Channels() int   { return 1 }
func (p *pcmSource) BufSize() int    { return 4096 }
func (p *pcmSource) Close() error    { return nil }

func (p *pcmSource) ReadSamples(dst []float32) (int, error) {
	if p.pos >= len(p.samples) {
		return 0, io.EOF
	}

	n := min(len(dst), len(p.samples)-p.pos)
	for i, v := range p.samples[p.pos : p.pos+n] {
		dst[i] = utils.Int8ToFloat32(v)
	}
	p.pos += n

	if p.pos >= len(p.samples) {
		return n, io.EOF
	}
	return n, nil
}
