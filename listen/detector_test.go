// SPDX-License-Identifier: EPL-2.0

package listen

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/audiotest"
	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

// 50 ms units at 8000 Hz
const unitSamples = 400

func keyed(pattern string) *audiotest.MockSource {
	return audiotest.NewKeyedSource(8000, unitSamples, 800, 0.8, pattern)
}

func TestDetect_Patterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"dot", "=", "."},
		{"A", "=.===", ".-"},
		{"SOS", "=.=.=...===.===.===...=.=.=", "... --- ..."},
		{"word break", "=.......=", ". / ."},
		{"long word break", "=..........=", ". / ."},
		{"letter break", "=...=", ". ."},
		{"leading and trailing silence", ".....=.===.....", ".-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Detect(keyed(tt.pattern))
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDetect_KnownUnit(t *testing.T) {
	t.Parallel()

	// dashes only cannot be told from dots without the unit
	estimated, err := Detect(keyed("===...==="))
	if err != nil {
		t.Fatal(err)
	}
	if estimated != ".." {
		t.Errorf("estimated = %q, want %q", estimated, "..")
	}

	d := New(Config{Unit: 50 * time.Millisecond})
	got, err := d.Detect(keyed("===...==="))
	if err != nil {
		t.Fatal(err)
	}
	if got != "- -" {
		t.Errorf("Detect() = %q, want %q", got, "- -")
	}
}

func TestDetect_NoSignal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  *audiotest.MockSource
	}{
		{"silent", audiotest.NewSilentSource(8000, 1, 8000)},
		{"empty", audiotest.NewSilentSource(8000, 1, 0)},
		{"silent stereo 44100", audiotest.NewSilentSource(44100, 2, 4410)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Detect(tt.src); !errors.Is(err, ErrNoSignal) {
				t.Errorf("Detect() error = %v, want ErrNoSignal", err)
			}
		})
	}
}

func TestDetect_NoiseFloor(t *testing.T) {
	t.Parallel()

	samples, err := audio.ReadAll(keyed("=.===...==="), 0)
	if err != nil {
		t.Fatal(err)
	}
	// a small hum under the keyed tone
	for i := range samples {
		if i%2 == 0 {
			samples[i] += 0.02
		} else {
			samples[i] -= 0.02
		}
	}

	got, err := Detect(audiotest.NewSliceSource(8000, 1, samples))
	if err != nil {
		t.Fatal(err)
	}
	if got != ".- -" {
		t.Errorf("Detect() = %q, want %q", got, ".- -")
	}
}

func TestDetect_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := Detect(audiotest.ErrSource{Rate: 8000, Err: boom}); !errors.Is(err, boom) {
		t.Errorf("Detect() error = %v, want %v", err, boom)
	}
}

func TestDetect_SynthRoundTrip(t *testing.T) {
	t.Parallel()

	s := synth.New(synth.Config{})
	for _, text := range []string{"SOS", "HELLO WORLD", "E", "CQ DE K1ABC", "73"} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			want := code.Encode(text)
			got, err := Detect(s.Source(text))
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != want {
				t.Errorf("Detect() = %q, want %q", got, want)
			}
			if decoded := code.Decode(got); decoded != text {
				t.Errorf("Decode() = %q, want %q", decoded, text)
			}
		})
	}
}

func TestDetect_WPMRoundTrip(t *testing.T) {
	t.Parallel()

	s := synth.New(synth.Config{Schedule: synth.ScheduleFromWPM(25, 650)})
	got, err := Detect(s.Source("PARIS PARIS"))
	if err != nil {
		t.Fatal(err)
	}
	if want := code.Encode("PARIS PARIS"); got != want {
		t.Errorf("Detect() = %q, want %q", got, want)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := New(Config{Threshold: 3, Unit: -time.Second}).Config()
	want := Config{SampleRate: 8000, Window: 5 * time.Millisecond, Threshold: 0.5}
	if cfg != want {
		t.Errorf("Config() = %+v, want %+v", cfg, want)
	}
}

func TestDetect_Property(t *testing.T) {
	t.Parallel()

	d := New(Config{Unit: 50 * time.Millisecond})

	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.SliceOfN(rapid.StringMatching(`[.-]{1,5}`), 1, 4), 1, 3).Draw(t, "words")

		var pattern, want strings.Builder
		for w, letters := range words {
			if w > 0 {
				pattern.WriteString(".......")
				want.WriteString(" / ")
			}
			for l, letter := range letters {
				if l > 0 {
					pattern.WriteString("...")
					want.WriteByte(' ')
				}
				for e, el := range letter {
					if e > 0 {
						pattern.WriteByte('.')
					}
					if el == '.' {
						pattern.WriteString("=")
					} else {
						pattern.WriteString("===")
					}
				}
				want.WriteString(letter)
			}
		}

		got, err := d.Detect(keyed(pattern.String()))
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if got != want.String() {
			t.Fatalf("Detect(%q) = %q, want %q", pattern.String(), got, want.String())
		}
	})
}

func BenchmarkDetect(b *testing.B) {
	s := synth.New(synth.Config{})

	for b.Loop() {
		if _, err := Detect(s.Source("SOS")); err != nil {
			b.Fatal(err)
		}
	}
}
