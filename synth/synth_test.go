// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
	"github.com/Katlego-Ram2/MorseCodeTranslator/utils"
)

const wavHeaderSize = 44

type failingEncoder struct{ err error }

func (f failingEncoder) EncodePCM8(int, []int8) ([]byte, error) { return nil, f.err }

func TestGenerateAudio_SOS(t *testing.T) {
	t.Parallel()

	data := GenerateAudio("SOS")

	// ... and --- with their gaps, two letter breaks
	wantSamples := 2*3*(4410+4410) + 3*(13230+4410) + 2*13230
	if wantSamples != 132300 {
		t.Fatalf("sample arithmetic = %d", wantSamples)
	}
	if len(data) != wavHeaderSize+wantSamples {
		t.Fatalf("len = %d, want %d", len(data), wavHeaderSize+wantSamples)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", le.Uint32(data[4:8]), uint32(36 + wantSamples)},
		{"audio format", uint32(le.Uint16(data[20:22])), 1},
		{"channels", uint32(le.Uint16(data[22:24])), 1},
		{"sample rate", le.Uint32(data[24:28]), 44100},
		{"byte rate", le.Uint32(data[28:32]), 44100},
		{"block align", uint32(le.Uint16(data[32:34])), 1},
		{"bits per sample", uint32(le.Uint16(data[34:36])), 8},
		{"data size", le.Uint32(data[40:44]), uint32(wantSamples)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Errorf("bad chunk ids: %q", data[:40])
	}
}

func TestGenerateAudio_PayloadIsUnsigned(t *testing.T) {
	t.Parallel()

	data := GenerateAudio("E")
	payload := data[wavHeaderSize:]

	// first tone sample is sin(0), stored as 128
	if payload[0] != 128 {
		t.Errorf("payload[0] = %d, want 128", payload[0])
	}
	// trailing gap is silence
	for i, b := range payload[4410:] {
		if b != 128 {
			t.Fatalf("gap byte %d = %d, want 128", i, b)
		}
	}
}

func TestGenerateAudio_Empty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "@", "#"} {
		got := GenerateAudio(text)
		if got == nil || len(got) != 0 {
			t.Errorf("GenerateAudio(%q) = %v, want empty non-nil slice", text, got)
		}
	}
}

func TestSynthesize_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	s := New(Config{Encoder: failingEncoder{err: boom}})

	_, err := s.Synthesize("SOS")
	if !errors.Is(err, ErrEncoderUnavailable) {
		t.Errorf("Synthesize() error = %v, want ErrEncoderUnavailable", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Synthesize() error = %v, want it to wrap %v", err, boom)
	}

	if got := s.GenerateAudio("SOS"); got == nil || len(got) != 0 {
		t.Errorf("GenerateAudio() with failing encoder = %v, want empty", got)
	}

	if _, err := s.Synthesize(""); !errors.Is(err, ErrEmptyWaveform) {
		t.Errorf("Synthesize(\"\") error = %v, want ErrEmptyWaveform", err)
	}
}

func TestRender_ToneValues(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	samples := s.Render("..")

	if len(samples) != 4*4410 {
		t.Fatalf("len = %d, want %d", len(samples), 4*4410)
	}

	step := 2 * math.Pi * 800 / 44100
	for i := range 4410 {
		want := int8(math.Round(127 * math.Sin(step*float64(i))))
		if samples[i] != want {
			t.Fatalf("samples[%d] = %d, want %d", i, samples[i], want)
		}
		// phase restarts on the second dot
		if samples[8820+i] != want {
			t.Fatalf("samples[%d] = %d, want %d", 8820+i, samples[8820+i], want)
		}
	}
	if samples[1] != 14 {
		t.Errorf("samples[1] = %d, want 14", samples[1])
	}

	for i := 4410; i < 8820; i++ {
		if samples[i] != 0 {
			t.Fatalf("gap sample %d = %d, want 0", i, samples[i])
		}
	}
}

func TestRender_IgnoresUnknown(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	if got := s.Render("?x"); len(got) != 0 {
		t.Errorf("Render(\"?x\") len = %d, want 0", len(got))
	}
	if a, b := len(s.Render(". ?")), len(s.Render(". ")); a != b {
		t.Errorf("unknown changed length: %d vs %d", a, b)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	if s.SampleRate() != DefaultSampleRate {
		t.Errorf("SampleRate() = %d, want %d", s.SampleRate(), DefaultSampleRate)
	}
	if s.Schedule() != DefaultSchedule() {
		t.Errorf("Schedule() = %+v, want default", s.Schedule())
	}
}

func TestNew_CustomConfig(t *testing.T) {
	t.Parallel()

	alphabet, err := code.NewAlphabet(map[rune]string{'K': "-.-"})
	if err != nil {
		t.Fatal(err)
	}
	s := New(Config{
		SampleRate: 8000,
		Schedule:   ScheduleFromWPM(20, 600),
		Transducer: code.NewTransducer(alphabet),
	})

	data, err := s.Synthesize("k")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	// -.- at 60 ms units and 8000 Hz: (3+1)+(1+1)+(3+1) units of 480 samples
	want := wavHeaderSize + 10*480
	if len(data) != want {
		t.Errorf("len = %d, want %d", len(data), want)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if s.Transducer().Alphabet() != alphabet {
		t.Error("Transducer() does not use the configured alphabet")
	}
}

func TestSource(t *testing.T) {
	t.Parallel()

	s := New(Config{SampleRate: 8000})
	want := s.Render(code.Encode("ET"))
	src := s.Source("ET")

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("Source() = %d Hz %d ch, want 8000 Hz 1 ch", src.SampleRate(), src.Channels())
	}

	var got []float32
	buf := make([]float32, 1000)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != utils.Int8ToFloat32(want[i]) {
			t.Fatalf("sample %d = %v, want %v", i, got[i], utils.Int8ToFloat32(want[i]))
		}
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestGenerateAudio_Concurrent(t *testing.T) {
	t.Parallel()

	want := GenerateAudio("HELLO WORLD")
	var wg sync.WaitGroup
	errs := make(chan int, 8)

	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(GenerateAudio("HELLO WORLD"), want) {
				errs <- i
			}
		}()
	}
	wg.Wait()
	close(errs)

	for i := range errs {
		t.Errorf("goroutine %d produced different audio", i)
	}
}

func BenchmarkGenerateAudio(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_ = GenerateAudio("THE QUICK BROWN FOX")
	}
}
