// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"os"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/aiff"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/mp3"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/vorbis"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/wav"
	"github.com/Katlego-Ram2/MorseCodeTranslator/listen"
	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

// Encode converts text to Morse code.
func Encode(text string) string { return code.Encode(text) }

// Decode converts Morse code to text.
func Decode(morse string) string { return code.Decode(morse) }

// GenerateAudio renders text as a mono 8-bit 44100 Hz WAV file. It returns
// an empty slice when nothing can be rendered.
func GenerateAudio(text string) []byte { return synth.GenerateAudio(text) }

var defaultSynth = synth.New(synth.Config{})

// GenerateAudio16 renders text as a mono 16-bit WAV file at sampleRate.
// sampleRate <= 0 keeps 44100 Hz.
func GenerateAudio16(text string, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		sampleRate = defaultSynth.SampleRate()
	}

	pcm16, rate, err := ResampleToMono16(defaultSynth.Source(text), sampleRate, 4096)
	if err != nil {
		return nil, err
	}
	if len(pcm16) == 0 {
		return nil, synth.ErrEmptyWaveform
	}

	return wav.Bytes16(rate, pcm16)
}

// DefaultRegistry returns a registry of every decoder this module ships,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Listen detects keyed Morse in src and decodes it.
func Listen(src audio.Source) (morse, text string, err error) {
	morse, err = listen.Detect(src)
	if err != nil {
		return "", "", err
	}
	return morse, code.Decode(morse), nil
}

// ListenFile opens path, decodes it by extension and listens to it.
func ListenFile(path string) (morse, text string, err error) {
	dec, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return "", "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	return Listen(src)
}
