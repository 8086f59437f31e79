// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/seekbuf"
)

const (
	pcmFormat  = 1
	headerSize = 44
)

// Encode writes samples as a mono PCM WAV stream. samples hold the values
// exactly as stored: unsigned 0..255 for 8-bit, signed for 16-bit.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []int) error {
	if bitDepth != 8 && bitDepth != 16 {
		return fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}
	// the encoder only emits a header on the first Write
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize header: %w", err)
	}

	return nil
}

// Bytes8 encodes signed 8-bit samples as an unsigned 8-bit WAV in memory.
func Bytes8(sampleRate int, samples []int8) ([]byte, error) {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s) + 128
	}

	buf := seekbuf.New(headerSize + len(samples))
	if err := Encode(buf, sampleRate, 8, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Bytes16(sampleRate int, samples []int16) ([]byte, error) {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := seekbuf.New(headerSize + 2*len(samples))
	if err := Encode(buf, sampleRate, 16, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder wraps 8-bit PCM in a WAV container.
type Encoder struct{}

func (Encoder) EncodePCM8(sampleRate int, samples []int8) ([]byte, error) {
	return Bytes8(sampleRate, samples)
}
