// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
	"github.com/Katlego-Ram2/MorseCodeTranslator/utils"
)

// IsWAV reports whether header starts with a RIFF/WAVE signature.
func IsWAV(header []byte) bool {
	if len(header) < 12 {
		return false
	}
	return bytes.Equal(header[0:4], riff.RiffID[:]) && bytes.Equal(header[8:12], riff.WavFormatID[:])
}

type wavSource struct {
	dec        *wav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
	buf        *goaudio.IntBuffer
	eof        bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("read pcm: %w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		if s.bitDepth == 8 {
			v -= 128
		}
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	return n, nil
}

// Decoder reads PCM WAV files with 8 or 16 bits per sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read wav: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("format %d: %w", dec.WavAudioFormat, ErrUnsupportedFormat)
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locate data chunk: %w", err)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   bitDepth,
		buf:        &goaudio.IntBuffer{Data: make([]int, 4096)},
	}, nil
}
