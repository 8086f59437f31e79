// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE PCM audio.
//
// Encoding and decoding both go through github.com/go-audio/wav; this package
// adapts it to the audio.Source interface and to in-memory byte slices.
//
// # Supported Formats
//
//   - PCM (format tag 1) only
//   - 8-bit unsigned and 16-bit signed samples
//   - Any channel count and sample rate when decoding, mono when encoding
//
// # Writing WAV Files
//
// Bytes8 and Bytes16 return a complete file in memory:
//
//	samples := []int8{0, 64, 127, 64, 0, -64, -127, -64}
//	data, err := wav.Bytes8(44100, samples)
//
// 8-bit WAV stores samples unsigned, so Bytes8 offsets each signed sample by
// 128 before writing. Encode takes stored values directly and writes to any
// io.WriteSeeker, since the header sizes are patched once the payload is
// known:
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//	err := wav.Encode(f, 8000, 16, []int{0, 1000, -1000})
//
// An empty payload is rejected with ErrNoSamples.
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back interleaved in [-1.0, 1.0]. Decode accepts any
// io.Reader; readers that cannot seek are buffered in memory first.
//
// # File Layout
//
// Files produced here are canonical 44-byte header files:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, channels, sample rate, byte rate,
//     block align, bit depth
//   - data chunk header (8 bytes) followed by the samples
package wav
