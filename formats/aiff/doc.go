// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files with
// github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Uncompressed PCM at 8, 16 or 24 bits
//   - Any channel count and sample rate
//
// Samples are normalized by bit depth into [-1.0, 1.0]:
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 32-bit or compressed AIFC
//	}
//
// Readers that cannot seek are read fully into memory before decoding,
// since the go-audio decoder needs an io.ReadSeeker.
package aiff
