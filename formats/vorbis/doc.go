// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples are passed through as
// interleaved values in [-1.0, 1.0] with the channel count of the stream.
//
//	source, err := vorbis.Decoder{}.Decode(file)
package vorbis
