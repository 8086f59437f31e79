// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always produces stereo output (mono files are duplicated into
// both channels) at the sample rate of the stream. Samples are converted
// from 16-bit PCM into float32 values in [-1.0, 1.0]:
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	mono := audio.Normalize(source, 8000)
package mp3
