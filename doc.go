// SPDX-License-Identifier: EPL-2.0

// Package morse translates between text and Morse code and renders Morse
// code as audio.
//
// # Quick Start
//
//	morse.Encode("SOS")            // "... --- ..."
//	morse.Decode(".... .. / .-")   // "HI A"
//	data := morse.GenerateAudio("SOS")
//	os.WriteFile("sos.wav", data, 0o644)
//
// GenerateAudio produces mono 8-bit WAV at 44100 Hz with an 800 Hz tone and a
// 100 ms dot. It returns an empty slice when there is nothing to render.
// GenerateAudio16 renders the same signal as 16-bit WAV at any sample rate.
//
// # Alphabet
//
// The built-in table covers A-Z, 0-9 and space, which encodes as "/".
// Input is upper-cased first. Characters without a symbol encode as "?",
// and symbols without a character decode as "?".
//
// # Listening
//
// Keyed Morse audio can be read back:
//
//	morse, text, err := morse.ListenFile("sos.wav")
//
// ListenFile picks a decoder by extension from DefaultRegistry:
//   - WAV (PCM 8/16-bit) via formats/wav
//   - AIFF (PCM 8/16/24-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Subpackages
//
//   - code: alphabet and transducer
//   - synth: timing schedules and waveform rendering
//   - listen: envelope keying detector
//   - audio: Source, Decoder, Registry, Resampler, MonoMixer
//   - formats/*: file decoders and the WAV encoder
//
// All functions in this package are safe for concurrent use.
package morse
