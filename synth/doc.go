// SPDX-License-Identifier: EPL-2.0

// Package synth renders Morse code as audio.
//
// Text is encoded with a code.Transducer, then each Morse character is
// expanded into tone and silence segments following a Schedule:
//
//	.  tone Dot, silence Gap
//	-  tone Dash, silence Gap
//	   silence LetterGap
//	/  silence WordGap
//
// Anything else, including the unknown marker "?", produces no sound.
//
// # Waveform
//
// Tones are sine waves at Schedule.Frequency, quantized to signed 8-bit as
// round(127 * sin(2*pi*f*i/rate)). The phase restarts at zero on every
// segment. Silence is zero. Segment lengths are duration*rate computed in
// integer nanoseconds, so the default 100 ms unit is exactly 4410 samples at
// 44100 Hz.
//
// # Usage
//
//	data := synth.GenerateAudio("SOS")
//	os.WriteFile("sos.wav", data, 0o644)
//
// GenerateAudio never fails: anything that would be an error yields an
// empty slice. Use Synthesizer.Synthesize to see the reason:
//
//	s := synth.New(synth.Config{Schedule: synth.ScheduleFromWPM(25, 600)})
//	data, err := s.Synthesize("CQ CQ")
//	if errors.Is(err, synth.ErrEmptyWaveform) {
//	    // nothing audible in the input
//	}
//
// The waveform is also available as an audio.Source, for resampling or for
// feeding the listener:
//
//	src := s.Source("PARIS")
//	pcm := audio.Normalize(src, 8000)
package synth
