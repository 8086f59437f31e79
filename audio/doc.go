// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the decoders,
// the synthesizer and the listener.
//
//   - Source, the pull interface every decoder and processor implements
//   - Registry, decoders looked up by format key or file extension
//   - Resampler, sample rate conversion with cubic interpolation
//   - MonoMixer, channel averaging
//   - Normalize and ReadAll, the pipeline the listener runs
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. A read that
// returns io.EOF ends the stream; it may still carry samples.
//
// # Pipelines
//
//	mono := audio.NewMonoMixer(src)
//	at8k := audio.NewResampler(mono, 8000)
//	samples, err := audio.ReadAll(at8k, 4096)
//
// Normalize builds the same chain and skips the resampler when the rate
// already matches.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("message.WAV")
//
// Keys are case-insensitive and a leading dot is ignored, so extensions can
// be used directly.
package audio
