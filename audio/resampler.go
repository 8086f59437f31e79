// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams src at a new sample rate using cubic interpolation.
// Works on interleaved samples and preserves the channel count. A one-pole
// low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the output position, window[0] and
	// window[3] are the outer taps of the cubic.
	window [4][]float32
	filled [4]bool
	pos    float64
	primed bool
	eof    bool
	done   bool

	frame []float32

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// catmullRom interpolates between y1 and y2 at t in [0,1).
func catmullRom(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*t+a1)*t+a2)*t + y1
}

func (r *Resampler) read(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	if n > 0 {
		copy(dst, r.frame[:n])
	}
	return n > 0, err
}

// prime loads the first four frames, repeating the last one when the source
// is shorter than that.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.window {
		ok, err := r.read(r.window[i])
		if ok {
			r.filled[i] = true
			if i == 0 {
				copy(r.state, r.window[0])
			}
		}

		if err == io.EOF {
			r.eof = true
			last := i
			if !ok {
				last--
			}
			if last < 0 {
				return io.EOF
			}
			for j := last + 1; j < len(r.window); j++ {
				copy(r.window[j], r.window[last])
				r.filled[j] = true
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	ok, err := r.read(r.window[3])
	r.filled[3] = ok
	if ok && r.lowpass {
		for c, v := range r.window[3] {
			v = r.alpha*v + (1-r.alpha)*r.state[c]
			r.window[3][c] = v
			r.state[c] = v
		}
	}

	if err == io.EOF {
		r.eof = true
		if !ok {
			return io.EOF
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) tap(i, fallback, c int) float32 {
	if r.filled[i] {
		return r.window[i][c]
	}
	return r.window[fallback][c]
}

// ReadSamples produces samples at the destination rate. len(dst) must be a
// multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			r.done = err == io.EOF
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				r.done = err == io.EOF
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			r.done = true
			return written * r.channels, io.EOF
		}

		t := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = catmullRom(r.tap(0, 1, c), r.window[1][c], r.window[2][c], r.tap(3, 2, c), t)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
