// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Normalize returns src mixed down to mono at sampleRate. The resampler is
// skipped when src already runs at sampleRate.
func Normalize(src Source, sampleRate int) Source {
	var out Source = NewMonoMixer(src)
	if out.SampleRate() != sampleRate {
		out = NewResampler(out, sampleRate)
	}
	return out
}

// ReadAll drains src in reads of bufferSize samples.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % max(src.Channels(), 1)
	if bufferSize == 0 {
		bufferSize = max(src.Channels(), 1)
	}

	out := make([]float32, 0, src.SampleRate()*max(src.Channels(), 1))
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
		if n == 0 && len(buf) > 0 {
			// a source that returns nothing without EOF is finished too
			return out, nil
		}
	}
}
