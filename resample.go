// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"io"

	"github.com/Katlego-Ram2/MorseCodeTranslator/audio"
	"github.com/Katlego-Ram2/MorseCodeTranslator/utils"
)

// ResampleToMono16 mixes src to mono at targetRate and collects it as 16-bit
// PCM. It returns the samples and the rate they are at.
//
//	pcm16, rate, err := morse.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.Normalize(src, targetRate)

	if bufferSize <= 0 {
		bufferSize = mono.BufSize()
	}
	buf := make([]float32, bufferSize)
	pcm16 := make([]int16, 0, targetRate)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
