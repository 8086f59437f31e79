// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("unsupported WAV audio format")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNoSamples           = errors.New("no samples to encode")
)
