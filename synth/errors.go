// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrEmptyWaveform is returned when the input renders to no samples.
	ErrEmptyWaveform = errors.New("morse input produced no audio")

	// ErrEncoderUnavailable wraps a container encoder failure.
	ErrEncoderUnavailable = errors.New("audio container encoder failed")
)
