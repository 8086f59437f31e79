// SPDX-License-Identifier: EPL-2.0

//go:build darwin || windows || playdevice

package player

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DeviceSampleRate is the rate of the process wide audio context. Files at
// other rates are resampled while decoding.
const DeviceSampleRate = 44100

const pollInterval = 20 * time.Millisecond

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Device plays through the system audio device.
type Device struct {
	ctx *audio.Context
}

// NewDevice returns the device backend. ebiten allows a single audio context
// per process; every Device shares it.
func NewDevice() (*Device, error) {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(DeviceSampleRate)
	})
	return &Device{ctx: audioContext}, nil
}

func (d *Device) Name() string { return "audio device" }

func (d *Device) Play(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return ErrNothingToPlay
	}

	stream, err := wav.DecodeWithSampleRate(DeviceSampleRate, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	p, err := d.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("open player: %w", err)
	}
	defer p.Close()

	p.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
