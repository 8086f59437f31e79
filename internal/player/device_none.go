// SPDX-License-Identifier: EPL-2.0

//go:build !darwin && !windows && !playdevice

package player

import "context"

// Device is unavailable in this build; NewDevice always fails.
type Device struct{}

func NewDevice() (*Device, error) { return nil, ErrNoDevice }

func (d *Device) Name() string { return "audio device" }

func (d *Device) Play(context.Context, []byte) error { return ErrNoDevice }
