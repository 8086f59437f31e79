// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp above", input: 1.5, want: math.MaxInt16},
		{name: "clamp below", input: -2, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float32
		want  int8
	}{
		{0, 0},
		{1, 127},
		{-1, -127},
		{0.5, 64},
		{-0.5, -64},
		{0.004, 1},
		{3, 127},
		{-3, -127},
	}

	for _, tt := range tests {
		if got := Float32ToInt8(tt.input); got != tt.want {
			t.Errorf("Float32ToInt8(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestInt8RoundTrip(t *testing.T) {
	t.Parallel()

	for v := -127; v <= 127; v++ {
		if got := Float32ToInt8(Int8ToFloat32(int8(v))); int(got) != v {
			t.Fatalf("round trip %d = %d", v, got)
		}
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float32
	}{
		{"8-bit min", -128, 8, -1},
		{"8-bit half", 64, 8, 0.5},
		{"16-bit min", math.MinInt16, 16, -1},
		{"16-bit zero", 0, 16, 0},
		{"24-bit quarter", 1 << 21, 24, 0.25},
		{"invalid depth", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IntToFloat32(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func BenchmarkFloat32ToInt8(b *testing.B) {
	for b.Loop() {
		for i := range 256 {
			_ = Float32ToInt8(float32(i-128) / 128)
		}
	}
}
