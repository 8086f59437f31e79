// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(clamp(x) * 32767.0)
}

// Float32ToInt8 scales x to the signed 8-bit range, rounding to nearest.
func Float32ToInt8(x float32) int8 {
	return int8(math.Round(float64(clamp(x)) * 127))
}

// Int8ToFloat32 is the inverse of Float32ToInt8.
func Int8ToFloat32(v int8) float32 {
	return float32(v) / 127
}

// IntToFloat32 maps a signed PCM sample of the given bit depth to [-1,1].
// Unsigned 8-bit input must be recentred by the caller first.
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 0
	}
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
