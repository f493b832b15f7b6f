// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to signed 16-bit
// PCM. Values outside the range are clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Quantize converts a normalized sample in [-1, 1] to an integer PCM value
// at the given bit depth. WAV stores 8-bit samples unsigned with a 128
// offset; 16-, 24- and 32-bit samples are signed. Unknown depths fall back
// to 16-bit.
func Quantize(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	switch bitDepth {
	case 8:
		return int(x*127.0) + 128
	case 24:
		return int(x * 8388607.0)
	case 32:
		return int(x * 2147483647.0)
	default:
		return int(x * 32767.0)
	}
}
