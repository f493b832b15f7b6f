// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0.0, 0},
		{"positive full scale", 1.0, 32767},
		{"negative full scale", -1.0, -32767},
		{"half scale", 0.5, 16383},
		{"clamps above range", 1.5, 32767},
		{"clamps below range", -1.5, -32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       float32
		bitDepth int
		want     int
	}{
		{"16-bit zero", 0.0, 16, 0},
		{"16-bit full scale", 1.0, 16, 32767},
		{"16-bit negative full scale", -1.0, 16, -32767},
		{"16-bit half scale", 0.5, 16, 16383},
		{"8-bit midpoint is 128", 0.0, 8, 128},
		{"8-bit full scale", 1.0, 8, 255},
		{"8-bit negative full scale", -1.0, 8, 1},
		{"24-bit full scale", 1.0, 24, 8388607},
		{"24-bit negative full scale", -1.0, 24, -8388607},
		{"32-bit full scale", 1.0, 32, 2147483647},
		{"unknown depth falls back to 16-bit", 1.0, 12, 32767},
		{"clamps above range", 2.0, 16, 32767},
		{"clamps below range", -2.0, 16, -32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Quantize(tt.in, tt.bitDepth); got != tt.want {
				t.Errorf("Quantize(%v, %d) = %d, want %d", tt.in, tt.bitDepth, got, tt.want)
			}
		})
	}
}

// TestQuantize_8BitNeverNegative verifies the unsigned 8-bit range.
func TestQuantize_8BitNeverNegative(t *testing.T) {
	t.Parallel()

	for x := float32(-1.0); x <= 1.0; x += 0.05 {
		v := Quantize(x, 8)
		if v < 0 || v > 255 {
			t.Errorf("Quantize(%v, 8) = %d, outside [0, 255]", x, v)
		}
	}
}

// TestQuantize_ZeroAllocs verifies no heap allocations
func TestQuantize_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Quantize(0.37, 16)
	})

	if allocs > 0 {
		t.Errorf("Quantize allocated %v times, want 0", allocs)
	}
}
