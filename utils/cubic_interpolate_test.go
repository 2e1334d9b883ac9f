// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{"start is y1", -500, 1000, 2000, 9000, 0, 1000},
		{"end is y2", -500, 1000, 2000, 9000, 1, 2000},
		{"constant", 300, 300, 300, 300, 0.37, 300},
		{"line midpoint", 0, 1000, 2000, 3000, 0.5, 1500},
		{"line quarter", -3000, -2000, -1000, 0, 0.25, -1750},
		// symmetric bump: -1/16 * (y0 + y3) + 9/16 * (y1 + y2)
		{"bump midpoint", 0, 16000, 16000, 0, 0.5, 18000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-3 {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Monotonic(t *testing.T) {
	t.Parallel()

	prev := float32(math.Inf(-1))
	for i := range 101 {
		x := float32(i) / 100
		got := CubicInterpolate(0, 100, 200, 300, x)
		if got < prev {
			t.Fatalf("CubicInterpolate at %v = %v, below previous %v", x, got, prev)
		}
		prev = got
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(500, 1000, 800, 300, 0.5)
	})
	if allocs != 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	samples := make([]float32, 4096)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i)*0.05)) * 20000
	}

	var sink float32
	b.ReportAllocs()
	for b.Loop() {
		for i := 1; i+2 < len(samples); i++ {
			sink += CubicInterpolate(samples[i-1], samples[i], samples[i+1], samples[i+2], 0.5)
		}
	}
	_ = sink
}
