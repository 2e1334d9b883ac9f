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
		{"zero", 0, 0},
		{"full scale", 1, math.MaxInt16},
		{"negative full scale", -1, -math.MaxInt16},
		{"half truncates", 0.5, 16383},
		{"negative half truncates", -0.5, -16383},
		{"small", 0.001, 32},
		{"clamp over", 1.5, math.MaxInt16},
		{"clamp under", -100, -math.MaxInt16},
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

func TestFloat32ToInt16_SymmetricAndMonotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for i := -99; i <= 100; i++ {
		f := float32(i) / 100
		cur := Float32ToInt16(f)
		if cur < prev {
			t.Fatalf("Float32ToInt16(%v) = %d, below previous %d", f, cur, prev)
		}
		if neg := Float32ToInt16(-f); neg != -cur {
			t.Fatalf("Float32ToInt16(%v) = %d, Float32ToInt16(%v) = %d", f, cur, -f, neg)
		}
		prev = cur
	}
}

func TestClampInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"rounds up", 99.5, 100},
		{"rounds down", 99.4, 99},
		{"negative rounds away", -99.5, -100},
		{"max", 32767, math.MaxInt16},
		{"over max", 40000, math.MaxInt16},
		{"min", -32768, math.MinInt16},
		{"under min", -1e9, math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClampInt16(tt.input); got != tt.want {
				t.Errorf("ClampInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampInt16_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = ClampInt16(1234.5)
		_ = Float32ToInt16(0.25)
	})
	if allocs != 0 {
		t.Errorf("conversion allocated %v times, want 0", allocs)
	}
}

func BenchmarkClampInt16(b *testing.B) {
	in := make([]float32, 4096)
	for i := range in {
		in[i] = float32(math.Sin(float64(i)*0.01)) * 40000
	}
	out := make([]int16, len(in))

	b.ReportAllocs()
	for b.Loop() {
		for i, v := range in {
			out[i] = ClampInt16(v)
		}
	}
}
