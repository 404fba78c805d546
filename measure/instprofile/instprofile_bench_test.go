package instprofile

import (
	"math"
	"testing"
)

func benchmarkSpectrum(lines int) (x, y []float64) {
	x = make([]float64, 4096)
	y = make([]float64, 4096)
	for i := range x {
		x[i] = 0.1 * float64(i)
	}

	spacing := x[len(x)-1] / float64(lines+1)
	for l := 1; l <= lines; l++ {
		center := spacing * float64(l)
		for i, v := range x {
			d := v - center
			y[i] += math.Exp(-d * d / (2 * 0.5 * 0.5))
		}
	}

	return x, y
}

func BenchmarkProfile8Lines(b *testing.B) {
	x, y := benchmarkSpectrum(8)
	prof := NewProfiler(Config{})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := prof.Profile(x, y, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFitAll8Lines(b *testing.B) {
	x, y := benchmarkSpectrum(8)
	prof := NewProfiler(Config{})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := prof.FitAll(x, y, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}
