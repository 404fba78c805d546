// Package testutil provides shared fixtures and assertions for spectrum tests.
package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps (absolute).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// GaussianLine evaluates a single peak-height-parameterized emission line
// on the axis x.
func GaussianLine(x []float64, center, height, stdev float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := v - center
		out[i] = height * math.Exp(-d*d/(2*stdev*stdev))
	}

	return out
}

// LampSpectrum sums peak-height-parameterized emission lines on the axis x.
// heights, centers, and stdevs must have equal length.
func LampSpectrum(x []float64, heights, centers, stdevs []float64) []float64 {
	out := make([]float64, len(x))
	for j := range heights {
		line := GaussianLine(x, centers[j], heights[j], stdevs[j])
		for i := range out {
			out[i] += line[i]
		}
	}

	return out
}

// DeltaComb places unit impulses at the given sample indices, the idealized
// spectrum of a lamp before instrumental broadening.
func DeltaComb(samples int, indices ...int) []float64 {
	out := make([]float64, samples)
	for _, idx := range indices {
		if idx >= 0 && idx < samples {
			out[idx] = 1
		}
	}

	return out
}
