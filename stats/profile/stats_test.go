package profile

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/measure/instprofile"
)

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)

	if s.Count != 0 {
		t.Fatalf("Count = %d, want 0", s.Count)
	}
	if !math.IsNaN(s.MinFWHM) || !math.IsNaN(s.MaxFWHM) || !math.IsNaN(s.MedianFWHM) {
		t.Fatalf("extrema of empty profile should be NaN: %+v", s)
	}
	if s.MeanFWHM != 0 || s.StdevFWHM != 0 {
		t.Fatalf("mean/stdev of empty profile should be 0: %+v", s)
	}
}

func TestCalculateSinglePoint(t *testing.T) {
	s := Calculate([]instprofile.Point{{Wavelength: 500, FWHM: 2}})

	if s.Count != 1 {
		t.Fatalf("Count = %d, want 1", s.Count)
	}
	if s.MeanFWHM != 2 || s.MedianFWHM != 2 || s.MinFWHM != 2 || s.MaxFWHM != 2 {
		t.Fatalf("single point stats wrong: %+v", s)
	}
	if s.StdevFWHM != 0 {
		t.Fatalf("StdevFWHM = %v, want 0", s.StdevFWHM)
	}
	if math.Abs(s.MeanResolvingPower-250) > 1e-12 {
		t.Fatalf("MeanResolvingPower = %v, want 250", s.MeanResolvingPower)
	}
	if s.WavelengthMin != 500 || s.WavelengthMax != 500 {
		t.Fatalf("wavelength span wrong: %+v", s)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	points := []instprofile.Point{
		{Wavelength: 400, FWHM: 1},
		{Wavelength: 500, FWHM: 2},
		{Wavelength: 600, FWHM: 3},
		{Wavelength: 700, FWHM: 10},
	}

	s := Calculate(points)

	if s.Count != 4 {
		t.Fatalf("Count = %d, want 4", s.Count)
	}
	if math.Abs(s.MeanFWHM-4) > 1e-12 {
		t.Fatalf("MeanFWHM = %v, want 4", s.MeanFWHM)
	}
	if math.Abs(s.MedianFWHM-2.5) > 1e-12 {
		t.Fatalf("MedianFWHM = %v, want 2.5", s.MedianFWHM)
	}
	if s.MinFWHM != 1 || s.MaxFWHM != 10 {
		t.Fatalf("min/max wrong: %+v", s)
	}

	// Sample variance of {1,2,3,10} around mean 4: (9+4+1+36)/3.
	wantStdev := math.Sqrt(50.0 / 3.0)
	if math.Abs(s.StdevFWHM-wantStdev) > 1e-12 {
		t.Fatalf("StdevFWHM = %v, want %v", s.StdevFWHM, wantStdev)
	}

	wantR := (400.0/1 + 500.0/2 + 600.0/3 + 700.0/10) / 4
	if math.Abs(s.MeanResolvingPower-wantR) > 1e-12 {
		t.Fatalf("MeanResolvingPower = %v, want %v", s.MeanResolvingPower, wantR)
	}

	if s.WavelengthMin != 400 || s.WavelengthMax != 700 {
		t.Fatalf("wavelength span wrong: %+v", s)
	}
}

func TestCalculateResolvingPowerSkipsZeroFWHM(t *testing.T) {
	points := []instprofile.Point{
		{Wavelength: 400, FWHM: 2},
		{Wavelength: 600, FWHM: 0},
		{Wavelength: 800, FWHM: 4},
	}

	s := Calculate(points)

	// The zero-width point contributes nothing to R, in numerator or
	// denominator: mean of 200 and 200, not diluted to 400/3.
	if math.Abs(s.MeanResolvingPower-200) > 1e-12 {
		t.Fatalf("MeanResolvingPower = %v, want 200", s.MeanResolvingPower)
	}

	// All points zero-width: R is 0, not NaN.
	s = Calculate([]instprofile.Point{{Wavelength: 500, FWHM: 0}})
	if s.MeanResolvingPower != 0 {
		t.Fatalf("all-zero MeanResolvingPower = %v, want 0", s.MeanResolvingPower)
	}
}

func TestCalculateMedianOddCount(t *testing.T) {
	points := []instprofile.Point{
		{Wavelength: 1, FWHM: 5},
		{Wavelength: 2, FWHM: 1},
		{Wavelength: 3, FWHM: 3},
	}

	s := Calculate(points)
	if s.MedianFWHM != 3 {
		t.Fatalf("MedianFWHM = %v, want 3", s.MedianFWHM)
	}
}

func TestCalculateDoesNotReorderInput(t *testing.T) {
	points := []instprofile.Point{
		{Wavelength: 1, FWHM: 5},
		{Wavelength: 2, FWHM: 1},
	}

	Calculate(points)

	if points[0].FWHM != 5 || points[1].FWHM != 1 {
		t.Fatalf("input mutated: %+v", points)
	}
}
