// Package profile summarizes measured instrumental profiles.
package profile

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-spectro/measure/instprofile"
)

// Stats holds summary statistics of an instrumental profile.
type Stats struct {
	Count int

	MeanFWHM   float64
	MedianFWHM float64
	MinFWHM    float64
	MaxFWHM    float64
	StdevFWHM  float64 // sample standard deviation, 0 for fewer than 2 points

	// MeanResolvingPower is the mean of wavelength/FWHM, the
	// spectroscopist's R, taken over the points with nonzero FWHM.
	MeanResolvingPower float64

	WavelengthMin float64
	WavelengthMax float64
}

// Calculate computes summary statistics over a measured profile in a single
// pass, using Welford's online algorithm for the variance. An empty profile
// yields a zero-valued Stats with NaN extrema.
func Calculate(points []instprofile.Point) Stats {
	n := len(points)
	if n == 0 {
		return Stats{
			MinFWHM:       math.NaN(),
			MaxFWHM:       math.NaN(),
			MedianFWHM:    math.NaN(),
			WavelengthMin: math.NaN(),
			WavelengthMax: math.NaN(),
		}
	}

	var (
		mean   float64
		m2     float64
		rSum   float64
		rCount int
		minF   = points[0].FWHM
		maxF   = points[0].FWHM
		minW   = points[0].Wavelength
		maxW   = points[0].Wavelength
		fwhms  = make([]float64, n)
	)

	for i, p := range points {
		fwhms[i] = p.FWHM

		// Welford update.
		delta := p.FWHM - mean
		mean += delta / float64(i+1)
		m2 += delta * (p.FWHM - mean)

		if p.FWHM < minF {
			minF = p.FWHM
		}
		if p.FWHM > maxF {
			maxF = p.FWHM
		}
		if p.Wavelength < minW {
			minW = p.Wavelength
		}
		if p.Wavelength > maxW {
			maxW = p.Wavelength
		}

		if p.FWHM != 0 {
			rSum += p.Wavelength / p.FWHM
			rCount++
		}
	}

	stdev := 0.0
	if n > 1 {
		stdev = math.Sqrt(m2 / float64(n-1))
	}

	sort.Float64s(fwhms)

	median := fwhms[n/2]
	if n%2 == 0 {
		median = (fwhms[n/2-1] + fwhms[n/2]) / 2
	}

	meanR := 0.0
	if rCount > 0 {
		meanR = rSum / float64(rCount)
	}

	return Stats{
		Count:              n,
		MeanFWHM:           mean,
		MedianFWHM:         median,
		MinFWHM:            minF,
		MaxFWHM:            maxF,
		StdevFWHM:          stdev,
		MeanResolvingPower: meanR,
		WavelengthMin:      minW,
		WavelengthMax:      maxW,
	}
}
