// Package peakdet detects peaks and valleys in sampled 1-D signals using
// hysteresis thresholding.
//
// A running extreme is only confirmed as a peak (or valley) once the signal
// has receded from it by more than delta. This makes the detector robust
// against noise: small wiggles below the threshold never register.
//
// Extrema are confirmed in retrospect, so a peak located at the very last
// sample of the signal is never reported. This is a property of the
// algorithm, not a defect.
package peakdet

import (
	"errors"
	"math"
)

// Errors returned by detection functions.
var (
	ErrEmptySignal    = errors.New("peakdet: signal is empty")
	ErrLengthMismatch = errors.New("peakdet: x and y must have the same length")
	ErrInvalidDelta   = errors.New("peakdet: delta must be positive and finite")
)

// Extremum is a confirmed peak or valley.
type Extremum struct {
	Pos   float64 // x-axis position (sample index when no axis is given)
	Value float64 // signal value at the extremum
}

// scanState tracks which kind of extremum the detector is currently
// confirming. The detector alternates between the two states, committing
// the opposite running extreme at each transition.
type scanState int

const (
	seekingMax scanState = iota
	seekingMin
)

// Detect scans y for peaks and valleys using the hysteresis threshold delta.
// Reported positions are sample indices. Maxima and minima are each returned
// in discovery order, i.e. by increasing position.
func Detect(y []float64, delta float64) (maxima, minima []Extremum, err error) {
	return detect(nil, y, delta)
}

// DetectOnAxis behaves like [Detect] but reports positions on the supplied
// x axis instead of sample indices. x must have the same length as y.
func DetectOnAxis(x, y []float64, delta float64) (maxima, minima []Extremum, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	return detect(x, y, delta)
}

func detect(x, y []float64, delta float64) (maxima, minima []Extremum, err error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return nil, nil, ErrInvalidDelta
	}

	if len(y) == 0 {
		return nil, nil, ErrEmptySignal
	}

	pos := func(i int) float64 {
		if x == nil {
			return float64(i)
		}

		return x[i]
	}

	var (
		mx    = math.Inf(-1)
		mn    = math.Inf(1)
		mxpos = math.NaN()
		mnpos = math.NaN()
		state = seekingMax
	)

	for i, this := range y {
		if this > mx {
			mx = this
			mxpos = pos(i)
		}

		if this < mn {
			mn = this
			mnpos = pos(i)
		}

		switch state {
		case seekingMax:
			// The running maximum is only a real peak once the signal
			// has dropped more than delta below it.
			if this < mx-delta {
				maxima = append(maxima, Extremum{Pos: mxpos, Value: mx})
				mn = this
				mnpos = pos(i)
				state = seekingMin
			}

		case seekingMin:
			if this > mn+delta {
				minima = append(minima, Extremum{Pos: mnpos, Value: mn})
				mx = this
				mxpos = pos(i)
				state = seekingMax
			}
		}
	}

	return maxima, minima, nil
}
