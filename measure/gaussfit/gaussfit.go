// Package gaussfit fits a normalized 1-D Gaussian to sampled data by
// nonlinear least squares.
package gaussfit

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Errors returned by fitting functions.
var (
	ErrEmptyInput     = errors.New("gaussfit: input is empty")
	ErrLengthMismatch = errors.New("gaussfit: x and y must have the same length")
)

// Iteration caps for the solver. The objective is non-convex and the fit
// is sensitive to the seed, so the solver is given generous headroom and
// its final iterate is accepted regardless of convergence status.
const (
	maxMajorIterations = 10000
	maxFuncEvaluations = 100000
)

// Params describes the Gaussian a * (1/sqrt(2*pi*sigma^2)) * exp(-(x-mu)^2/(2*sigma^2)).
// Amplitude is the area under the curve; the height at the center is
// Amplitude / (|Stdev| * sqrt(2*pi)).
type Params struct {
	Amplitude float64
	Mean      float64
	Stdev     float64
}

// Eval returns the model value at x.
func (p Params) Eval(x float64) float64 {
	return gauss(p.Amplitude, p.Mean, p.Stdev, x)
}

// Height returns the model value at the center of the Gaussian.
func (p Params) Height() float64 {
	return p.Amplitude / math.Sqrt(2*math.Pi*p.Stdev*p.Stdev)
}

func gauss(a, mu, sigma, x float64) float64 {
	d := x - mu
	return a / math.Sqrt(2*math.Pi*sigma*sigma) * math.Exp(-d*d/(2*sigma*sigma))
}

// Fit minimizes the sum of squared residuals between the Gaussian model and
// the (x, y) samples, starting from guess. The whole arrays take part in the
// fit; callers fitting a single line out of many rely on the seed dominating.
//
// Fit does not judge convergence. If the solver stalls or diverges it still
// returns its last iterate, which may contain NaN or non-physical values
// (negative amplitude or stdev). Validating the result is the caller's job.
func Fit(x, y []float64, guess Params) (Params, error) {
	if len(x) == 0 {
		return Params{}, ErrEmptyInput
	}

	if len(x) != len(y) {
		return Params{}, ErrLengthMismatch
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			a, mu, sigma := p[0], p[1], p[2]
			if sigma == 0 {
				return math.Inf(1)
			}

			sum := 0.0
			for i := range x {
				r := gauss(a, mu, sigma, x[i]) - y[i]
				sum += r * r
			}

			return sum
		},
		Grad: func(grad, p []float64) {
			a, mu, sigma := p[0], p[1], p[2]
			grad[0], grad[1], grad[2] = 0, 0, 0

			if sigma == 0 {
				return
			}

			for i := range x {
				g := gauss(a, mu, sigma, x[i])
				r := g - y[i]
				d := x[i] - mu

				// dg/da = g/a without the division: evaluate the unit-area
				// density directly so a == 0 stays well defined.
				phi := gauss(1, mu, sigma, x[i])

				grad[0] += 2 * r * phi
				grad[1] += 2 * r * g * d / (sigma * sigma)
				grad[2] += 2 * r * g * (d*d/(sigma*sigma*sigma) - 1/sigma)
			}
		},
	}

	seed := []float64{guess.Amplitude, guess.Mean, guess.Stdev}

	settings := &optimize.Settings{
		MajorIterations: maxMajorIterations,
		FuncEvaluations: maxFuncEvaluations,
	}

	result, err := optimize.Minimize(problem, seed, settings, &optimize.BFGS{})
	if err != nil || result == nil {
		// Solver gave up. Report whatever it last computed; the seed if
		// it produced nothing at all.
		if result != nil && len(result.X) == 3 {
			return Params{Amplitude: result.X[0], Mean: result.X[1], Stdev: result.X[2]}, nil
		}

		return guess, nil
	}

	return Params{Amplitude: result.X[0], Mean: result.X[1], Stdev: result.X[2]}, nil
}
