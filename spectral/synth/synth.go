// Package synth generates synthetic calibration lamp spectra for tests,
// benchmarks, and demos.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Line describes one emission line by its observable shape.
type Line struct {
	Center float64 // line center on the wavelength axis
	Height float64 // peak height above the baseline
	Stdev  float64 // Gaussian width
}

// Generator creates deterministic synthetic spectra.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured spectrum generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Seed returns the generator's noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the generator's noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Axis returns an evenly spaced wavelength axis.
func Axis(start, step float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("axis samples must be > 0: %d", samples)
	}
	if step <= 0 {
		return nil, fmt.Errorf("axis step must be > 0: %f", step)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out, nil
}

// Lamp evaluates the sum of the given emission lines on the axis x.
func (g *Generator) Lamp(x []float64, lines []Line) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("lamp axis must not be empty")
	}

	for i, l := range lines {
		if l.Stdev <= 0 {
			return nil, fmt.Errorf("lamp line %d stdev must be > 0: %f", i, l.Stdev)
		}
	}

	out := make([]float64, len(x))
	for _, l := range lines {
		twoSigmaSq := 2 * l.Stdev * l.Stdev
		for i, v := range x {
			d := v - l.Center
			out[i] += l.Height * math.Exp(-d*d/twoSigmaSq)
		}
	}

	return out, nil
}

// Continuum evaluates a linear continuum level + slope*(x - x[0]) on the
// axis x. Lamp spectra sit on a weak continuum from the lamp envelope.
func (g *Generator) Continuum(x []float64, level, slope float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("continuum axis must not be empty")
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = level + slope*(v-x[0])
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Add sums b into a in place.
func Add(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("add length mismatch: %d vs %d", len(a), len(b))
	}

	for i := range a {
		a[i] += b[i]
	}

	return nil
}

// ApplyResponse multiplies flux in place by the instrument response curve,
// e.g. a blaze function or detector sensitivity.
func ApplyResponse(flux, response []float64) error {
	if len(flux) != len(response) {
		return fmt.Errorf("response length mismatch: %d vs %d", len(flux), len(response))
	}

	vecmath.MulBlockInPlace(flux, response)

	return nil
}
