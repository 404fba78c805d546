package instprofile

import (
	"math"

	"github.com/cwbudde/algo-spectro/measure/gaussfit"
	"github.com/cwbudde/algo-spectro/measure/peakdet"
)

const defaultSeedStdev = 0.1

// Config holds profile measurement parameters.
type Config struct {
	// SeedStdev is the initial standard deviation handed to each per-line
	// Gaussian fit. The fit is seeded with the detected peak position and
	// height, so only the width needs a starting value. Defaults to 0.1
	// in x-axis units when zero or negative.
	SeedStdev float64

	// UpperLimit rejects lines whose fitted FWHM is at or above this
	// value. Diverged fits occasionally settle on absurdly broad
	// Gaussians; the limit cuts those off. Zero disables the check.
	UpperLimit float64
}

// Point is one entry of a measured instrumental profile.
type Point struct {
	Wavelength float64 // fitted line center
	FWHM       float64 // full width at half maximum, in wavelength units
}

// FitStatus classifies the outcome of a single line fit.
type FitStatus int

const (
	// FitAccepted marks a line whose fit passed all validity checks.
	FitAccepted FitStatus = iota

	// FitDiverged marks a fit that produced non-finite parameters.
	FitDiverged

	// FitRejected marks a fit with non-physical parameters: non-positive
	// amplitude, stdev, or line center.
	FitRejected

	// FitAboveLimit marks a valid fit whose FWHM is at or above the
	// configured UpperLimit.
	FitAboveLimit
)

// String returns a short name for the status.
func (s FitStatus) String() string {
	switch s {
	case FitAccepted:
		return "accepted"
	case FitDiverged:
		return "diverged"
	case FitRejected:
		return "rejected"
	case FitAboveLimit:
		return "above-limit"
	default:
		return "unknown"
	}
}

// LineFit is the full outcome of one per-line Gaussian fit.
type LineFit struct {
	Params gaussfit.Params
	Line   Point // meaningful only when Status == FitAccepted
	Status FitStatus
}

// Profiler measures instrumental profiles from lamp spectra.
type Profiler struct {
	cfg Config
}

// NewProfiler creates a Profiler with normalized configuration.
func NewProfiler(cfg Config) *Profiler {
	cfg = normalizeConfig(cfg)
	return &Profiler{cfg: cfg}
}

// Profile is a one-shot instrumental profile measurement.
func Profile(wavelength, flux []float64, delta float64, cfg Config) ([]Point, error) {
	return NewProfiler(cfg).Profile(wavelength, flux, delta)
}

// FitAll is a one-shot per-line fit with default configuration.
func FitAll(x, y []float64, delta float64) ([]gaussfit.Params, error) {
	return NewProfiler(Config{}).FitAll(x, y, delta)
}

// FWHM converts a Gaussian standard deviation to the full width at half
// maximum: fwhm = 2*sqrt(2*ln 2)*stdev.
func FWHM(stdev float64) float64 {
	return 2 * math.Sqrt(2*math.Ln2) * stdev
}

// FWHMAll converts a slice of standard deviations element-wise.
func FWHMAll(stdev []float64) []float64 {
	out := make([]float64, len(stdev))
	for i, s := range stdev {
		out[i] = FWHM(s)
	}

	return out
}

// FitAll detects the emission lines of the (x, y) spectrum and fits a
// Gaussian to each. The returned parameters appear in detection order, one
// entry per detected maximum, with Amplitude rescaled to the line's true
// peak height. No validity filtering is applied; see [Profiler.Profile].
func (p *Profiler) FitAll(x, y []float64, delta float64) ([]gaussfit.Params, error) {
	fits, err := p.Fits(x, y, delta)
	if err != nil {
		return nil, err
	}

	params := make([]gaussfit.Params, len(fits))
	for i, f := range fits {
		params[i] = f.Params
	}

	return params, nil
}

// Fits detects the emission lines of the (x, y) spectrum, fits a Gaussian
// to each, and classifies every fit. Nothing is filtered: the result has
// one entry per detected maximum, in detection order, so callers can see
// which lines were rejected and why.
func (p *Profiler) Fits(x, y []float64, delta float64) ([]LineFit, error) {
	maxima, _, err := peakdet.DetectOnAxis(x, y, delta)
	if err != nil {
		return nil, err
	}

	fits := make([]LineFit, 0, len(maxima))

	for _, m := range maxima {
		seed := gaussfit.Params{
			Amplitude: m.Value,
			Mean:      m.Pos,
			Stdev:     p.cfg.SeedStdev,
		}

		// Each line is fitted against the whole spectrum. With
		// well-separated narrow lines the seed dominates and the solver
		// settles on the local line; overlap between the lines would
		// need windowing, which the lamp spectra this is built for
		// do not require.
		fitted, err := gaussfit.Fit(x, y, seed)
		if err != nil {
			return nil, err
		}

		// Report the line's true peak height rather than the raw
		// least-squares area coefficient.
		fitted.Amplitude = fitted.Height()

		fits = append(fits, p.classify(fitted))
	}

	return fits, nil
}

// Profile measures the instrumental profile of a lamp spectrum: one
// (wavelength, FWHM) point per accepted line fit, in detection order.
// Rejected fits are omitted without gap markers.
func (p *Profiler) Profile(wavelength, flux []float64, delta float64) ([]Point, error) {
	fits, err := p.Fits(wavelength, flux, delta)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(fits))

	for _, f := range fits {
		if f.Status == FitAccepted {
			points = append(points, f.Line)
		}
	}

	return points, nil
}

func (p *Profiler) classify(params gaussfit.Params) LineFit {
	fit := LineFit{Params: params}

	if !finite(params.Amplitude) || !finite(params.Mean) || !finite(params.Stdev) {
		fit.Status = FitDiverged
		return fit
	}

	fwhm := FWHM(params.Stdev)

	if params.Amplitude <= 0 || params.Mean <= 0 || fwhm <= 0 {
		fit.Status = FitRejected
		return fit
	}

	if p.cfg.UpperLimit > 0 && fwhm >= p.cfg.UpperLimit {
		fit.Status = FitAboveLimit
		return fit
	}

	fit.Status = FitAccepted
	fit.Line = Point{Wavelength: params.Mean, FWHM: fwhm}

	return fit
}

func normalizeConfig(cfg Config) Config {
	if cfg.SeedStdev <= 0 {
		cfg.SeedStdev = defaultSeedStdev
	}

	if cfg.UpperLimit < 0 {
		cfg.UpperLimit = 0
	}

	return cfg
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
