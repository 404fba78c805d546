// Package instprofile measures the instrumental profile of a spectrograph
// from a calibration lamp spectrum.
//
// The emission lines of a calibration lamp are intrinsically narrow; the
// width they show in a recorded spectrum is the broadening introduced by
// the instrument's optics. The package locates the emission lines, fits a
// Gaussian to each, and reports the full width at half maximum (FWHM) of
// every line as a function of wavelength.
//
// # Usage
//
// One-shot measurement of a wavelength/flux pair:
//
//	points, err := instprofile.Profile(wavelength, flux, 0.05, instprofile.Config{})
//	for _, p := range points {
//	    fmt.Printf("%.2f A: FWHM %.3f\n", p.Wavelength, p.FWHM)
//	}
//
// For repeated measurements or custom settings, build a Profiler:
//
//	prof := instprofile.NewProfiler(instprofile.Config{
//	    SeedStdev:  0.2, // initial stdev guess handed to each line fit
//	    UpperLimit: 5,   // reject lines broader than this
//	})
//	points, err := prof.Profile(wavelength, flux, 0.05)
//
// Lines whose fit diverged or produced non-physical parameters are silently
// dropped from Profile results. Callers that need to see rejected lines can
// use [Profiler.Fits], which reports a per-line status instead of filtering.
package instprofile
