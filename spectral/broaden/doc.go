// Package broaden applies instrumental broadening to model spectra.
//
// A spectrograph smears every infinitely narrow feature into a line of
// finite width. Once that width is known — for instance measured from a
// calibration lamp with measure/instprofile — a theoretical model spectrum
// must be convolved with the same broadening kernel before it can be
// compared against observations.
//
// # Usage
//
// Broaden a model spectrum to an instrumental FWHM of 0.8 wavelength units
// on an axis sampled every 0.1 units:
//
//	observed, err := broaden.Apply(model, 0.8, 0.1)
//
// Or build the kernel once and reuse it:
//
//	kernel, err := broaden.Kernel(0.8, 0.1)
//	observed, err := broaden.ApplyKernel(model, kernel)
//
// Short kernels are convolved directly; long kernels switch to an
// FFT-based path.
package broaden
