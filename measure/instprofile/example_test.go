package instprofile_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/measure/instprofile"
)

func ExampleProfile() {
	// Synthetic lamp spectrum: two emission lines broadened by the
	// instrument to stdevs of 0.5 and 1.5 wavelength units.
	wavelength := make([]float64, 1000)
	flux := make([]float64, 1000)
	for i := range wavelength {
		w := 0.1 * float64(i)
		wavelength[i] = w
		flux[i] = 0.5*math.Exp(-(w-25)*(w-25)/(2*0.5*0.5)) +
			1.0*math.Exp(-(w-75)*(w-75)/(2*1.5*1.5))
	}

	points, err := instprofile.Profile(wavelength, flux, 0.05, instprofile.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range points {
		fmt.Printf("line at %.2f: FWHM %.2f\n", p.Wavelength, p.FWHM)
	}
	// Output:
	// line at 25.00: FWHM 1.18
	// line at 75.00: FWHM 3.53
}
