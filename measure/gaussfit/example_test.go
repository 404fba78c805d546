package gaussfit_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/measure/gaussfit"
)

func ExampleFit() {
	truth := gaussfit.Params{Amplitude: 1, Mean: 50, Stdev: 0.5}

	x := make([]float64, 2001)
	y := make([]float64, 2001)
	for i := range x {
		x[i] = 0.05 * float64(i)
		y[i] = truth.Eval(x[i])
	}

	fitted, err := gaussfit.Fit(x, y, truth)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("amplitude %.2f, mean %.2f, stdev %.2f\n",
		fitted.Amplitude, fitted.Mean, fitted.Stdev)
	// Output:
	// amplitude 1.00, mean 50.00, stdev 0.50
}
