package peakdet_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/measure/peakdet"
)

func ExampleDetectOnAxis() {
	// Two narrow emission lines on a flat baseline.
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = 0.5 * float64(i)
		y[i] = 1.0*math.Exp(-(x[i]-25)*(x[i]-25)/(2*0.1*0.1)) +
			2.0*math.Exp(-(x[i]-75)*(x[i]-75)/(2*0.1*0.1))
	}

	maxima, _, err := peakdet.DetectOnAxis(x, y, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, m := range maxima {
		fmt.Printf("peak at %.1f, height %.1f\n", m.Pos, m.Value)
	}
	// Output:
	// peak at 25.0, height 1.0
	// peak at 75.0, height 2.0
}
