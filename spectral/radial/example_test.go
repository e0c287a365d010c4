package radial_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/grid"
	"github.com/cwbudde/algo-spectral/spectral/radial"
)

func ExampleSpectrum() {
	g, err := grid.New(2, 2, 2*math.Pi, 2*math.Pi)
	if err != nil {
		fmt.Println(err)
		return
	}

	s := core.NewField(2, 2)
	copy(s.Data, []float64{1, 2, 3, 4})

	k, avg, err := radial.Spectrum(s, g.Kmag)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range k {
		fmt.Printf("%.3f %.1f\n", k[i], avg[i])
	}
	// Output:
	// 0.000 1.0
	// 1.000 2.5
	// 1.414 4.0
}
