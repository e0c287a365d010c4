package dealias_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/dealias"
	"github.com/cwbudde/algo-spectral/spectral/grid"
)

func ExampleFilter_Cutoff() {
	g, err := grid.New(64, 64, 2*math.Pi, 2*math.Pi)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, err := dealias.New(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Nyquist magnitude is 32 on this grid; the 2/3 rule cuts at 21.3.
	fmt.Printf("%.3f\n", f.Cutoff())
	// Output:
	// 21.333
}
