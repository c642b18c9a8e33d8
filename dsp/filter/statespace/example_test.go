package statespace_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/statespace"
)

func ExampleModel_Simulate() {
	m := statespace.FromCoefficients(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	y, _, err := m.Simulate([]float64{1, 0, 0, 0}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("order=%d y=%.3f\n", m.Order(), y)
	// Output:
	// order=2 y=[0.250 0.550 0.350 0.048]
}
