package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	// Two-point average feeding a leaky integrator:
	// H(z) = (0.5 + 0.5z^-1) / (1 - 0.5z^-1).
	s := biquad.NewSection(biquad.Coefficients{B0: 0.5, B1: 0.5, A1: -0.5})

	for i, x := range []float64{1, 0, 0, 0} {
		fmt.Printf("y[%d] = %.4f\n", i, s.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.5000
	// y[1] = 0.7500
	// y[2] = 0.3750
	// y[3] = 0.1875
}

func ExampleSection_ProcessBlock() {
	c := biquad.Coefficients{B0: 0.5, B1: 0.5, A1: -0.5}
	s := biquad.NewSection(c)

	// A unit step settles towards the DC gain of 2.
	buf := []float64{1, 1, 1, 1}
	s.ProcessBlock(buf)

	fmt.Printf("step: %.4f %.4f %.4f %.4f\n", buf[0], buf[1], buf[2], buf[3])
	fmt.Printf("DC: %+.2f dB\n", c.MagnitudeDB(0, 48000))
	// Output:
	// step: 0.5000 1.2500 1.6250 1.8125
	// DC: +6.02 dB
}

func ExampleChain_ProcessSample() {
	// The same section borrowed twice shares one delay line, so it advances
	// twice per input sample.
	avg := biquad.NewSection(biquad.Coefficients{B0: 0.5, B1: 0.5})
	chain := biquad.NewChain(avg, avg)

	fmt.Printf("order %d, sections %d\n", chain.Order(), chain.Len())
	for i, x := range []float64{1, 0, 0, 2} {
		fmt.Printf("y[%d] = %.5f\n", i, chain.ProcessSample(x))
	}
	// Output:
	// order 4, sections 2
	// y[0] = 0.75000
	// y[1] = 0.12500
	// y[2] = 0.06250
	// y[3] = 1.53125
}

func ExampleSection_Stable() {
	// Resonator with pole radius sqrt(0.98).
	s := biquad.NewSection(biquad.Coefficients{B0: 0.02, B2: -0.02, A1: -1.96, A2: 0.98})
	fmt.Println(s.Stable())

	// Pushing A2 past 1 moves the poles outside the unit circle.
	s.Set(0.02, 0, -0.02, -1.96, 1.02)
	fmt.Println(s.Stable())
	// Output:
	// true
	// false
}

func ExampleCoefficients_MagnitudeDB() {
	avg := biquad.Coefficients{B0: 0.5, B1: 0.5}

	for _, freq := range []float64{0, 6000, 12000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, avg.MagnitudeDB(freq, 48000))
	}
	// Output:
	//     0 Hz: +0.00 dB
	//  6000 Hz: -0.69 dB
	// 12000 Hz: -3.01 dB
}

func ExamplePIDF() {
	// The integrator puts one pole at z = 1; the derivative filter puts the
	// other at (2 - n*ts)/(2 + n*ts).
	c := biquad.PIDF(1, 1, 0, 10, 0.01)
	p := c.Poles()

	fmt.Printf("poles: %.4f %.4f\n", real(p[0]), real(p[1]))
	// Output:
	// poles: 1.0000 0.9048
}

func ExamplePoleZeroPairs() {
	coeffs := []biquad.Coefficients{
		{B0: 1, B1: -1, B2: 0.5, A1: -1.2, A2: 0.45},
		{B0: 1, B1: 0.5, B2: 0.5, A1: 0.8, A2: 0.25},
	}

	for i, pair := range biquad.PoleZeroPairs(coeffs) {
		fmt.Printf("section %d poles: %.2f%+.2fi, %.2f%+.2fi\n",
			i,
			real(pair.Poles[0]), imag(pair.Poles[0]),
			real(pair.Poles[1]), imag(pair.Poles[1]))
		fmt.Printf("section %d zeros: %.2f%+.2fi, %.2f%+.2fi\n",
			i,
			real(pair.Zeros[0]), imag(pair.Zeros[0]),
			real(pair.Zeros[1]), imag(pair.Zeros[1]))
	}
	// Output:
	// section 0 poles: 0.60+0.30i, 0.60-0.30i
	// section 0 zeros: 0.50+0.50i, 0.50-0.50i
	// section 1 poles: -0.40+0.30i, -0.40-0.30i
	// section 1 zeros: -0.25+0.66i, -0.25-0.66i
}
