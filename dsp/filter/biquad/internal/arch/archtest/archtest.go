// Package archtest checks block kernels against the portable generic kernel.
package archtest

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/generic"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-biquad/internal/testutil"
)

// Case is a named coefficient set with a starting state.
type Case struct {
	Name   string
	Coeffs registry.Coefficients
	D0, D1 float64
}

// Cases covers the response shapes the designers produce: a damped lowpass,
// a narrow resonator with poles near the unit circle, and a PIDF controller
// with a pole at z = 1 and large feedforward gain.
var Cases = []Case{
	{
		Name:   "lowpass",
		Coeffs: registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
	},
	{
		Name:   "resonator",
		Coeffs: registry.Coefficients{B0: 0.02, B2: -0.02, A1: -1.96, A2: 0.98},
		D0:     0.1,
		D1:     -0.05,
	},
	{
		Name:   "pidf",
		Coeffs: registry.Coefficients{B0: 3.59, B1: -5.17, B2: 1.9, A1: -1.0, A2: 0},
	},
}

// Lengths exercises empty input, every unroll remainder and a long run.
var Lengths = []int{0, 1, 2, 3, 4, 5, 7, 9, 256}

// RequireMatchesGeneric runs fn and generic.ProcessBlock over every case and
// length and fails t on the first differing sample or final state.
func RequireMatchesGeneric(t *testing.T, fn registry.ProcessBlockFn) {
	t.Helper()
	for _, tc := range Cases {
		for _, n := range Lengths {
			t.Run(fmt.Sprintf("%s/n=%d", tc.Name, n), func(t *testing.T) {
				in := testutil.Noise(int64(n)+1, n)
				got := append([]float64(nil), in...)
				want := append([]float64(nil), in...)

				gd0, gd1 := fn(tc.Coeffs, tc.D0, tc.D1, got)
				wd0, wd1 := generic.ProcessBlock(tc.Coeffs, tc.D0, tc.D1, want)

				testutil.RequireSliceClose(t, got, want, 1e-12)
				if !testutil.Close(gd0, wd0, 1e-12) || !testutil.Close(gd1, wd1, 1e-12) {
					t.Fatalf("state (%g, %g), want (%g, %g)", gd0, gd1, wd0, wd1)
				}
			})
		}
	}
}

// Benchmark runs fn over a noise block of each size.
func Benchmark(b *testing.B, fn registry.ProcessBlockFn) {
	c := Cases[1].Coeffs
	for _, n := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := testutil.Noise(1, n)
			b.SetBytes(int64(n * 8))
			b.ReportAllocs()
			var d0, d1 float64
			for b.Loop() {
				d0, d1 = fn(c, d0, d1, buf)
			}
		})
	}
}
