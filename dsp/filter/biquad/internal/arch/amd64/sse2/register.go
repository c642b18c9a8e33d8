//go:build amd64 && !purego

// Package sse2 registers the biquad kernel used on SSE2-only amd64 CPUs.
package sse2

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:         "sse2",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: processBlock,
	})
}

// processBlock keeps the coefficients and state in locals across a
// 2x-unrolled loop; the recurrence is serial so there is no lane-parallel
// form to vectorize.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		x0, x1 := buf[i], buf[i+1]

		y0 := b0*x0 + d0
		d0 = b1*x0 - a1*y0 + d1
		d1 = b2*x0 - a2*y0

		y1 := b0*x1 + d0
		d0 = b1*x1 - a1*y1 + d1
		d1 = b2*x1 - a2*y1

		buf[i], buf[i+1] = y0, y1
	}

	if n < len(buf) {
		x := buf[n]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[n] = y
	}

	return d0, d1
}
