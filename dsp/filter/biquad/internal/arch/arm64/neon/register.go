//go:build arm64 && !purego

// Package neon registers the biquad kernel used on arm64 CPUs with NEON.
package neon

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:         "neon",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     15,
		ProcessBlock: processBlock,
	})
}

// processBlock hoists the feedforward products b1*x and b2*x ahead of the
// output so they do not wait on y.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	if len(buf) == 0 {
		return d0, d1
	}

	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	for i, x := range buf {
		// Feedforward terms do not depend on y.
		f1 := b1 * x
		f2 := b2 * x

		y := b0*x + d0
		d0 = f1 - a1*y + d1
		d1 = f2 - a2*y
		buf[i] = y
	}

	return d0, d1
}
