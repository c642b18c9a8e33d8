//go:build amd64 && !purego

// Package avx2 registers the biquad kernel used on AVX2-capable amd64 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/generic"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock walks buf in chunks re-sliced to exactly four samples, which
// lets the compiler drop the bounds checks inside the chunk. The tail goes
// through the generic kernel.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	for len(buf) >= 4 {
		blk := buf[:4:4]
		x0, x1, x2, x3 := blk[0], blk[1], blk[2], blk[3]

		y0 := b0*x0 + d0
		d0, d1 = b1*x0-a1*y0+d1, b2*x0-a2*y0

		y1 := b0*x1 + d0
		d0, d1 = b1*x1-a1*y1+d1, b2*x1-a2*y1

		y2 := b0*x2 + d0
		d0, d1 = b1*x2-a1*y2+d1, b2*x2-a2*y2

		y3 := b0*x3 + d0
		d0, d1 = b1*x3-a1*y3+d1, b2*x3-a2*y3

		blk[0], blk[1], blk[2], blk[3] = y0, y1, y2, y3
		buf = buf[4:]
	}

	return generic.ProcessBlock(c, d0, d1, buf)
}
