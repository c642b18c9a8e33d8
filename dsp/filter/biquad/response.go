package biquad

import (
	"math"
	"math/cmplx"
)

// omega converts a frequency in Hz to radians per sample.
func omega(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// Response evaluates H(z) on the unit circle at freqHz. Both polynomials are
// evaluated in z^-1 by Horner's rule.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zi := cmplx.Rect(1, -omega(freqHz, sampleRate))

	num := (complex(c.B2, 0)*zi+complex(c.B1, 0))*zi + complex(c.B0, 0)
	den := (complex(c.A2, 0)*zi+complex(c.A1, 0))*zi + 1

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := omega(freqHz, sampleRate)
	return power(c.B0, c.B1, c.B2, w) / power(1, c.A1, c.A2, w)
}

// power returns |p0 + p1 e^-jw + p2 e^-2jw|^2 as its cosine series.
func power(p0, p1, p2, w float64) float64 {
	return p0*p0 + p1*p1 + p2*p2 +
		2*(p0*p1+p1*p2)*math.Cos(w) +
		2*p0*p2*math.Cos(2*w)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(f) in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the section's complex frequency response.
func (s *Section) Response(freqHz, sampleRate float64) complex128 {
	return s.coeffs.Response(freqHz, sampleRate)
}

// MagnitudeDB returns the section's magnitude response in dB.
func (s *Section) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return s.coeffs.MagnitudeDB(freqHz, sampleRate)
}

// Response returns the product of the section responses, which is 1 for an
// empty chain.
//
// A section borrowed at several positions contributes its response once per
// position. That is the response of the cascade as designed; when positions
// share one delay line the running filter differs from it, and
// ImpulseResponse reports what the chain actually does.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude in dB as the sum of the section
// magnitudes.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	db := 0.0
	for _, s := range c.sections {
		db += s.MagnitudeDB(freqHz, sampleRate)
	}

	return db
}

type sampleFilter interface {
	ProcessSample(x float64) float64
	Reset()
}

// impulseResponse resets f and feeds it a unit impulse.
func impulseResponse(f sampleFilter, n int) []float64 {
	f.Reset()

	ir := make([]float64, n)
	x := 1.0
	for i := range ir {
		ir[i] = f.ProcessSample(x)
		x = 0
	}

	return ir
}

// ImpulseResponse returns the first n samples of the section's impulse
// response. The section state is restored afterwards. n <= 0 yields nil.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	defer s.SetState(saved)

	return impulseResponse(s, n)
}

// ImpulseResponse returns the first n samples of the impulse response of the
// cascade as ProcessSample runs it, so a section borrowed twice advances
// twice per sample. Every section's state is restored afterwards.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	defer c.SetState(saved)

	return impulseResponse(c, n)
}
