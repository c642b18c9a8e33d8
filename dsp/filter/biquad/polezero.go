package biquad

import "math/cmplx"

// PoleZeroPair stores the two poles and two zeros of one biquad section.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the z-plane poles of the section denominator:
//
//	z^2 + A1*z + A2 = 0
//
// The complex square root of the discriminant handles real and
// complex-conjugate roots without branching.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0*z^2 + B1*z + B2 = 0
//
// B0 == 0 is not guarded and yields non-finite roots.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles lie strictly inside the unit circle.
// Both pole magnitudes are always evaluated.
func (c *Coefficients) Stable() bool {
	p := c.Poles()
	inside0 := cmplx.Abs(p[0]) < 1
	inside1 := cmplx.Abs(p[1]) < 1

	return inside0 && inside1
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// Poles returns the two poles of the section's current coefficients.
func (s *Section) Poles() [2]complex128 { return s.coeffs.Poles() }

// Zeros returns the two zeros of the section's current coefficients.
func (s *Section) Zeros() [2]complex128 { return s.coeffs.Zeros() }

// Stable reports whether the section is stable.
func (s *Section) Stable() bool { return s.coeffs.Stable() }

// PoleZeroPair returns the section's poles and zeros.
func (s *Section) PoleZeroPair() PoleZeroPair { return s.coeffs.PoleZeroPair() }

// PoleZeroPairs returns one pole/zero pair entry per coefficient set.
func PoleZeroPairs(coeffs []Coefficients) []PoleZeroPair {
	out := make([]PoleZeroPair, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].PoleZeroPair()
	}
	return out
}

// PoleZeroPairs returns one pole/zero pair entry per chain section.
func (c *Chain) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.PoleZeroPair()
	}
	return out
}

// Poles returns the concatenated poles of every section in chain order.
// The result has 2*Len() entries.
func (c *Chain) Poles() []complex128 {
	return c.polesZeros(false)
}

// Zeros returns the concatenated zeros of every section in chain order.
// The result has 2*Len() entries.
func (c *Chain) Zeros() []complex128 {
	return c.polesZeros(true)
}

func (c *Chain) polesZeros(zeros bool) []complex128 {
	out := make([]complex128, 0, 2*len(c.sections))
	for _, s := range c.sections {
		var roots [2]complex128
		if zeros {
			roots = s.Zeros()
		} else {
			roots = s.Poles()
		}
		out = append(out, roots[0], roots[1])
	}
	return out
}

// Stable reports whether every section in the chain is stable. An empty
// chain is stable. Every section is evaluated, even after an unstable one.
func (c *Chain) Stable() bool {
	stable := true
	for _, s := range c.sections {
		if !s.Stable() {
			stable = false
		}
	}
	return stable
}

// quadraticRoots solves a*z^2 + b*z + c = 0 in closed form.
func quadraticRoots(a, b, c float64) [2]complex128 {
	sqrtDiscriminant := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
