//nolint:funcorder
package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Unity returns the pass-through coefficient set (B0=1, all else 0).
func Unity() Coefficients {
	return Coefficients{B0: 1}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
//
// A Section is not safe for concurrent use; give each processing pipeline
// its own instance.
type Section struct {
	coeffs Coefficients

	d0, d1 float64

	resetOnChange bool
}

// SectionOption configures a Section at construction.
type SectionOption func(*Section)

// WithResetStateOnCoefficientChange sets whether installing new coefficients
// clears the delay line. Default is true.
func WithResetStateOnCoefficientChange(v bool) SectionOption {
	return func(s *Section) { s.resetOnChange = v }
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given, already
// normalized, coefficients and zero state.
func NewSection(c Coefficients, opts ...SectionOption) *Section {
	s := &Section{resetOnChange: true}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}

	s.SetCoefficients(c)

	return s
}

// NewUnitySection returns a pass-through Section.
func NewUnitySection() *Section {
	return NewSection(Unity())
}

// NewSectionRaw returns a Section from un-normalized transfer function
// coefficients b0 + b1*z^-1 + b2*z^-2 over a0 + a1*z^-1 + a2*z^-2.
// All six values are divided by a0. The caller must ensure a0 != 0;
// a zero a0 yields non-finite coefficients.
func NewSectionRaw(b0, b1, b2, a0, a1, a2 float64) *Section {
	return NewSection(Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	})
}

// Set installs normalized coefficients. If the section resets on
// coefficient change (the default) the delay line is cleared, otherwise
// it is kept so coefficients can be swapped mid-stream.
func (s *Section) Set(b0, b1, b2, a1, a2 float64) {
	s.coeffs = Coefficients{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}

	if s.resetOnChange {
		s.d0 = 0
		s.d1 = 0
	}
}

// SetCoefficients is Set taking a Coefficients value.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Set(c.B0, c.B1, c.B2, c.A1, c.A2)
}

// Coefficients returns the current coefficients.
func (s *Section) Coefficients() Coefficients {
	return s.coeffs
}

// SetResetStateOnCoefficientChange toggles whether Set clears the delay line.
func (s *Section) SetResetStateOnCoefficientChange(v bool) {
	s.resetOnChange = v
}

// ResetStateOnCoefficientChange reports whether Set clears the delay line.
func (s *Section) ResetStateOnCoefficientChange() bool {
	return s.resetOnChange
}

// ProcessSample filters one input sample and returns the output.
// y is computed before d0 is overwritten, and the old d0 is consumed
// before d1 is updated.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.coeffs.B0*x + s.d0
	s.d0 = s.coeffs.B1*x - s.coeffs.A1*y + s.d1
	s.d1 = s.coeffs.B2*x - s.coeffs.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	c := s.coeffs
	coeffs := archregistry.Coefficients{
		B0: c.B0,
		B1: c.B1,
		B2: c.B2,
		A1: c.A1,
		A2: c.A2,
	}

	s.d0, s.d1 = processBlockImpl(coeffs, s.d0, s.d1, buf)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

func (s *Section) processBlockScalar(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
