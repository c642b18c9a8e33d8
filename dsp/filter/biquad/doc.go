// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are owned by the
// caller; a [Chain] borrows them and runs them in series, aggregating their
// poles, zeros and stability.
//
// Coefficients can be installed directly, derived from raw (un-normalized)
// transfer function coefficients with [NewSectionRaw], or computed from a
// PID controller with derivative filter via [PIDF]. Closed-form EQ designs
// (lowpass, peak, shelves, ...) live in dsp/filter/design.
package biquad
