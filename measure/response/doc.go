// Package response measures the frequency response of a filter from its
// impulse response.
//
// Measure truncates the impulse response to the FFT size, transforms it and
// keeps the non-negative frequency bins. For stable filters whose impulse
// response has decayed within the FFT length, the measured magnitude agrees
// with the analytic response of the biquad package at the bin frequencies.
package response
