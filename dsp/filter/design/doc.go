// Package design computes biquad coefficients for the classic second-order
// filter shapes.
//
// Frequencies are normalized to the sample rate: fc = f/fs, so the useful
// range is 0 < fc < 0.5. Design returns the coefficients for a FilterType,
// and SetCoefficients installs them directly into a biquad.Section. The
// Hz-based helpers (Lowpass, Peak, LowShelf, ...) normalize for you.
//
// Parameters are not validated. A zero Q or an fc outside (0, 0.5) produce
// whatever the closed-form expressions yield; call ValidateParams first when
// the inputs come from an untrusted source.
package design
