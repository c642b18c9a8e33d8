package biquad

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned by Validate when a coefficient is NaN or Inf.
var ErrNonFinite = errors.New("biquad: non-finite coefficient")

// IsFinite reports whether all five coefficients are finite.
func (c *Coefficients) IsFinite() bool {
	return c.Validate() == nil
}

// Validate checks the coefficients for NaN or Inf values. It is an opt-in
// check; Set and ProcessSample never call it.
func (c *Coefficients) Validate() error {
	names := [...]string{"B0", "B1", "B2", "A1", "A2"}
	for i, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, names[i], v)
		}
	}
	return nil
}
