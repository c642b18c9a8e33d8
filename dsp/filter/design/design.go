package design

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Design returns the coefficients of a second-order filter of type t.
//
// fc is the cutoff or center frequency normalized to the sample rate and q
// the quality factor. peakGainDB is used by TypePeak, TypeLowShelf and
// TypeHighShelf; its sign selects the boost (>= 0) or cut form. The shelves
// have a fixed Butterworth slope and ignore q. TypeUnity ignores every
// parameter.
//
// The second return value is false when t is not a known type; the
// coefficients are then zero.
func Design(t FilterType, fc, q, peakGainDB float64) (biquad.Coefficients, bool) {
	v := math.Pow(10, math.Abs(peakGainDB)/20)
	k := math.Tan(math.Pi * fc)
	kk := k * k

	var norm float64

	switch t {
	case TypeLowpass:
		norm = 1 / (1 + k/q + kk)
		b0 := kk * norm

		return biquad.Coefficients{
			B0: b0,
			B1: 2 * b0,
			B2: b0,
			A1: 2 * (kk - 1) * norm,
			A2: (1 - k/q + kk) * norm,
		}, true

	case TypeHighpass:
		norm = 1 / (1 + k/q + kk)

		return biquad.Coefficients{
			B0: norm,
			B1: -2 * norm,
			B2: norm,
			A1: 2 * (kk - 1) * norm,
			A2: (1 - k/q + kk) * norm,
		}, true

	case TypeBandpass:
		norm = 1 / (1 + k/q + kk)
		b0 := k / q * norm

		return biquad.Coefficients{
			B0: b0,
			B1: 0,
			B2: -b0,
			A1: 2 * (kk - 1) * norm,
			A2: (1 - k/q + kk) * norm,
		}, true

	case TypeNotch:
		norm = 1 / (1 + k/q + kk)
		b1 := 2 * (kk - 1) * norm

		return biquad.Coefficients{
			B0: (1 + kk) * norm,
			B1: b1,
			B2: (1 + kk) * norm,
			A1: b1,
			A2: (1 - k/q + kk) * norm,
		}, true

	case TypePeak:
		return peak(k, q, v, peakGainDB >= 0), true

	case TypeLowShelf:
		return lowShelf(k, v, peakGainDB >= 0), true

	case TypeHighShelf:
		return highShelf(k, v, peakGainDB >= 0), true

	case TypeUnity:
		return biquad.Unity(), true

	default:
		return biquad.Coefficients{}, false
	}
}

// SetCoefficients designs a filter of type t and installs it into s through
// Section.Set, so the section's reset policy applies. It returns false and
// leaves s untouched when t is unknown.
func SetCoefficients(t FilterType, fc, q, peakGainDB float64, s *biquad.Section) bool {
	c, ok := Design(t, fc, q, peakGainDB)
	if !ok {
		return false
	}

	s.Set(c.B0, c.B1, c.B2, c.A1, c.A2)

	return true
}

func peak(k, q, v float64, boost bool) biquad.Coefficients {
	kk := k * k
	mid := 2 * (kk - 1)
	// Kept as (1/q)*k rather than k/q; the two round differently.
	unit := 1 / q * k
	gain := v / q * k

	if boost {
		norm := 1 / (1 + unit + kk)

		return biquad.Coefficients{
			B0: (1 + gain + kk) * norm,
			B1: mid * norm,
			B2: (1 - gain + kk) * norm,
			A1: mid * norm,
			A2: (1 - unit + kk) * norm,
		}
	}

	norm := 1 / (1 + gain + kk)

	return biquad.Coefficients{
		B0: (1 + unit + kk) * norm,
		B1: mid * norm,
		B2: (1 - unit + kk) * norm,
		A1: mid * norm,
		A2: (1 - gain + kk) * norm,
	}
}

func lowShelf(k, v float64, boost bool) biquad.Coefficients {
	kk := k * k
	vkk := v * k * k // (v*k)*k, which rounds differently from v*kk
	rk := math.Sqrt2 * k
	rvk := math.Sqrt(2*v) * k

	if boost {
		norm := 1 / (1 + rk + kk)

		return biquad.Coefficients{
			B0: (1 + rvk + vkk) * norm,
			B1: 2 * (vkk - 1) * norm,
			B2: (1 - rvk + vkk) * norm,
			A1: 2 * (kk - 1) * norm,
			A2: (1 - rk + kk) * norm,
		}
	}

	norm := 1 / (1 + rvk + vkk)

	return biquad.Coefficients{
		B0: (1 + rk + kk) * norm,
		B1: 2 * (kk - 1) * norm,
		B2: (1 - rk + kk) * norm,
		A1: 2 * (vkk - 1) * norm,
		A2: (1 - rvk + vkk) * norm,
	}
}

func highShelf(k, v float64, boost bool) biquad.Coefficients {
	kk := k * k
	rk := math.Sqrt2 * k
	rvk := math.Sqrt(2*v) * k

	if boost {
		norm := 1 / (1 + rk + kk)

		return biquad.Coefficients{
			B0: (v + rvk + kk) * norm,
			B1: 2 * (kk - v) * norm,
			B2: (v - rvk + kk) * norm,
			A1: 2 * (kk - 1) * norm,
			A2: (1 - rk + kk) * norm,
		}
	}

	norm := 1 / (v + rvk + kk)

	return biquad.Coefficients{
		B0: (1 + rk + kk) * norm,
		B1: 2 * (kk - 1) * norm,
		B2: (1 - rk + kk) * norm,
		A1: 2 * (kk - v) * norm,
		A2: (v - rvk + kk) * norm,
	}
}
