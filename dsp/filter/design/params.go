package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

var (
	// ErrInvalidFrequency is returned when a normalized frequency lies
	// outside (0, 0.5) or is not finite.
	ErrInvalidFrequency = errors.New("design: normalized frequency must be in (0, 0.5)")
	// ErrInvalidQ is returned for a non-positive or non-finite Q.
	ErrInvalidQ = errors.New("design: Q must be positive")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive")
)

// NormalizedFrequency converts a frequency in Hz to the fc argument of
// Design. A non-positive sample rate yields a non-finite result.
func NormalizedFrequency(freqHz, sampleRate float64) float64 {
	return freqHz / sampleRate
}

// ValidateParams reports whether fc and q describe a well-formed design.
// Design itself never calls it.
func ValidateParams(fc, q float64) error {
	if math.IsNaN(fc) || fc <= 0 || fc >= 0.5 {
		return fmt.Errorf("%w: fc=%v", ErrInvalidFrequency, fc)
	}

	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return fmt.Errorf("%w: q=%v", ErrInvalidQ, q)
	}

	return nil
}

// ValidateSampleRate checks a sample rate before it is used for
// normalization.
func ValidateSampleRate(sampleRate float64) error {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(TypeLowpass, freq, q, 0, sampleRate)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(TypeHighpass, freq, q, 0, sampleRate)
}

// Bandpass designs a bandpass biquad with unity gain at freq (Hz).
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(TypeBandpass, freq, q, 0, sampleRate)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	return designHz(TypeNotch, freq, q, 0, sampleRate)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	return designHz(TypePeak, freq, q, gainDB, sampleRate)
}

// LowShelf designs a low-shelf biquad with gain in dB.
func LowShelf(freq, gainDB, sampleRate float64) biquad.Coefficients {
	return designHz(TypeLowShelf, freq, 0, gainDB, sampleRate)
}

// HighShelf designs a high-shelf biquad with gain in dB.
func HighShelf(freq, gainDB, sampleRate float64) biquad.Coefficients {
	return designHz(TypeHighShelf, freq, 0, gainDB, sampleRate)
}

func designHz(t FilterType, freq, q, gainDB, sampleRate float64) biquad.Coefficients {
	c, _ := Design(t, NormalizedFrequency(freq, sampleRate), q, gainDB)
	return c
}
