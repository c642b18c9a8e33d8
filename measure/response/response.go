package response

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two >= 2.
	ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 2")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	// ErrNilSource is returned when no impulse responder is given.
	ErrNilSource = errors.New("response: nil source")
)

// ImpulseResponder produces the first n samples of an impulse response.
// Both *biquad.Section and *biquad.Chain satisfy it.
type ImpulseResponder interface {
	ImpulseResponse(n int) []float64
}

// Response is a measured frequency response over bins 0..N/2.
type Response struct {
	fftSize    int
	sampleRate float64
	bins       []complex128
	magnitude  []float64
}

// Measure computes the frequency response of src using an FFT of fftSize
// points.
func Measure(src ImpulseResponder, fftSize int, sampleRate float64) (*Response, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if fftSize < 2 || bits.OnesCount(uint(fftSize)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	ir := src.ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("failed to transform impulse response: %w", err)
	}

	half := fftSize/2 + 1
	bins := out[:half:half]

	re := make([]float64, half)
	im := make([]float64, half)
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return &Response{
		fftSize:    fftSize,
		sampleRate: sampleRate,
		bins:       bins,
		magnitude:  mag,
	}, nil
}

// Len returns the number of bins (fftSize/2 + 1).
func (r *Response) Len() int { return len(r.bins) }

// FFTSize returns the transform length used for the measurement.
func (r *Response) FFTSize() int { return r.fftSize }

// Bin returns the complex response at bin i.
func (r *Response) Bin(i int) complex128 { return r.bins[i] }

// Magnitude returns |H| at bin i.
func (r *Response) Magnitude(i int) float64 { return r.magnitude[i] }

// MagnitudeDB returns 20*log10(|H|) at bin i.
func (r *Response) MagnitudeDB(i int) float64 {
	return 20 * math.Log10(r.magnitude[i])
}

// Phase returns the phase in radians at bin i.
func (r *Response) Phase(i int) float64 {
	return cmplx.Phase(r.bins[i])
}

// BinFrequency returns the center frequency of bin i in Hz.
func (r *Response) BinFrequency(i int) float64 {
	return float64(i) * r.sampleRate / float64(r.fftSize)
}

// At returns the index of the bin nearest to freqHz, clamped to the valid
// range.
func (r *Response) At(freqHz float64) int {
	i := int(math.Round(freqHz * float64(r.fftSize) / r.sampleRate))

	return max(0, min(i, len(r.bins)-1))
}
