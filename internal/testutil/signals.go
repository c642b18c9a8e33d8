package testutil

import (
	"math"
	"math/rand"
)

// Noise returns n uniform samples in [-1, 1) drawn from a fixed seed.
func Noise(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}
	return out
}

// Sine returns n samples of a unit-amplitude sine starting at phase 0.
func Sine(freqHz, sampleRate float64, n int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(w * float64(i))
	}
	return out
}

// Impulse returns a unit impulse followed by n-1 zeros.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	if n > 0 {
		out[0] = 1
	}
	return out
}

// Filter feeds in through step one sample at a time and returns the outputs.
// Passing a Section's or Chain's ProcessSample gives the per-sample reference
// that block paths are compared against.
func Filter(step func(float64) float64, in []float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = step(x)
	}
	return out
}

// RMS returns the root-mean-square of data[from:], or 0 for an empty range.
func RMS(data []float64, from int) float64 {
	tail := data[from:]
	if len(tail) == 0 {
		return 0
	}
	var sum float64
	for _, v := range tail {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(tail)))
}
