package testutil

import (
	"math"
	"testing"
)

// Close reports whether a and b agree within tol, scaled by the larger
// magnitude once that exceeds 1. Filter outputs with large gain are compared
// relatively and small ones absolutely.
func Close(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

// RequireSliceClose fails t at the first sample where got and want are not
// Close, or if their lengths differ.
func RequireSliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !Close(got[i], want[i], tol) {
			t.Fatalf("sample %d: got %v, want %v (diff %g, tol %g)", i, got[i], want[i], math.Abs(got[i]-want[i]), tol)
		}
	}
}
