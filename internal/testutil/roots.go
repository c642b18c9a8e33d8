package testutil

import (
	"math/cmplx"
	"testing"
)

// RootsNear reports whether got and want hold the same roots within tol,
// regardless of order. Each root in want is matched at most once.
func RootsNear(got, want []complex128, tol float64) bool {
	if len(got) != len(want) {
		return false
	}

	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cmplx.Abs(g-w) <= tol {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RequireRootsNear fails t unless got and want are the same root set.
func RequireRootsNear(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()
	if !RootsNear(got, want, tol) {
		t.Fatalf("root sets differ:\n got  %v\n want %v", got, want)
	}
}
