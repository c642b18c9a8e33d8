// Package registry holds the block-processing kernels available to
// biquad.Section.ProcessBlock and selects one for the running CPU.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn filters buf in-place with one Direct Form II Transposed
// section starting from state (d0, d1) and returns the final state.
type ProcessBlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Kernel is one registered block-processing implementation.
type Kernel struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// Registry stores kernels ordered by descending priority.
type Registry struct {
	mu      sync.RWMutex
	kernels []Kernel
}

// Global is the registry kernels add themselves to from init.
var Global = &Registry{}

// Register adds a kernel. Kernels of equal priority keep registration order.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = append(r.kernels, k)
	slices.SortStableFunc(r.kernels, func(a, b Kernel) int {
		return b.Priority - a.Priority
	})
}

// Lookup returns the highest-priority kernel the features support, or nil.
func (r *Registry) Lookup(features cpu.Features) *Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.kernels {
		if cpu.Supports(features, r.kernels[i].SIMDLevel) {
			k := r.kernels[i]
			return &k
		}
	}

	return nil
}

// Kernels returns a copy of the registered kernels in lookup order.
func (r *Registry) Kernels() []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.kernels)
}

// Reset removes all kernels. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = nil
}
