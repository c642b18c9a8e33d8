package biquad_test

import (
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	archregistry "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// forceFeatures selects the kernel for features and restores detection when
// t finishes.
func forceFeatures(t testing.TB, features cpu.Features) {
	t.Helper()
	cpu.SetForcedFeatures(features)
	biquad.ResetProcessBlockDispatch()
	t.Cleanup(func() {
		cpu.ResetDetection()
		biquad.ResetProcessBlockDispatch()
	})
}

// requireDispatch checks that features select the kernel named want and that
// every designed filter type, plus a PIDF controller, filters identically
// through ProcessBlock and ProcessSample on it.
func requireDispatch(t *testing.T, features cpu.Features, want string) {
	t.Helper()
	forceFeatures(t, features)

	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != want {
		t.Fatalf("expected %q, got %q", want, entry.Name)
	}

	input := testutil.Noise(3, 515)
	check := func(name string, c biquad.Coefficients) {
		t.Run(name, func(t *testing.T) {
			expect := testutil.Filter(biquad.NewSection(c).ProcessSample, input)

			got := append([]float64(nil), input...)
			biquad.NewSection(c).ProcessBlock(got)

			testutil.RequireSliceClose(t, got, expect, 1e-9)
		})
	}

	for _, ft := range design.FilterTypes() {
		c, ok := design.Design(ft, 1000.0/48000, 0.707, -6)
		if !ok {
			t.Fatalf("Design(%v) reported unknown type", ft)
		}
		check(ft.String(), c)
	}
	check("pidf", biquad.PIDF(1.2, 0.8, 0.01, 200, 1.0/48000))
}
