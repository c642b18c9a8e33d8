// Command bqinfo designs biquad stages and prints their coefficients,
// poles, zeros, stability and magnitude response.
//
// Usage:
//
//	bqinfo [flags]
//
// A single stage is described with flags; a chain of stages is read from a
// YAML file with --config.
//
// Examples:
//
//	bqinfo -t lowpass --fc 0.1 -q 0.707
//	bqinfo -t peak -f 1000 -r 48000 -q 2 -g 6 --at 100,1000,10000
//	bqinfo --pid 1,0.5,0.01,100,0.001
//	bqinfo -c chain.yaml --fft 4096 --at 50,1000,15000
//	bqinfo --list
package main

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/measure/response"
)

var errPIDArgs = errors.New("--pid expects kp,ki,kd,n,ts")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("bqinfo", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		typeName   = fs.StringP("type", "t", "lowpass", "filter type (see --list)")
		fc         = fs.Float64("fc", 0, "normalized frequency f/fs in (0, 0.5)")
		freq       = fs.Float64P("freq", "f", 0, "frequency in Hz, normalized with --rate")
		rate       = fs.Float64P("rate", "r", defaultSampleRate, "sample rate in Hz")
		q          = fs.Float64P("q", "q", defaultQ, "quality factor")
		gain       = fs.Float64P("gain", "g", 0, "peak/shelf gain in dB")
		pid        = fs.Float64Slice("pid", nil, "PID controller kp,ki,kd,n,ts instead of a filter type")
		configFile = fs.StringP("config", "c", "", "YAML chain description")
		list       = fs.Bool("list", false, "list filter type names")
		fftSize    = fs.Int("fft", 0, "FFT size for a measured response (0 = off)")
		at         = fs.Float64Slice("at", []float64{100, 1000, 10000}, "frequencies in Hz to report")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bqinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Designs biquad stages and prints coefficients, poles, zeros and response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		for _, ft := range design.FilterTypes() {
			fmt.Fprintln(stdout, ft)
		}
		fmt.Fprintln(stdout, stageTypePID)
		return 0
	}

	var (
		cfg *Config
		err error
	)

	if *configFile != "" {
		cfg, err = LoadConfig(*configFile)
	} else {
		cfg, err = configFromFlags(*typeName, *fc, *freq, *rate, *q, *gain, *pid)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	chain, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "error: invalid configuration: %v\n", err)
		return 1
	}

	if err := printStages(stdout, cfg, chain); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}

	if err := printSummary(stdout, cfg.SampleRate, chain, *at, *fftSize); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func configFromFlags(typeName string, fc, freq, rate, q, gain float64, pid []float64) (*Config, error) {
	st := StageConfig{Type: typeName, Fc: fc, Freq: freq, Q: q, GainDB: gain}

	if len(pid) > 0 {
		if len(pid) != 5 {
			return nil, fmt.Errorf("%w, got %d values", errPIDArgs, len(pid))
		}

		st = StageConfig{
			Type: stageTypePID,
			PID:  &PIDConfig{Kp: pid[0], Ki: pid[1], Kd: pid[2], N: pid[3], Ts: pid[4]},
		}
	}

	cfg := &Config{SampleRate: rate, Stages: []StageConfig{st}}
	cfg.applyDefaults()

	return cfg, nil
}

func printStages(w io.Writer, cfg *Config, chain *biquad.Chain) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Stage\tType\tb0\tb1\tb2\ta1\ta2\tPoles\tZeros\tStable\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t--\t--\t--\t--\t--\t-----\t-----\t------\n"); err != nil {
		return err
	}

	for i, pz := range chain.PoleZeroPairs() {
		s := chain.Section(i)
		c := s.Coefficients()

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\t%s %s\t%s %s\t%v\n",
			i,
			cfg.Stages[i].Type,
			c.B0, c.B1, c.B2, c.A1, c.A2,
			formatRoot(pz.Poles[0]), formatRoot(pz.Poles[1]),
			formatRoot(pz.Zeros[0]), formatRoot(pz.Zeros[1]),
			s.Stable(),
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func printSummary(w io.Writer, sampleRate float64, chain *biquad.Chain, at []float64, fftSize int) error {
	if _, err := fmt.Fprintf(w, "\norder=%d sections=%d stable=%v\n\n", chain.Order(), chain.Len(), chain.Stable()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	var measured *response.Response
	if fftSize > 0 {
		var err error
		if measured, err = response.Measure(chain, fftSize, sampleRate); err != nil {
			return fmt.Errorf("failed to measure response: %w", err)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Freq [Hz]\tMagnitude [dB]\tPhase [rad]"
	if measured != nil {
		header += "\tMeasured [dB]\tBin [Hz]"
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, f := range at {
		h := chain.Response(f, sampleRate)
		row := fmt.Sprintf("%.1f\t%.3f\t%.4f", f, chain.MagnitudeDB(f, sampleRate), cmplx.Phase(h))

		if measured != nil {
			i := measured.At(f)
			row += fmt.Sprintf("\t%.3f\t%.1f", measured.MagnitudeDB(i), measured.BinFrequency(i))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func formatRoot(z complex128) string {
	return fmt.Sprintf("%.4f%+.4fi", real(z), imag(z))
}
