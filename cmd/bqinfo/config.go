package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

const (
	defaultSampleRate = 48000.0
	stageTypePID      = "pid"
)

var defaultQ = 1 / math.Sqrt2

var (
	errNoStages      = errors.New("no stages configured")
	errNoFrequency   = errors.New("stage needs either fc or freq")
	errBothFrequency = errors.New("stage sets both fc and freq")
	errMissingPID    = errors.New("pid stage needs a pid block")
	errInvalidTs     = errors.New("pid ts must be positive")
)

// Config describes a chain of stages loaded from YAML.
type Config struct {
	SampleRate float64       `yaml:"sample_rate"`
	Stages     []StageConfig `yaml:"stages"`
}

// StageConfig is one biquad stage. Either fc (normalized) or freq (Hz) sets
// the frequency; pid stages use the pid block instead.
type StageConfig struct {
	Type   string     `yaml:"type"`
	Fc     float64    `yaml:"fc"`
	Freq   float64    `yaml:"freq"`
	Q      float64    `yaml:"q"`
	GainDB float64    `yaml:"gain_db"`
	PID    *PIDConfig `yaml:"pid"`
}

// PIDConfig holds the parameters of a discretized PID controller.
type PIDConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
	N  float64 `yaml:"n"`
	Ts float64 `yaml:"ts"`
}

// LoadConfig loads a chain description from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.SampleRate == 0 {
		c.SampleRate = defaultSampleRate
	}

	for i := range c.Stages {
		if c.Stages[i].Q == 0 {
			c.Stages[i].Q = defaultQ
		}
	}
}

// Validate checks every stage before any section is built.
func (c *Config) Validate() error {
	if err := design.ValidateSampleRate(c.SampleRate); err != nil {
		return err
	}

	if len(c.Stages) == 0 {
		return errNoStages
	}

	for i, st := range c.Stages {
		if err := st.validate(c.SampleRate); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, st.Type, err)
		}
	}

	return nil
}

// kind returns the stage type in the form both the pid check and
// design.ParseFilterType expect.
func (s StageConfig) kind() string {
	return strings.ToLower(strings.TrimSpace(s.Type))
}

func (s StageConfig) validate(sampleRate float64) error {
	kind := s.kind()
	if kind == stageTypePID {
		if s.PID == nil {
			return errMissingPID
		}
		if s.PID.Ts <= 0 {
			return errInvalidTs
		}
		return nil
	}

	ft, err := design.ParseFilterType(kind)
	if err != nil {
		return err
	}

	if ft == design.TypeUnity {
		return nil
	}

	switch {
	case s.Fc != 0 && s.Freq != 0:
		return errBothFrequency
	case s.Fc == 0 && s.Freq == 0:
		return errNoFrequency
	}

	return design.ValidateParams(s.normalized(sampleRate), s.Q)
}

func (s StageConfig) normalized(sampleRate float64) float64 {
	if s.Freq != 0 {
		return design.NormalizedFrequency(s.Freq, sampleRate)
	}

	return s.Fc
}

// Build creates one section per stage and chains them in order.
func (c *Config) Build() (*biquad.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	chain := biquad.NewChain()

	for _, st := range c.Stages {
		s := biquad.NewUnitySection()

		if kind := st.kind(); kind == stageTypePID {
			p := st.PID
			s.SetPIDF(p.Kp, p.Ki, p.Kd, p.N, p.Ts)
		} else {
			ft, _ := design.ParseFilterType(kind)
			design.SetCoefficients(ft, st.normalized(c.SampleRate), st.Q, st.GainDB, s)
		}

		chain.Add(s)
	}

	return chain, nil
}
