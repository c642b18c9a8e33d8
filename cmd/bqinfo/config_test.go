package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
sample_rate: 44100
stages:
  - type: highpass
    freq: 80
  - type: peak
    fc: 0.05
    q: 2
    gain_db: -3.5
  - type: pid
    pid: {kp: 1, ki: 0.5, kd: 0.01, n: 100, ts: 0.001}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 44100.0, cfg.SampleRate)
	require.Len(t, cfg.Stages, 3)
	assert.Equal(t, "highpass", cfg.Stages[0].Type)
	assert.Equal(t, 80.0, cfg.Stages[0].Freq)
	assert.InDelta(t, defaultQ, cfg.Stages[0].Q, 1e-15)
	assert.Equal(t, -3.5, cfg.Stages[1].GainDB)
	require.NotNil(t, cfg.Stages[2].PID)
	assert.Equal(t, PIDConfig{Kp: 1, Ki: 0.5, Kd: 0.01, N: 100, Ts: 0.001}, *cfg.Stages[2].PID)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "stages:\n  - type: unity\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultSampleRate, cfg.SampleRate)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = LoadConfig(writeConfig(t, "stages: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stage   StageConfig
		wantErr error
	}{
		{"unknown type", StageConfig{Type: "comb", Fc: 0.1, Q: 1}, design.ErrUnknownFilterType},
		{"no frequency", StageConfig{Type: "lowpass", Q: 1}, errNoFrequency},
		{"both frequencies", StageConfig{Type: "lowpass", Fc: 0.1, Freq: 1000, Q: 1}, errBothFrequency},
		{"above nyquist", StageConfig{Type: "lowpass", Freq: 30000, Q: 1}, design.ErrInvalidFrequency},
		{"negative q", StageConfig{Type: "notch", Fc: 0.1, Q: -1}, design.ErrInvalidQ},
		{"pid without block", StageConfig{Type: "pid"}, errMissingPID},
		{"pid zero ts", StageConfig{Type: "pid", PID: &PIDConfig{Kp: 1}}, errInvalidTs},
		{"uppercase pid without block", StageConfig{Type: "PID"}, errMissingPID},
		{"padded pid zero ts", StageConfig{Type: " Pid ", PID: &PIDConfig{Kp: 1}}, errInvalidTs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SampleRate: 48000, Stages: []StageConfig{tt.stage}}
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}

	require.ErrorIs(t, (&Config{SampleRate: 48000}).Validate(), errNoStages)
	require.ErrorIs(t, (&Config{SampleRate: -1, Stages: []StageConfig{{Type: "unity"}}}).Validate(),
		design.ErrInvalidSampleRate)
}

func TestConfig_Build(t *testing.T) {
	cfg := &Config{
		SampleRate: 48000,
		Stages: []StageConfig{
			{Type: "lowpass", Freq: 1200, Q: 0.7},
			{Type: "lowshelf", Fc: 0.01, Q: defaultQ, GainDB: 6},
			{Type: "pid", PID: &PIDConfig{Kp: 2, N: 10, Ts: 0.01}},
		},
	}

	chain, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, 3, chain.Len())

	want0, _ := design.Design(design.TypeLowpass, 1200.0/48000, 0.7, 0)
	assert.Equal(t, want0, chain.Section(0).Coefficients())

	want1, _ := design.Design(design.TypeLowShelf, 0.01, defaultQ, 6)
	assert.Equal(t, want1, chain.Section(1).Coefficients())

	assert.Equal(t, biquad.PIDF(2, 0, 0, 10, 0.01), chain.Section(2).Coefficients())
}

func TestConfig_BuildStageTypeIgnoresCase(t *testing.T) {
	cfg := &Config{
		SampleRate: 48000,
		Stages: []StageConfig{
			{Type: "PID", PID: &PIDConfig{Kp: 2, Ki: 1, N: 10, Ts: 0.01}},
			{Type: " Peak ", Fc: 0.05, Q: 2, GainDB: -3},
		},
	}

	chain, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, 2, chain.Len())

	assert.Equal(t, biquad.PIDF(2, 1, 0, 10, 0.01), chain.Section(0).Coefficients())

	want, _ := design.Design(design.TypePeak, 0.05, 2, -3)
	assert.Equal(t, want, chain.Section(1).Coefficients())
}

func TestConfig_BuildRejectsInvalid(t *testing.T) {
	_, err := (&Config{SampleRate: 48000}).Build()
	require.ErrorIs(t, err, errNoStages)
}
