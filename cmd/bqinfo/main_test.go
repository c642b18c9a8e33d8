package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCapture(t, "--list")
	require.Equal(t, 0, code)

	lines := strings.Fields(out)
	assert.Equal(t, []string{"lowpass", "highpass", "bandpass", "notch", "peak", "lowshelf", "highshelf", "unity", "pid"}, lines)
}

func TestRun_SingleStage(t *testing.T) {
	code, out, errOut := runCapture(t, "-t", "peak", "-f", "1000", "-r", "48000", "-q", "2", "-g", "6", "--at", "1000")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "peak")
	assert.Contains(t, out, "order=2 sections=1 stable=true")
	assert.Contains(t, out, "6.000")
}

func TestRun_PID(t *testing.T) {
	code, out, errOut := runCapture(t, "--pid", "1,0.5,0.01,100,0.001", "--at", "10")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "order=2 sections=1")
	assert.Contains(t, out, "pid")
}

func TestRun_PIDWrongArity(t *testing.T) {
	code, _, errOut := runCapture(t, "--pid", "1,2,3")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "--pid expects")
}

func TestRun_ConfigWithFFT(t *testing.T) {
	path := writeConfig(t, `
sample_rate: 48000
stages:
  - type: lowpass
    freq: 2000
  - type: highshelf
    freq: 8000
    gain_db: -3
`)

	code, out, errOut := runCapture(t, "-c", path, "--fft", "1024", "--at", "375,3000")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "order=4 sections=2 stable=true")
	assert.Contains(t, out, "Measured [dB]")
	assert.Contains(t, out, "highshelf")
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runCapture(t, "-t", "comb", "--fc", "0.1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown filter type")

	code, _, errOut = runCapture(t, "-t", "lowpass")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "fc or freq")

	code, _, errOut = runCapture(t, "-t", "lowpass", "--fc", "0.1", "--fft", "100")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "fft size")

	code, _, _ = runCapture(t, "--no-such-flag")
	assert.Equal(t, 2, code)
}
