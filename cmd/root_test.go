package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/checkout-sim/checkout-sim/sim"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintResult_JSON_NullAveragesForEmptyRun(t *testing.T) {
	// GIVEN a run with a zero horizon (nothing completes)
	p := sim.Params{Servers: 1, ArrivalRate: 5, ServiceTime: 3, Horizon: 0, Seed: 42}
	s, err := sim.NewSimulator(p)
	require.NoError(t, err)
	s.Run()

	// WHEN the result is printed as JSON
	output = "json"
	defer func() { output = "text" }()
	out := captureStdout(t, func() {
		require.NoError(t, printResult(s, p))
	})

	// THEN the averages appear as null, never 0
	assert.Contains(t, out, `"total_customers": 0`)
	assert.Contains(t, out, `"avg_wait_time": null`)
	assert.Contains(t, out, `"avg_system_time": null`)
}

func TestPrintResult_Text_PrintsMetricsHeader(t *testing.T) {
	p := sim.Params{Servers: 1, ArrivalRate: 0.2, ServiceTime: 3, Horizon: 100, Seed: 42}
	s, err := sim.NewSimulator(p)
	require.NoError(t, err)
	s.Run()

	output = "text"
	out := captureStdout(t, func() {
		require.NoError(t, printResult(s, p))
	})

	assert.Contains(t, out, "Simulation Metrics")
	assert.Contains(t, out, "Customers Served")
}

func TestPrintResult_UnknownFormat_Errors(t *testing.T) {
	p := sim.DefaultParams()
	p.Horizon = 0
	s, err := sim.NewSimulator(p)
	require.NoError(t, err)
	s.Run()

	output = "xml"
	defer func() { output = "text" }()
	assert.Error(t, printResult(s, p))
}

func TestRunCmd_FlagDefaultsMatchEngineDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"servers", "1"},
		{"arrival-rate", "5"},
		{"service-time", "3"},
		{"sim-time", "1440"},
		{"seed", "42"},
		{"log", "error"},
		{"output", "text"},
	}
	for _, tt := range tests {
		f := runCmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, "flag --%s not registered", tt.flag)
		assert.Equal(t, tt.want, f.DefValue, "flag --%s default", tt.flag)
	}
}
