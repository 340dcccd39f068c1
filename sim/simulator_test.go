package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runOrFail runs a simulation and fails the test on parameter errors.
func runOrFail(t *testing.T, p Params) Result {
	t.Helper()
	res, err := RunSimulation(p)
	require.NoError(t, err)
	return res
}

func TestRunSimulation_Deterministic(t *testing.T) {
	// GIVEN fixed parameters and seed
	p := Params{Servers: 2, ArrivalRate: 0.5, ServiceTime: 3, Horizon: 200, Seed: 42}

	// WHEN the simulation runs repeatedly
	first := runOrFail(t, p)
	for i := 0; i < 3; i++ {
		// THEN every run produces the identical result
		assert.Equal(t, first, runOrFail(t, p), "run %d diverged", i)
	}
}

func TestRunSimulation_ReferenceScenario_Stable(t *testing.T) {
	// The fixed reference scenario must reproduce the same triple every run.
	p := Params{Servers: 1, ArrivalRate: 0.2, ServiceTime: 3, Horizon: 100, Seed: 42}

	first := runOrFail(t, p)
	require.Greater(t, first.TotalCustomers, 0, "reference scenario should serve customers")
	require.NotNil(t, first.AvgWaitTime)
	require.NotNil(t, first.AvgSystemTime)

	second := runOrFail(t, p)
	assert.Equal(t, first, second)
}

func TestRunSimulation_MoreServersNeverWorsenWait(t *testing.T) {
	// GIVEN a loaded single-server system
	base := Params{Servers: 1, ArrivalRate: 1.0, ServiceTime: 2, Horizon: 500, Seed: 42}

	// WHEN capacity grows with everything else fixed
	prev := -1.0
	for _, n := range []int{1, 2, 3, 5, 8} {
		p := base
		p.Servers = n
		res := runOrFail(t, p)
		require.NotNil(t, res.AvgWaitTime, "servers=%d", n)

		// THEN the average wait is non-increasing in server count
		if prev >= 0 {
			assert.LessOrEqual(t, *res.AvgWaitTime, prev, "servers=%d worsened the average wait", n)
		}
		prev = *res.AvgWaitTime
	}
}

func TestRunSimulation_IdleCapacity_ZeroWait(t *testing.T) {
	// GIVEN far more servers than customers could ever need at once
	p := Params{Servers: 1000, ArrivalRate: 0.5, ServiceTime: 3, Horizon: 100, Seed: 42}

	res := runOrFail(t, p)
	require.Greater(t, res.TotalCustomers, 0)
	require.NotNil(t, res.AvgWaitTime)

	// THEN nobody ever queued
	assert.Equal(t, 0.0, *res.AvgWaitTime)
}

func TestRunSimulation_Conservation(t *testing.T) {
	// Every completed customer's system time is exactly wait + service time,
	// so the averages obey the same identity up to the 2-decimal rounding.
	for _, seed := range []int64{1, 42, 1234} {
		p := Params{Servers: 2, ArrivalRate: 0.8, ServiceTime: 2.5, Horizon: 300, Seed: seed}
		res := runOrFail(t, p)
		require.Greater(t, res.TotalCustomers, 0, "seed=%d", seed)
		require.NotNil(t, res.AvgWaitTime)
		require.NotNil(t, res.AvgSystemTime)
		assert.InDelta(t, *res.AvgWaitTime+p.ServiceTime, *res.AvgSystemTime, 0.011, "seed=%d", seed)
	}
}

func TestRunSimulation_EmptyHorizon(t *testing.T) {
	// GIVEN a zero-length horizon
	p := Params{Servers: 1, ArrivalRate: 5, ServiceTime: 3, Horizon: 0, Seed: 42}

	res := runOrFail(t, p)

	// THEN no customer completes and both averages are null, not zero
	assert.Equal(t, 0, res.TotalCustomers)
	assert.Nil(t, res.AvgWaitTime)
	assert.Nil(t, res.AvgSystemTime)
}

func TestRunSimulation_ArrivalCountIndependentOfServers(t *testing.T) {
	// The arrival stream is drawn from its own RNG subsystem, so server
	// capacity must not change who arrives within the horizon.
	counts := make([]int, 0, 3)
	for _, n := range []int{1, 3, 10} {
		s, err := NewSimulator(Params{Servers: n, ArrivalRate: 0.5, ServiceTime: 3, Horizon: 100, Seed: 42})
		require.NoError(t, err)
		s.Run()
		counts = append(counts, s.Metrics.TotalArrivals)
	}
	assert.Equal(t, counts[0], counts[1])
	assert.Equal(t, counts[0], counts[2])
}

func TestRunSimulation_SingleServer_FIFOServiceOrder(t *testing.T) {
	// With one server, FIFO queue fairness means customers must start
	// service in exactly their arrival order.
	s, err := NewSimulator(Params{Servers: 1, ArrivalRate: 2, ServiceTime: 1, Horizon: 50, Seed: 7, Trace: true})
	require.NoError(t, err)
	s.Run()

	lastStarted := -1
	for _, r := range s.Trace.Records {
		if r.Kind != "service_start" {
			continue
		}
		assert.Equal(t, lastStarted+1, r.CustomerID, "service order broke FIFO at t=%.2f", r.Time)
		lastStarted = r.CustomerID
	}
	require.Greater(t, lastStarted, 0, "expected multiple service starts")
}

func TestRunSimulation_EventsBeyondHorizonDiscarded(t *testing.T) {
	// A departure scheduled past the horizon must never execute: customers
	// still in service at the end contribute nothing to the aggregator.
	s, err := NewSimulator(Params{Servers: 1, ArrivalRate: 1, ServiceTime: 4, Horizon: 60, Seed: 3})
	require.NoError(t, err)
	s.Run()

	assert.LessOrEqual(t, s.Clock, s.Horizon, "clock advanced past the horizon")
	assert.Less(t, s.Metrics.ServedCount, s.Metrics.TotalArrivals,
		"under this load some arrivals must still be in system at the horizon")
}

func TestNewSimulator_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		field string
	}{
		{"zero servers", Params{Servers: 0, ArrivalRate: 1, ServiceTime: 1, Horizon: 10}, "servers"},
		{"negative servers", Params{Servers: -2, ArrivalRate: 1, ServiceTime: 1, Horizon: 10}, "servers"},
		{"zero arrival rate", Params{Servers: 1, ArrivalRate: 0, ServiceTime: 1, Horizon: 10}, "arrival_rate"},
		{"negative arrival rate", Params{Servers: 1, ArrivalRate: -0.5, ServiceTime: 1, Horizon: 10}, "arrival_rate"},
		{"zero service time", Params{Servers: 1, ArrivalRate: 1, ServiceTime: 0, Horizon: 10}, "service_time"},
		{"negative horizon", Params{Servers: 1, ArrivalRate: 1, ServiceTime: 1, Horizon: -1}, "sim_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSimulator(tt.p)
			require.Error(t, err)
			assert.Nil(t, s, "no simulator state may exist after a validation failure")
			assert.ErrorIs(t, err, ErrInvalidParam)

			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestRunSimulation_TraceDoesNotChangeStatistics(t *testing.T) {
	// The verbose input enables tracing only; returned statistics are
	// identical with and without it.
	p := Params{Servers: 2, ArrivalRate: 0.7, ServiceTime: 2, Horizon: 150, Seed: 11}
	quiet := runOrFail(t, p)
	p.Trace = true
	traced := runOrFail(t, p)
	assert.Equal(t, quiet, traced)
}
