package sim

import (
	"errors"
	"fmt"
)

// Defaults mirror the reference checkout scenario: a single counter serving
// five arrivals per time unit for one simulated day.
const (
	DefaultServers     = 1
	DefaultArrivalRate = 5.0
	DefaultServiceTime = 3.0
	DefaultHorizon     = 1440.0
	DefaultSeed        = 42
)

// Params groups the inputs of a single simulation run.
// All randomness flows from Seed; two runs with equal Params produce
// byte-identical results.
type Params struct {
	Servers     int     // Number of checkout counters (>= 1)
	ArrivalRate float64 // Average customer arrivals per time unit (> 0)
	ServiceTime float64 // Time to serve one customer (> 0)
	Horizon     float64 // Total virtual time to simulate (>= 0)
	Seed        int64   // Seed for the run's random streams
	Trace       bool    // Record per-customer event traces (no effect on statistics)
}

// DefaultParams returns a Params with the reference defaults filled in.
func DefaultParams() Params {
	return Params{
		Servers:     DefaultServers,
		ArrivalRate: DefaultArrivalRate,
		ServiceTime: DefaultServiceTime,
		Horizon:     DefaultHorizon,
		Seed:        DefaultSeed,
	}
}

// ErrInvalidParam is the sentinel wrapped by every ParamError, so callers can
// classify validation failures with errors.Is without inspecting fields.
var ErrInvalidParam = errors.New("invalid simulation parameter")

// ParamError reports a single invalid simulation parameter.
// The engine fails fast on the first invalid field: no event is scheduled and
// no partial state is produced.
type ParamError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v %s: got %v, %s", ErrInvalidParam, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}

// Validate checks every field and returns a *ParamError for the first
// violation found, or nil if the parameters describe a runnable simulation.
func (p Params) Validate() error {
	if p.Servers < 1 {
		return &ParamError{Field: "servers", Value: p.Servers, Reason: "must be >= 1"}
	}
	if p.ArrivalRate <= 0 {
		return &ParamError{Field: "arrival_rate", Value: p.ArrivalRate, Reason: "must be > 0"}
	}
	if p.ServiceTime <= 0 {
		return &ParamError{Field: "service_time", Value: p.ServiceTime, Reason: "must be > 0"}
	}
	if p.Horizon < 0 {
		return &ParamError{Field: "sim_time", Value: p.Horizon, Reason: "must be >= 0"}
	}
	return nil
}
