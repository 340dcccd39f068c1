// Package sim provides the discrete-event engine for the checkout queueing
// simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (arrived → waiting → in_service → departed)
//   - event.go: Event types that drive the simulation (Arrival, ServiceStart, Departure)
//   - simulator.go: The event heap, the run loop, and the RunSimulation entry point
//
// # Architecture
//
// The engine is single-threaded and cooperative: a virtual clock advances
// only when the next pending event is dispatched, and "concurrent" customers
// are just events interleaved on one timeline. The shared resource is the
// ServerPool (pool.go): arriving customers acquire a server or wait in FIFO
// order, hold it for the sampled service duration, then release it, at which
// point the longest-waiting customer starts service in the same simulated
// instant.
//
// All randomness flows through a PartitionedRNG (rng.go) keyed by the run's
// seed, with isolated streams for arrivals and service sampling, so a run is
// reproducible bit-for-bit from its Params.
//
// The sim/trace sub-package records per-customer lifecycle transitions for
// verbose runs; tracing never affects the returned statistics.
package sim
