package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in virtual time units) and an Execute method
// that advances simulation state when invoked. Events are immutable once
// scheduled and are consumed exactly once.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents a new customer entering the system.
type ArrivalEvent struct {
	time     float64   // Virtual time of arrival
	Customer *Customer // The arriving customer
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute records the arrival, tries to seize a server, and schedules the
// next arrival draw so the arrival sequence stays one event ahead.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	c := e.Customer
	c.State = StateArrived
	c.ArrivalTime = e.time
	logrus.Infof("<< Arrival: customer %d at %.2f", c.ID, e.time)

	sim.Metrics.TotalArrivals++
	sim.Trace.Append(trace.Record{
		Time: e.time, CustomerID: c.ID, Kind: trace.KindArrival,
		QueueLen: sim.Pool.QueueLen(), InUse: sim.Pool.InUse(),
	})

	if sim.Pool.Acquire(c) {
		// A counter is free: service starts in this same simulated instant.
		sim.Schedule(&ServiceStartEvent{time: e.time, Customer: c})
	} else {
		c.State = StateWaiting
		sim.Metrics.ObserveQueueLen(sim.Pool.QueueLen())
		logrus.Infof("   customer %d waits (%s)", c.ID, sim.Pool)
	}

	// The arrival sequence is unbounded; the run's horizon discards any
	// draw that lands beyond it.
	sim.scheduleNextArrival(e.time)
}

// ServiceStartEvent represents a customer being granted a server, either
// immediately on arrival or when a departing customer frees one.
type ServiceStartEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the ServiceStartEvent.
func (e *ServiceStartEvent) Timestamp() float64 {
	return e.time
}

// Execute moves the customer into service and schedules its departure.
func (e *ServiceStartEvent) Execute(sim *Simulator) {
	c := e.Customer
	c.State = StateInService
	c.ServiceStartTime = e.time
	logrus.Infof("<< ServiceStart: customer %d at %.2f (waited %.2f)", c.ID, e.time, c.WaitTime())

	sim.Trace.Append(trace.Record{
		Time: e.time, CustomerID: c.ID, Kind: trace.KindServiceStart,
		QueueLen: sim.Pool.QueueLen(), InUse: sim.Pool.InUse(),
	})

	duration := sim.Service.SampleService(sim.RNG.ForSubsystem(SubsystemService))
	sim.Schedule(&DepartureEvent{time: e.time + duration, Customer: c})
}

// DepartureEvent represents a customer completing service and leaving.
type DepartureEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the held server, hands it to the longest-waiting customer
// (who starts service at this same instant), and records the departing
// customer's wait and system times.
func (e *DepartureEvent) Execute(sim *Simulator) {
	c := e.Customer
	c.State = StateDeparted
	c.DepartureTime = e.time
	logrus.Infof("<< Departure: customer %d at %.2f (system time %.2f)", c.ID, e.time, c.SystemTime())

	if next := sim.Pool.Release(); next != nil {
		sim.Schedule(&ServiceStartEvent{time: e.time, Customer: next})
	}

	sim.Metrics.RecordDeparture(c)
	sim.Trace.Append(trace.Record{
		Time: e.time, CustomerID: c.ID, Kind: trace.KindDeparture,
		QueueLen: sim.Pool.QueueLen(), InUse: sim.Pool.InUse(),
	})
}
