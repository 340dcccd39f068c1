// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// queuedEvent pairs an Event with its insertion sequence number.
// The sequence number breaks timestamp ties so that events scheduled first
// execute first: this is what makes a release-instant grant run in the same
// simulated instant as the departure that freed the server, and what keeps
// queue fairness FIFO.
type queuedEvent struct {
	event Event
	seq   uint64
}

// EventQueue implements heap.Interface and orders events by (timestamp, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].event.Timestamp() != eq[j].event.Timestamp() {
		return eq[i].event.Timestamp() < eq[j].event.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds the virtual clock, system state,
// and the event loop. Each Simulator is a fresh, independent run: clock,
// pool, metrics, trace, and RNG streams are never shared across runs.
type Simulator struct {
	Clock   float64
	Horizon float64
	// EventQueue holds all pending events: arrivals, service starts, departures
	EventQueue EventQueue
	// Pool is the shared server resource customers acquire and release
	Pool *ServerPool
	// Metrics accumulates per-customer wait and system times
	Metrics *Metrics
	// Trace records per-customer lifecycle transitions when enabled
	Trace *trace.Trace
	// RNG provides the run's deterministic random streams
	RNG *PartitionedRNG
	// Arrivals draws inter-arrival gaps
	Arrivals ArrivalSampler
	// Service draws per-customer service durations
	Service ServiceSampler

	seq            uint64 // next insertion sequence number
	nextCustomerID int
}

// NewSimulator validates params and builds a ready-to-run Simulator with the
// default samplers (Poisson arrivals, fixed service time). The first arrival
// draw is already scheduled. Returns a *ParamError without creating any
// state when params are invalid.
func NewSimulator(p Params) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	level := trace.LevelNone
	if p.Trace {
		level = trace.LevelEvents
	}

	s := &Simulator{
		Clock:      0,
		Horizon:    p.Horizon,
		EventQueue: make(EventQueue, 0),
		Pool:       NewServerPool(p.Servers),
		Metrics:    NewMetrics(),
		Trace:      trace.New(level),
		RNG:        NewPartitionedRNG(NewSimulationKey(p.Seed)),
		Arrivals:   NewExponentialArrivals(p.ArrivalRate),
		Service:    NewFixedService(p.ServiceTime),
	}

	s.scheduleNextArrival(0)
	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.seq++
	heap.Push(&sim.EventQueue, &queuedEvent{event: ev, seq: sim.seq})
}

// scheduleNextArrival draws the next inter-arrival gap and schedules the
// arrival of a fresh customer at now + gap. The customer struct is created
// here but its arrival is only recorded when the event dispatches.
func (sim *Simulator) scheduleNextArrival(now float64) {
	gap := sim.Arrivals.SampleGap(sim.RNG.ForSubsystem(SubsystemArrivals))
	c := &Customer{ID: sim.nextCustomerID}
	sim.nextCustomerID++
	sim.Schedule(&ArrivalEvent{time: now + gap, Customer: c})
}

// Run drives the event loop: repeatedly pop the earliest pending event, set
// the clock to its timestamp, and execute its handler. Events timestamped
// beyond the horizon are discarded, never executed, so results reflect only
// what happened within [0, Horizon].
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		next := sim.EventQueue[0]
		if next.event.Timestamp() > sim.Horizon {
			break
		}
		ev := heap.Pop(&sim.EventQueue).(*queuedEvent).event

		// integrate server busy time over the interval being skipped
		sim.Metrics.BusyArea += float64(sim.Pool.InUse()) * (ev.Timestamp() - sim.Clock)
		// advance the clock, then process the event at its own timestamp
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t %10.2f] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	// account for the tail interval with no executable events
	sim.Metrics.BusyArea += float64(sim.Pool.InUse()) * (sim.Horizon - sim.Clock)
	sim.Metrics.SimEndedTime = sim.Horizon
	logrus.Infof("[t %10.2f] Simulation ended", sim.Horizon)
}

// RunSimulation is the engine's call/return contract: parameters in,
// aggregate statistics out. It performs no I/O, never consults the wall
// clock, and draws all randomness from the seeded streams, so equal Params
// always produce byte-identical Results.
func RunSimulation(p Params) (Result, error) {
	s, err := NewSimulator(p)
	if err != nil {
		return Result{}, err
	}
	s.Run()
	return s.Metrics.Summarize(), nil
}
