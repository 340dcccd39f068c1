// Defines the Customer struct that models an individual customer in the simulation.
// Tracks arrival, service start and departure timestamps for wait/system time metrics.

package sim

import (
	"fmt"
)

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StateArrived   CustomerState = "arrived"
	StateWaiting   CustomerState = "waiting"
	StateInService CustomerState = "in_service"
	StateDeparted  CustomerState = "departed"
)

// Customer models a single customer's lifecycle in the simulation.
// A customer is created when its arrival event is dispatched and holds no
// state beyond the run: once its wait and system times are recorded into
// Metrics at departure, the struct is unreachable.
type Customer struct {
	ID int // Sequential identifier, assigned in arrival order

	State CustomerState // arrived, waiting, in_service, departed

	ArrivalTime      float64 // Virtual time the customer entered the system
	ServiceStartTime float64 // Virtual time a server was granted (valid once in_service)
	DepartureTime    float64 // Virtual time the customer left (valid once departed)
}

// WaitTime returns how long the customer waited for a server.
// Only meaningful once the customer has reached in_service.
func (c *Customer) WaitTime() float64 {
	return c.ServiceStartTime - c.ArrivalTime
}

// SystemTime returns the customer's total time in the system.
// Only meaningful once the customer has departed.
func (c *Customer) SystemTime() float64 {
	return c.DepartureTime - c.ArrivalTime
}

// This method returns a human-readable string representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer %d (state: %s, arrived: %.2f)", c.ID, c.State, c.ArrivalTime)
}
