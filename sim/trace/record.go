// Package trace provides per-customer event recording for verbose runs.
// This package has no dependencies on sim/ — it stores pure data types, so
// recording can never feed back into simulation behavior.
package trace

// Kind labels a customer lifecycle transition.
type Kind string

const (
	KindArrival      Kind = "arrival"
	KindServiceStart Kind = "service_start"
	KindDeparture    Kind = "departure"
)

// Record captures a single customer lifecycle transition together with the
// pool state observed at that instant.
type Record struct {
	Time       float64
	CustomerID int
	Kind       Kind
	QueueLen   int // customers waiting after this transition
	InUse      int // servers held after this transition
}
