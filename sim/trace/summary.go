package trace

import (
	"fmt"
	"strings"
)

// Summary aggregates statistics from a Trace.
type Summary struct {
	Arrivals      int
	ServiceStarts int
	Departures    int
	MaxQueueLen   int // largest waiting-queue length observed at any record
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{}
	if t == nil {
		return summary
	}

	for _, r := range t.Records {
		switch r.Kind {
		case KindArrival:
			summary.Arrivals++
		case KindServiceStart:
			summary.ServiceStarts++
		case KindDeparture:
			summary.Departures++
		}
		if r.QueueLen > summary.MaxQueueLen {
			summary.MaxQueueLen = r.QueueLen
		}
	}

	return summary
}

// Render formats the trace as human-readable event lines, one per record,
// in recording order.
func (t *Trace) Render() string {
	if t == nil || len(t.Records) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, r := range t.Records {
		switch r.Kind {
		case KindArrival:
			fmt.Fprintf(&sb, "customer %d arrives at %.2f (queue %d, in use %d)\n",
				r.CustomerID, r.Time, r.QueueLen, r.InUse)
		case KindServiceStart:
			fmt.Fprintf(&sb, "customer %d starts service at %.2f (queue %d, in use %d)\n",
				r.CustomerID, r.Time, r.QueueLen, r.InUse)
		case KindDeparture:
			fmt.Fprintf(&sb, "customer %d leaves at %.2f (queue %d, in use %d)\n",
				r.CustomerID, r.Time, r.QueueLen, r.InUse)
		}
	}
	return sb.String()
}
