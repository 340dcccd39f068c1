// Tracks run-wide performance metrics: per-customer wait and system times,
// queue length peaks, and server busy time for utilization.

package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a single simulation run for final
// reporting. Append-only while the run executes; owned solely by the run and
// never shared across runs.
type Metrics struct {
	WaitTimes   []float64 // Per completed customer: service start - arrival
	SystemTimes []float64 // Per completed customer: departure - arrival
	ServedCount int       // Number of customers that completed service

	TotalArrivals int     // Customers that entered the system within the horizon
	PeakQueueLen  int     // Max number of customers waiting at once
	BusyArea      float64 // Integral of in-use servers over virtual time
	SimEndedTime  float64 // Virtual time the run covered
}

// NewMetrics creates an empty aggregator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordDeparture appends the completed customer's wait and system times.
func (m *Metrics) RecordDeparture(c *Customer) {
	m.WaitTimes = append(m.WaitTimes, c.WaitTime())
	m.SystemTimes = append(m.SystemTimes, c.SystemTime())
	m.ServedCount++
}

// ObserveQueueLen updates the peak waiting-queue length.
func (m *Metrics) ObserveQueueLen(n int) {
	if n > m.PeakQueueLen {
		m.PeakQueueLen = n
	}
}

// Result is the engine's output contract. The averages are nil when no
// customer completed service within the horizon: callers must not conflate
// "no data" with "zero delay", so nil maps to JSON null rather than 0 or NaN.
type Result struct {
	TotalCustomers int      `json:"total_customers"`
	AvgWaitTime    *float64 `json:"avg_wait_time"`
	AvgSystemTime  *float64 `json:"avg_system_time"`
}

// Summarize reduces the aggregator to the Result triple.
// Averages are rounded to 2 decimals for presentation.
func (m *Metrics) Summarize() Result {
	res := Result{TotalCustomers: m.ServedCount}
	if m.ServedCount == 0 {
		return res
	}
	avgWait := round2(stat.Mean(m.WaitTimes, nil))
	avgSystem := round2(stat.Mean(m.SystemTimes, nil))
	res.AvgWaitTime = &avgWait
	res.AvgSystemTime = &avgSystem
	return res
}

// Utilization returns the time-averaged fraction of busy servers over the
// run, or 0 for an empty horizon.
func (m *Metrics) Utilization(capacity int) float64 {
	if m.SimEndedTime <= 0 || capacity < 1 {
		return 0
	}
	return m.BusyArea / (float64(capacity) * m.SimEndedTime)
}

// WaitQuantile returns the p-quantile (0 <= p <= 1) of recorded wait times,
// or 0 when no customer completed.
func (m *Metrics) WaitQuantile(p float64) float64 {
	if len(m.WaitTimes) == 0 {
		return 0
	}
	sorted := make([]float64, len(m.WaitTimes))
	copy(sorted, m.WaitTimes)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(capacity int) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Arrivals             : %d\n", m.TotalArrivals)
	fmt.Printf("Customers Served     : %d\n", m.ServedCount)
	if m.ServedCount > 0 {
		fmt.Printf("Average Wait Time    : %.2f\n", stat.Mean(m.WaitTimes, nil))
		fmt.Printf("Average System Time  : %.2f\n", stat.Mean(m.SystemTimes, nil))
		fmt.Printf("Wait p50/p90/p99     : %.2f / %.2f / %.2f\n",
			m.WaitQuantile(0.50), m.WaitQuantile(0.90), m.WaitQuantile(0.99))
	}
	fmt.Printf("Peak Queue Length    : %d\n", m.PeakQueueLen)
	fmt.Printf("Server Utilization   : %.2f%%\n", 100*m.Utilization(capacity))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
