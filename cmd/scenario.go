package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/checkout-sim/checkout-sim/sim"
)

// Scenario is a YAML-loadable description of a simulation run.
// Zero-valued fields fall back to the engine defaults.
type Scenario struct {
	Name        string  `yaml:"name"`
	Servers     int     `yaml:"servers"`
	ArrivalRate float64 `yaml:"arrival_rate"`
	ServiceTime float64 `yaml:"service_time"`
	SimTime     float64 `yaml:"sim_time"`
	Seed        int64   `yaml:"seed"`

	// ServiceDistribution selects the service-time sampler: "fixed" (default)
	// holds every customer for exactly ServiceTime; "exponential" draws from
	// an exponential distribution with mean ServiceTime.
	ServiceDistribution string `yaml:"service_distribution,omitempty"`

	// SweepServers lists the server counts the sweep command runs the
	// scenario across. Empty means sweep has nothing to do.
	SweepServers []int `yaml:"sweep_servers,omitempty"`
}

// LoadScenario loads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	sc := &Scenario{
		Servers:     sim.DefaultServers,
		ArrivalRate: sim.DefaultArrivalRate,
		ServiceTime: sim.DefaultServiceTime,
		SimTime:     sim.DefaultHorizon,
		Seed:        sim.DefaultSeed,
	}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// Validate checks scenario fields beyond what sim.Params.Validate covers.
func (sc *Scenario) Validate() error {
	switch sc.ServiceDistribution {
	case "", "fixed", "exponential":
	default:
		return fmt.Errorf("unknown service_distribution %q (want fixed or exponential)", sc.ServiceDistribution)
	}
	for _, n := range sc.SweepServers {
		if n < 1 {
			return fmt.Errorf("sweep_servers entries must be >= 1, got %d", n)
		}
	}
	return sc.Params().Validate()
}

// Params converts the scenario into engine parameters.
func (sc *Scenario) Params() sim.Params {
	return sim.Params{
		Servers:     sc.Servers,
		ArrivalRate: sc.ArrivalRate,
		ServiceTime: sc.ServiceTime,
		Horizon:     sc.SimTime,
		Seed:        sc.Seed,
	}
}

// newSimulator builds a simulator for the scenario, swapping in the
// exponential service sampler when requested.
func (sc *Scenario) newSimulator(p sim.Params) (*sim.Simulator, error) {
	s, err := sim.NewSimulator(p)
	if err != nil {
		return nil, err
	}
	if sc.ServiceDistribution == "exponential" {
		s.Service = sim.NewExponentialService(sc.ServiceTime)
	}
	return s, nil
}

// sweepCmd runs a scenario across its sweep_servers counts and prints a
// wait-time table. More servers never worsen the average wait, so the table
// reads as a capacity-planning curve.
var sweepCmd = &cobra.Command{
	Use:   "sweep [scenario.yaml]",
	Short: "Run a scenario across a range of server counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}

		sc, err := LoadScenario(args[0])
		if err != nil {
			return err
		}
		if len(sc.SweepServers) == 0 {
			return fmt.Errorf("scenario %q has no sweep_servers list", sc.Name)
		}

		logrus.Infof("Sweeping scenario %q over %v servers", sc.Name, sc.SweepServers)

		fmt.Printf("scenario: %s\n", sc.Name)
		fmt.Printf("%-8s %-10s %-14s %-14s\n", "servers", "served", "avg_wait", "avg_system")
		for _, n := range sc.SweepServers {
			p := sc.Params()
			p.Servers = n
			s, err := sc.newSimulator(p)
			if err != nil {
				return err
			}
			s.Run()
			res := s.Metrics.Summarize()
			fmt.Printf("%-8d %-10d %-14s %-14s\n", n, res.TotalCustomers,
				formatAvg(res.AvgWaitTime), formatAvg(res.AvgSystemTime))
		}
		return nil
	},
}

// formatAvg renders a nullable average for the sweep table.
func formatAvg(v *float64) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%.2f", *v)
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
