package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/checkout-sim/checkout-sim/sim"
)

var (
	// CLI flags for the simulation run
	servers     int     // Number of checkout counters
	arrivalRate float64 // Average customer arrivals per time unit
	serviceTime float64 // Time to serve one customer
	simTime     float64 // Total virtual time to simulate
	seed        int64   // Seed for the run's random streams
	verbose     bool    // Print per-customer event traces
	logLevel    string  // Log verbosity level
	output      string  // Output format: text or json
	scenario    string  // Optional scenario YAML overriding the flags above
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "checkout-sim",
	Short: "Discrete-event simulator for multi-server checkout queues",
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checkout simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}

		p := sim.Params{
			Servers:     servers,
			ArrivalRate: arrivalRate,
			ServiceTime: serviceTime,
			Horizon:     simTime,
			Seed:        seed,
			Trace:       verbose,
		}

		var s *sim.Simulator
		var err error
		if scenario != "" {
			sc, loadErr := LoadScenario(scenario)
			if loadErr != nil {
				return loadErr
			}
			p = sc.Params()
			p.Trace = verbose
			s, err = sc.newSimulator(p)
		} else {
			s, err = sim.NewSimulator(p)
		}
		if err != nil {
			return err
		}

		logrus.Infof("Starting simulation: %d servers, rate=%.2f, service=%.2f, horizon=%.2f, seed=%d",
			p.Servers, p.ArrivalRate, p.ServiceTime, p.Horizon, p.Seed)
		s.Run()

		if verbose {
			fmt.Print(s.Trace.Render())
		}

		return printResult(s, p)
	},
}

// printResult renders the run's statistics in the selected output format.
func printResult(s *sim.Simulator, p sim.Params) error {
	res := s.Metrics.Summarize()
	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "", "text":
		s.Metrics.Print(p.Servers)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", output)
	}
}

// setupLogging parses and applies the --log level flag.
func setupLogging() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&servers, "servers", sim.DefaultServers, "Number of checkout counters")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", sim.DefaultArrivalRate, "Average customer arrivals per time unit")
	runCmd.Flags().Float64Var(&serviceTime, "service-time", sim.DefaultServiceTime, "Time to serve one customer")
	runCmd.Flags().Float64Var(&simTime, "sim-time", sim.DefaultHorizon, "Total virtual time to simulate")
	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for random arrival generation")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Print per-customer event traces")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&output, "output", "text", "Output format (text, json)")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Scenario YAML file overriding the parameter flags")

	rootCmd.AddCommand(runCmd)
}
