package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/mm1-sim/mm1-sim/sim"
)

var (
	// CLI flags for the simulation scenario
	arrivalRate        float64 // Arrival rate (lambda)
	serviceRate        float64 // Service rate (mu)
	simulationHorizon  float64 // Total simulated time
	costOfBalking      float64 // Value of service in time units (0 = basic population)
	selfishProbability float64 // Probability a customer is selfish in a mixed population
	warmup             float64 // Observations before this time are excluded from statistics
	seed               int64   // Seed for random arrival/service generation
	runs               int     // Number of independent Monte Carlo replications
	logLevel           string  // Log verbosity level
	scenarioFile       string  // Optional YAML scenario file
	csvPath            string  // Optional CSV output path for completed customers
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mm1-sim",
	Short: "Discrete-event simulator for M/M/1 queues with balking",
}

// runCmd executes the simulation using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: lambda=%v, mu=%v, horizon=%v, population=%s, seed=%d",
			cfg.ArrivalRate, cfg.ServiceRate, cfg.Horizon, cfg.Population(), cfg.Seed)

		startTime := time.Now()

		if runs > 1 {
			results, err := sim.RunBatch(cfg, runs)
			if err != nil {
				logrus.Fatalf("Batch setup failed: %v", err)
			}
			renderBatch(os.Stdout, cfg, results)
		} else {
			s, err := sim.NewSimulator(cfg)
			if err != nil {
				logrus.Fatalf("Simulation setup failed: %v", err)
			}
			s.Run()
			renderSummary(os.Stdout, cfg, s.Summarize())

			if csvPath != "" {
				if err := exportCompleted(csvPath, s.Completed); err != nil {
					logrus.Fatalf("CSV export failed: %v", err)
				}
				logrus.Infof("Wrote %d completed customers to %s", len(s.Completed), csvPath)
			}
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// buildConfig assembles the sim.Config from the scenario file when given,
// otherwise from the flags. The cost/probability flag pair selects the
// population: neither = basic, cost alone = homogeneous selfish, both =
// mixed selfish/optimal.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	if scenarioFile != "" {
		return LoadScenario(scenarioFile)
	}

	cfg := sim.Config{
		ArrivalRate: arrivalRate,
		ServiceRate: serviceRate,
		Horizon:     simulationHorizon,
		Warmup:      warmup,
		Seed:        seed,
	}
	if cmd.Flags().Changed("cost") {
		balking := &sim.BalkingConfig{Cost: costOfBalking}
		if cmd.Flags().Changed("selfish-probability") {
			p := selfishProbability
			balking.SelfishProbability = &p
		}
		cfg.Balking = balking
	}
	return cfg, cfg.Validate()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 2.0, "Arrival rate lambda")
	runCmd.Flags().Float64Var(&serviceRate, "service-rate", 1.0, "Service rate mu")
	runCmd.Flags().Float64Var(&simulationHorizon, "horizon", 100.0, "Total simulation time")
	runCmd.Flags().Float64Var(&costOfBalking, "cost", 0, "Cost of balking in time units (omit for a basic population)")
	runCmd.Flags().Float64Var(&selfishProbability, "selfish-probability", 0, "Probability a customer is selfish; requires --cost and makes the population mixed")
	runCmd.Flags().Float64Var(&warmup, "warmup", 0, "Warm up time excluded from statistics")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random arrival and service generation")
	runCmd.Flags().IntVar(&runs, "runs", 1, "Number of independent replications over derived seeds")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "config", "", "YAML scenario file (overrides scenario flags)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write completed customers to this CSV file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
