package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queueing-sim/queueing-sim/sim"
)

var (
	// CLI flags shared by the run and sweep subcommands
	lambda     float64 // Arrival rate (customers per unit time)
	mu         float64 // Per-server service rate
	servers    int     // Number of identical servers
	horizon    float64 // Simulation horizon Tsim
	seeds      []int64 // One replication per seed
	serverCost float64 // Cost per server per unit time
	waitCost   float64 // Cost per unit time per queued customer
	noCost     bool    // Disable the cost model entirely
	configPath string  // Optional YAML experiment file
	logLevel   string  // Log verbosity level
)

// defaultSeeds gives five replications out of the box.
var defaultSeeds = []int64{235, 284, 893, 895, 394}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queueing-sim",
	Short: "Discrete-event simulator for M/M/c queueing systems",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag before any command runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// addExperimentFlags registers the flags shared by run and sweep.
func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lambda, "lambda", 0.9, "Arrival rate (customers per unit time)")
	cmd.Flags().Float64Var(&mu, "mu", 1.0, "Per-server service rate")
	cmd.Flags().Float64Var(&horizon, "horizon", 10000, "Simulation horizon Tsim")
	cmd.Flags().Int64SliceVar(&seeds, "seeds", defaultSeeds, "Comma-separated replication seeds")
	cmd.Flags().Float64Var(&serverCost, "server-cost", 50.0, "Cost per server per unit time")
	cmd.Flags().Float64Var(&waitCost, "wait-cost", 10.0, "Cost per unit time per queued customer")
	cmd.Flags().BoolVar(&noCost, "no-cost", false, "Disable the cost model")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML experiment file (flags set explicitly override it)")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// buildExperiment assembles the experiment configuration from the YAML
// file (when given) and the CLI flags. A flag set explicitly on the
// command line overrides the file value.
func buildExperiment(cmd *cobra.Command) (sim.ExperimentConfig, error) {
	exp := sim.ExperimentConfig{
		Lambda:  lambda,
		Mu:      mu,
		Servers: servers,
		Horizon: horizon,
		Seeds:   seeds,
	}
	if !noCost {
		exp.Cost = &sim.CostConfig{ServerPerHour: serverCost, WaitPerHour: waitCost}
	}

	if configPath == "" {
		return exp, nil
	}

	file, err := loadExperimentFile(configPath)
	if err != nil {
		return sim.ExperimentConfig{}, err
	}
	file.merge(&exp, cmd.Flags())
	return exp, nil
}
