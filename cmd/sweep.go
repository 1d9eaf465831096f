package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queueing-sim/queueing-sim/sim"
)

var (
	sweepServers []int  // Server counts to sweep
	plotPath     string // Optional PNG output for the Wq-vs-servers chart
)

// SweepResult pairs one swept server count with its replication summary.
type SweepResult struct {
	Servers int
	Summary *sim.ReplicationSummary
}

// sweepCmd runs the same replicated experiment once per server count and
// compares the configurations, reporting the cost-optimal one.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the server count and compare configurations",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		base, err := buildExperiment(cmd)
		if err != nil {
			logrus.Fatalf("unable to build experiment config: %v", err)
		}
		if len(sweepServers) == 0 {
			logrus.Fatalf("no server counts to sweep")
		}

		results := make([]SweepResult, 0, len(sweepServers))
		for _, c := range sweepServers {
			exp := base
			exp.Servers = c
			summary, err := sim.RunReplications(exp)
			if err != nil {
				logrus.Fatalf("experiment failed for c=%d: %v", c, err)
			}
			PrintRunTable(os.Stdout, exp, summary)
			results = append(results, SweepResult{Servers: c, Summary: summary})
		}

		PrintComparison(os.Stdout, results)

		if plotPath != "" {
			if err := writeWqPlot(plotPath, results); err != nil {
				logrus.Fatalf("unable to write plot: %v", err)
			}
			logrus.Infof("wrote %s", plotPath)
		}
	},
}

func init() {
	addExperimentFlags(sweepCmd)
	sweepCmd.Flags().IntSliceVar(&sweepServers, "sweep-servers", []int{1, 2, 3}, "Comma-separated server counts to sweep")
	sweepCmd.Flags().StringVar(&plotPath, "plot", "", "Write a mean-Wq-vs-servers chart to this PNG path")

	rootCmd.AddCommand(sweepCmd)
}
