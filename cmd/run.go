package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queueing-sim/queueing-sim/sim"
)

// runCmd executes one replicated experiment at a fixed server count and
// prints the per-run table and the mean/95% CI summary. For a stable
// single-server system it also prints the closed-form M/M/1 reference.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a replicated M/M/c simulation experiment",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		exp, err := buildExperiment(cmd)
		if err != nil {
			logrus.Fatalf("unable to build experiment config: %v", err)
		}

		if exp.Servers == 1 {
			theory, err := sim.MM1Theory(exp.Lambda, exp.Mu)
			var unstable *sim.InstabilityError
			switch {
			case err == nil:
				PrintTheory(os.Stdout, theory)
			case errors.As(err, &unstable):
				logrus.Warnf("no theoretical reference: %v", err)
			default:
				logrus.Fatalf("theoretical reference: %v", err)
			}
		}

		summary, err := sim.RunReplications(exp)
		if err != nil {
			logrus.Fatalf("experiment failed: %v", err)
		}

		PrintRunTable(os.Stdout, exp, summary)
		PrintSummary(os.Stdout, summary)
	},
}

func init() {
	addExperimentFlags(runCmd)
	runCmd.Flags().IntVar(&servers, "servers", 1, "Number of identical servers c")

	rootCmd.AddCommand(runCmd)
}
