package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/queueing-sim/queueing-sim/sim"
	"github.com/queueing-sim/queueing-sim/sim/stats"
)

// PrintTheory writes the closed-form M/M/1 reference table.
func PrintTheory(w io.Writer, th sim.TheoreticalMetrics) {
	fmt.Fprintln(w, "THEORETICAL (M/M/1):")
	fmt.Fprintf(w, "rho = %.6f\n", th.Rho)
	fmt.Fprintf(w, "  W = %.6f\n", th.W)
	fmt.Fprintf(w, " Wq = %.6f\n", th.Wq)
	fmt.Fprintf(w, "  L = %.6f\n", th.L)
	fmt.Fprintf(w, " Lq = %.6f\n", th.Lq)
	fmt.Fprintln(w)
}

// PrintRunTable writes one row per replication of an experiment.
func PrintRunTable(w io.Writer, exp sim.ExperimentConfig, s *sim.ReplicationSummary) {
	fmt.Fprintf(w, "SIMULATION RUNS: M/M/%d (lambda=%.3f, mu=%.3f, Tsim=%g, replications=%d)\n",
		exp.Servers, exp.Lambda, exp.Mu, exp.Horizon, len(s.Runs))

	withCost := exp.Cost != nil
	header := "Run |       Seed |       rho |        Wq |         W |        Lq |         L"
	if withCost {
		header += " |        Cost"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for i, r := range s.Runs {
		fmt.Fprintf(w, "%3d | %10d | %9.6f | %9.4f | %9.4f | %9.4f | %9.4f",
			i+1, r.Seed, r.Rho, r.Wq, r.W, r.Lq, r.L)
		if withCost {
			fmt.Fprintf(w, " | $%10.2f", r.Cost)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// PrintSummary writes the mean ± 95% CI of every metric across runs.
func PrintSummary(w io.Writer, s *sim.ReplicationSummary) {
	fmt.Fprintln(w, "SUMMARY (mean and 95% CI):")
	printMetricCI(w, "rho", s.Rho)
	printMetricCI(w, "Wq", s.Wq)
	printMetricCI(w, "W", s.W)
	printMetricCI(w, "Lq", s.Lq)
	printMetricCI(w, "L", s.L)
	if !math.IsNaN(s.Cost.Mean) {
		printMetricCI(w, "cost", s.Cost)
	}
	fmt.Fprintln(w)
}

func printMetricCI(w io.Writer, name string, m stats.MeanCI) {
	fmt.Fprintf(w, "%4s mean=%.6f   95%% CI=[%.6f, %.6f]   n=%d\n", name, m.Mean, m.Low, m.High, m.N)
}

// PrintComparison writes the final cross-configuration table of a sweep
// and names the cost-optimal server count.
func PrintComparison(w io.Writer, results []SweepResult) {
	fmt.Fprintln(w, "FINAL COMPARISON TABLE (averages across replications)")
	header := "Servers |       rho |        Wq |        Lq |        Cost"
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	optimal := 0
	optimalCost := math.Inf(1)
	for _, res := range results {
		s := res.Summary
		fmt.Fprintf(w, "%7d | %9.6f | %9.4f | %9.4f | $%10.2f\n",
			res.Servers, s.Rho.Mean, s.Wq.Mean, s.Lq.Mean, s.Cost.Mean)
		if !math.IsNaN(s.Cost.Mean) && s.Cost.Mean < optimalCost {
			optimalCost = s.Cost.Mean
			optimal = res.Servers
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	if optimal > 0 {
		fmt.Fprintf(w, "Optimal number of servers (lowest average cost): %d\n", optimal)
	}
	fmt.Fprintln(w)
}
