package sim

import (
	"github.com/queueing-sim/queueing-sim/sim/stats"
)

// confidenceLevel is the two-sided level of the replication intervals.
const confidenceLevel = 0.95

// ReplicationSummary aggregates per-seed RunMetrics into a mean and 95%
// confidence interval per metric, plus the raw per-run records for
// reporting.
type ReplicationSummary struct {
	Rho  stats.MeanCI
	Wq   stats.MeanCI
	W    stats.MeanCI
	Lq   stats.MeanCI
	L    stats.MeanCI
	Cost stats.MeanCI

	Runs []RunMetrics
}

// RunReplications executes one run per seed, each with its own scheduler
// and independent random streams, and reduces the per-run metrics. A
// ConfigurationError aborts the whole experiment; a per-run NaN (no
// departures) is carried through and surfaced in the summary. Failed runs
// are never retried or substituted.
func RunReplications(cfg ExperimentConfig) (*ReplicationSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runs := make([]RunMetrics, 0, len(cfg.Seeds))
	for _, seed := range cfg.Seeds {
		m, err := Simulate(cfg.RunConfig(seed))
		if err != nil {
			return nil, err
		}
		runs = append(runs, m)
	}
	return Summarize(runs), nil
}

// Summarize reduces a set of per-run metrics into per-metric Student-t
// intervals. NaN runs are excluded from each reduction, not zero-filled.
func Summarize(runs []RunMetrics) *ReplicationSummary {
	reduce := func(metric func(RunMetrics) float64) stats.MeanCI {
		values := make([]float64, len(runs))
		for i, r := range runs {
			values[i] = metric(r)
		}
		return stats.FromSamples(values, confidenceLevel)
	}

	return &ReplicationSummary{
		Rho:  reduce(func(r RunMetrics) float64 { return r.Rho }),
		Wq:   reduce(func(r RunMetrics) float64 { return r.Wq }),
		W:    reduce(func(r RunMetrics) float64 { return r.W }),
		Lq:   reduce(func(r RunMetrics) float64 { return r.Lq }),
		L:    reduce(func(r RunMetrics) float64 { return r.L }),
		Cost: reduce(func(r RunMetrics) float64 { return r.Cost }),
		Runs: runs,
	}
}
