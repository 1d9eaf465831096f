package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RunMetrics is the structured result of one completed run, consumed by
// the reporting layer. Wq and W are NaN when no customer departed within
// the horizon; the sentinel is carried through aggregation, never coerced
// to zero. Cost is NaN when no cost model was configured.
type RunMetrics struct {
	Seed       int64
	Rho        float64 // fraction of aggregate server-time busy
	Wq         float64 // mean wait of customers departed within the horizon
	W          float64 // mean sojourn of customers departed within the horizon
	Lq         float64 // time-average number waiting
	L          float64 // time-average number in system
	Cost       float64 // serverCost*c + waitCost*Lq
	Departures int     // customers counted in the Wq/W averages
}

// ComputeMetrics reduces the simulator's raw records into a RunMetrics.
// Utilization divides the summed busy intervals by c*Tsim; the area
// integrals divide by Tsim having been finalized exactly there.
func (sim *Simulator) ComputeMetrics(cfg RunConfig) RunMetrics {
	m := RunMetrics{
		Seed:       cfg.Seed,
		Rho:        sim.BusyTime / (float64(cfg.Servers) * cfg.Horizon),
		Wq:         meanOrNaN(sim.Waits),
		W:          meanOrNaN(sim.Sojourns),
		Lq:         sim.Tracker.AreaNq / cfg.Horizon,
		L:          sim.Tracker.AreaN / cfg.Horizon,
		Cost:       math.NaN(),
		Departures: len(sim.Waits),
	}
	if cfg.Cost != nil {
		m.Cost = cfg.Cost.ServerPerHour*float64(cfg.Servers) + cfg.Cost.WaitPerHour*m.Lq
	}
	return m
}

// meanOrNaN returns the arithmetic mean, or NaN for an empty sample set.
func meanOrNaN(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}
