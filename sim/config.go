package sim

// RunConfig holds the parameters of a single bounded-horizon run.
type RunConfig struct {
	Lambda  float64 // arrival rate, customers per unit time (> 0)
	Mu      float64 // per-server service rate (> 0)
	Servers int     // number of identical servers c (>= 1)
	Horizon float64 // simulated time Tsim at which the run stops (> 0)
	Seed    int64   // master seed for the run's random streams
	Cost    *CostConfig
}

// CostConfig prices a server configuration per unit time. Optional: when
// nil, the run's Cost metric is NaN.
type CostConfig struct {
	ServerPerHour float64 // cost of one server per unit time
	WaitPerHour   float64 // cost per unit time per queued customer
}

// Validate checks the run parameters, returning a *ConfigurationError for
// the first violation found.
func (c RunConfig) Validate() error {
	if c.Lambda <= 0 {
		return &ConfigurationError{Field: "lambda", Reason: "must be > 0"}
	}
	if c.Mu <= 0 {
		return &ConfigurationError{Field: "mu", Reason: "must be > 0"}
	}
	if c.Servers < 1 {
		return &ConfigurationError{Field: "servers", Reason: "must be a positive integer"}
	}
	if c.Horizon <= 0 {
		return &ConfigurationError{Field: "horizon", Reason: "must be > 0"}
	}
	return nil
}

// Stable reports whether lambda < c*mu, the precondition for the queue to
// reach steady state. An unstable run still executes; its statistics are
// degenerate and left to the caller to interpret.
func (c RunConfig) Stable() bool {
	return c.Lambda < float64(c.Servers)*c.Mu
}

// ExperimentConfig describes a replicated experiment: one run per seed,
// all sharing the same queue parameters.
type ExperimentConfig struct {
	Lambda  float64
	Mu      float64
	Servers int
	Horizon float64
	Seeds   []int64
	Cost    *CostConfig
}

// Validate checks the experiment parameters.
func (c ExperimentConfig) Validate() error {
	if err := c.RunConfig(0).Validate(); err != nil {
		return err
	}
	if len(c.Seeds) == 0 {
		return &ConfigurationError{Field: "seeds", Reason: "must list at least one seed"}
	}
	return nil
}

// RunConfig derives the configuration of the replication with the given
// seed.
func (c ExperimentConfig) RunConfig(seed int64) RunConfig {
	return RunConfig{
		Lambda:  c.Lambda,
		Mu:      c.Mu,
		Servers: c.Servers,
		Horizon: c.Horizon,
		Seed:    seed,
		Cost:    c.Cost,
	}
}
