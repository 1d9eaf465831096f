package sim

// TheoreticalMetrics holds the closed-form steady-state metrics of an
// M/M/1 queue. The values satisfy Little's law exactly: L = lambda*W,
// Lq = lambda*Wq, and W = Wq + 1/mu.
type TheoreticalMetrics struct {
	Rho float64
	L   float64
	Lq  float64
	W   float64
	Wq  float64
}

// MM1Theory returns the closed-form metrics for a single-server queue
// with arrival rate lambda and service rate mu. It fails with an
// *InstabilityError when lambda >= mu.
func MM1Theory(lambda, mu float64) (TheoreticalMetrics, error) {
	if lambda <= 0 {
		return TheoreticalMetrics{}, &ConfigurationError{Field: "lambda", Reason: "must be > 0"}
	}
	if mu <= 0 {
		return TheoreticalMetrics{}, &ConfigurationError{Field: "mu", Reason: "must be > 0"}
	}
	if lambda >= mu {
		return TheoreticalMetrics{}, &InstabilityError{Lambda: lambda, Mu: mu, Servers: 1}
	}

	rho := lambda / mu
	return TheoreticalMetrics{
		Rho: rho,
		L:   rho / (1 - rho),
		Lq:  rho * rho / (1 - rho),
		W:   1 / (mu - lambda),
		Wq:  rho / (mu - lambda),
	}, nil
}
