package sim

import "fmt"

// ConfigurationError reports an invalid simulation parameter. Validation
// runs before any simulation work starts, so a bad configuration never
// partially executes.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// InstabilityError reports a queueing model whose queue grows without
// bound, so no steady state exists for the closed-form reference.
type InstabilityError struct {
	Lambda  float64
	Mu      float64
	Servers int
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("unstable system: lambda=%.6g >= %d*mu=%.6g, no steady state",
		e.Lambda, e.Servers, float64(e.Servers)*e.Mu)
}
