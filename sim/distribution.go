package sim

import "math/rand"

// Sampler draws one nonnegative duration.
type Sampler interface {
	Sample(rng *rand.Rand) float64
}

// ExponentialSampler draws exponentially-distributed durations with the
// given rate (events per unit time). Used for both the inter-arrival and
// service streams of the Markovian queue.
type ExponentialSampler struct {
	Rate float64
}

func (s ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.Rate
}

// ConstantSampler always returns the same duration. Used to script
// deterministic scenarios in tests.
type ConstantSampler struct {
	Value float64
}

func (s ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.Value
}
