package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestExponentialSampler_MeanMatchesRate(t *testing.T) {
	// GIVEN an exponential sampler with rate 0.9
	rng := rand.New(rand.NewSource(42))
	sampler := ExponentialSampler{Rate: 0.9}

	// WHEN 10000 gaps are sampled
	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sampler.Sample(rng)
	}
	mean := sum / float64(n)

	// THEN the mean gap ≈ 1/rate (within 5%)
	expected := 1.0 / 0.9
	if math.Abs(mean-expected)/expected > 0.05 {
		t.Errorf("mean gap = %.4f, want ≈ %.4f (within 5%%)", mean, expected)
	}
}

func TestExponentialSampler_AllPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sampler := ExponentialSampler{Rate: 2.0}
	for i := 0; i < 10000; i++ {
		if v := sampler.Sample(rng); v <= 0 {
			t.Fatalf("sample must be positive, got %g at iteration %d", v, i)
		}
	}
}

func TestConstantSampler_ExactValue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sampler := ConstantSampler{Value: 3.5}
	for i := 0; i < 100; i++ {
		if v := sampler.Sample(rng); v != 3.5 {
			t.Fatalf("iteration %d: Sample = %g, want 3.5", i, v)
		}
	}
}
