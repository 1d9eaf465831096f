// Package stats provides small-sample summary statistics for replicated
// simulation metrics.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MeanCI is a sample mean with a two-sided confidence interval.
// Invariant: Low <= Mean <= High.
type MeanCI struct {
	Mean float64
	Low  float64
	High float64
	N    int // finite samples the estimate is based on
}

// FromSamples computes the mean and a Student-t confidence interval at
// the given two-sided level (e.g. 0.95). NaN values (runs in which no
// customer departed) are excluded from the reduction, never zero-filled.
// With fewer than two finite samples the interval degenerates to the
// point estimate; with none at all every field is NaN.
func FromSamples(values []float64, confidence float64) MeanCI {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}

	n := len(finite)
	if n == 0 {
		return MeanCI{Mean: math.NaN(), Low: math.NaN(), High: math.NaN()}
	}

	mean := stat.Mean(finite, nil)
	if n < 2 {
		return MeanCI{Mean: mean, Low: mean, High: mean, N: n}
	}

	// half = t_{1-alpha/2, n-1} * s / sqrt(n), with s the sample standard
	// deviation (Bessel-corrected).
	sd := stat.StdDev(finite, nil)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	half := tdist.Quantile(0.5+confidence/2) * sd / math.Sqrt(float64(n))

	return MeanCI{Mean: mean, Low: mean - half, High: mean + half, N: n}
}

// HalfWidth returns the half-width of the interval, NaN when undefined.
func (m MeanCI) HalfWidth() float64 {
	return (m.High - m.Low) / 2
}
