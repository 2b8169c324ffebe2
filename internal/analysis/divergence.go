// Package analysis quantifies how fast two comparison runs separate,
// the numeric counterpart of the phase-portrait views.
package analysis

import (
	"math"

	"github.com/san-kum/butterfly/internal/solver"
)

// Separation returns the pointwise Euclidean distance between two
// trajectories sampled on the same grid.
func Separation(a, b *solver.Trajectory) []float64 {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	sep := make([]float64, n)
	for i := 0; i < n; i++ {
		sep[i] = a.At(i).Dist(b.At(i))
	}
	return sep
}

// GrowthRate estimates the mean exponential divergence rate from a
// separation series:
//
//	lambda ~= mean over i of ln(d_i/d_0) / (count * dt)
//
// A positive value indicates chaotic divergence; zero separations are
// skipped. This is the trajectory-separation estimate of the largest
// Lyapunov exponent, not a renormalized one, so it saturates once the
// paths decorrelate.
func GrowthRate(sep []float64, dt float64) float64 {
	if len(sep) < 2 || dt <= 0 {
		return 0
	}

	d0 := 0.0
	start := 0
	for i, d := range sep {
		if d > 0 {
			d0, start = d, i
			break
		}
	}
	if d0 == 0 {
		return 0
	}

	sumLog := 0.0
	count := 0
	for _, d := range sep[start+1:] {
		if d <= 0 {
			continue
		}
		sumLog += math.Log(d / d0)
		count++
	}
	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}

// MaxSeparation returns the largest pointwise distance and its sample
// index.
func MaxSeparation(sep []float64) (float64, int) {
	max, idx := 0.0, 0
	for i, d := range sep {
		if d > max {
			max, idx = d, i
		}
	}
	return max, idx
}
