package solver

import (
	"math"

	"github.com/san-kum/butterfly/internal/lorenz"
)

// Adaptive step control, same policy for every run so identical inputs
// replay identically.
const (
	tolerance = 1e-9
	safety    = 0.9
	minScale  = 0.2
	maxScale  = 10.0
	minStep   = 1e-12
)

// Integrate advances s0 under p across grid and returns the trajectory
// sampled exactly at the grid times (the first sample is s0 itself).
//
// Integration is deterministic: no randomness, no state carried between
// calls. It fails with lorenz.ErrInvalidTimeGrid for a malformed grid and
// with a *lorenz.InstabilityError (wrapping lorenz.ErrUnstable) as soon as
// a produced sample is non-finite.
func Integrate(p lorenz.Params, s0 lorenz.State, grid TimeGrid) (*Trajectory, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	n := grid.Len()
	tr := &Trajectory{
		Times: grid.Times(),
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Z:     make([]float64, n),
	}

	s := s0
	t := grid.T0
	h := grid.Dt

	for i := 0; i < n; i++ {
		target := tr.Times[i]

		for t < target {
			step := h
			clamped := false
			if t+step >= target {
				step = target - t
				clamped = true
			}
			if step < minStep {
				// Step control collapsed; land on the sample directly.
				step = target - t
				clamped = true
			}

			next, errMax := rk45Step(p, s, step)
			ratio := errMax / tolerance

			if ratio > 1 && step > minStep {
				h = step * math.Max(minScale, safety*math.Pow(ratio, -0.25))
				continue
			}

			s = next
			if clamped {
				t = target
			} else {
				t += step
			}
			if ratio > 0 {
				h = math.Min(grid.Dt, step*math.Min(maxScale, safety*math.Pow(ratio, -0.2)))
			} else {
				h = grid.Dt
			}
		}

		if !s.IsFinite() {
			return nil, &lorenz.InstabilityError{T: target, Index: i}
		}
		tr.X[i], tr.Y[i], tr.Z[i] = s.X, s.Y, s.Z
	}

	return tr, nil
}
