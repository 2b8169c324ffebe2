package lorenz

import (
	"errors"
	"fmt"
)

// Domain errors shared by the solver and view packages.
var (
	// ErrInvalidTimeGrid indicates a grid with dt <= 0 or tf <= t0.
	ErrInvalidTimeGrid = errors.New("lorenz: invalid time grid")

	// ErrInvalidStride indicates a frame stride below 1.
	ErrInvalidStride = errors.New("lorenz: frame stride must be at least 1")

	// ErrUnstable indicates a trajectory produced a non-finite sample.
	ErrUnstable = errors.New("lorenz: trajectory diverged (non-finite sample)")
)

// InstabilityError reports the first non-finite sample of a run. The
// trajectory that produced it is discarded, never clamped or repaired.
type InstabilityError struct {
	T     float64
	Index int
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("non-finite sample %d at t=%.4f", e.Index, e.T)
}

func (e *InstabilityError) Unwrap() error { return ErrUnstable }
