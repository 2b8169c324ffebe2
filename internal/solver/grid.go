package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/butterfly/internal/lorenz"
)

// TimeGrid describes the uniform sample times of a run: the half-open
// interval [T0, Tf) sampled every Dt seconds.
type TimeGrid struct {
	T0 float64 `yaml:"t0" json:"t0"`
	Tf float64 `yaml:"tf" json:"tf"`
	Dt float64 `yaml:"dt" json:"dt"`
}

func (g TimeGrid) Validate() error {
	if g.Dt <= 0 {
		return fmt.Errorf("%w: dt=%g", lorenz.ErrInvalidTimeGrid, g.Dt)
	}
	if g.Tf <= g.T0 {
		return fmt.Errorf("%w: tf=%g <= t0=%g", lorenz.ErrInvalidTimeGrid, g.Tf, g.T0)
	}
	return nil
}

// Len is the number of samples: floor((Tf-T0)/Dt). Tf itself is excluded
// unless it falls exactly on the grid. The epsilon keeps an exact-multiple
// span from losing its last sample to float division (10/0.01 < 1000).
func (g TimeGrid) Len() int {
	return int(math.Floor((g.Tf-g.T0)/g.Dt + 1e-9))
}

// Times materializes the ascending sample times t0, t0+dt, ...
func (g TimeGrid) Times() []float64 {
	n := g.Len()
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = g.T0 + float64(i)*g.Dt
	}
	return ts
}
