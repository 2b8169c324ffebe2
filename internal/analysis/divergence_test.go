package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/solver"
)

func flatTraj(states []lorenz.State) *solver.Trajectory {
	tr := &solver.Trajectory{
		Times: make([]float64, len(states)),
		X:     make([]float64, len(states)),
		Y:     make([]float64, len(states)),
		Z:     make([]float64, len(states)),
	}
	for i, s := range states {
		tr.Times[i] = float64(i)
		tr.X[i], tr.Y[i], tr.Z[i] = s.X, s.Y, s.Z
	}
	return tr
}

func TestSeparation(t *testing.T) {
	a := flatTraj([]lorenz.State{{}, {}, {}})
	b := flatTraj([]lorenz.State{{X: 3, Y: 4}, {}, {Z: 2}})

	sep := Separation(a, b)
	want := []float64{5, 0, 2}
	for i := range want {
		if math.Abs(sep[i]-want[i]) > 1e-12 {
			t.Errorf("sep[%d] = %f, want %f", i, sep[i], want[i])
		}
	}
}

func TestSeparation_UnevenLengths(t *testing.T) {
	a := flatTraj([]lorenz.State{{}, {}, {}})
	b := flatTraj([]lorenz.State{{X: 1}})

	if got := len(Separation(a, b)); got != 1 {
		t.Errorf("len = %d, want shorter length 1", got)
	}
}

func TestGrowthRate(t *testing.T) {
	// Exponentially growing separation yields a positive rate; flat
	// separation yields zero.
	grow := make([]float64, 100)
	flat := make([]float64, 100)
	for i := range grow {
		grow[i] = 1e-4 * math.Exp(0.9*float64(i)*0.01)
		flat[i] = 1e-4
	}

	if r := GrowthRate(grow, 0.01); r <= 0 {
		t.Errorf("rate for growing separation = %f, want > 0", r)
	}
	if r := GrowthRate(flat, 0.01); r != 0 {
		t.Errorf("rate for flat separation = %f, want 0", r)
	}
}

func TestGrowthRate_Degenerate(t *testing.T) {
	if r := GrowthRate(nil, 0.01); r != 0 {
		t.Errorf("rate for nil = %f", r)
	}
	if r := GrowthRate([]float64{0, 0, 0}, 0.01); r != 0 {
		t.Errorf("rate for all-zero = %f", r)
	}
	if r := GrowthRate([]float64{1, 2}, 0); r != 0 {
		t.Errorf("rate for zero dt = %f", r)
	}
}

func TestMaxSeparation(t *testing.T) {
	max, idx := MaxSeparation([]float64{0.1, 3.5, 2, 3.5})
	if max != 3.5 || idx != 1 {
		t.Errorf("MaxSeparation = (%f, %d), want (3.5, 1)", max, idx)
	}
}

func TestDivergence_ChaoticRun(t *testing.T) {
	grid := solver.TimeGrid{T0: 0, Tf: 10, Dt: 0.01}
	a, err := solver.Integrate(lorenz.Classic(), lorenz.State{Y: 1}, grid)
	if err != nil {
		t.Fatalf("path a: %v", err)
	}
	b, err := solver.Integrate(lorenz.Classic(), lorenz.State{Y: 1.0001}, grid)
	if err != nil {
		t.Fatalf("path b: %v", err)
	}

	sep := Separation(a, b)
	if rate := GrowthRate(sep, grid.Dt); rate <= 0 {
		t.Errorf("chaotic growth rate = %f, want > 0", rate)
	}
	max, _ := MaxSeparation(sep)
	if max < 100*sep[0] {
		t.Errorf("max separation = %f, want at least 100x the initial %f", max, sep[0])
	}
}
