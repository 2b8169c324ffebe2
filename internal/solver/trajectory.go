package solver

import "github.com/san-kum/butterfly/internal/lorenz"

// Axis selects one state coordinate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Trajectory is the sampled solution of one run: one column per coordinate,
// aligned index-for-index with Times. Produced once by Integrate and
// immutable thereafter.
type Trajectory struct {
	Times []float64 `json:"times"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Z     []float64 `json:"z"`
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// At reconstructs the state at sample i.
func (tr *Trajectory) At(i int) lorenz.State {
	return lorenz.State{X: tr.X[i], Y: tr.Y[i], Z: tr.Z[i]}
}

// Coord returns the sample column of a single coordinate. The returned
// slice aliases the trajectory; callers must not mutate it.
func (tr *Trajectory) Coord(a Axis) []float64 {
	switch a {
	case AxisX:
		return tr.X
	case AxisY:
		return tr.Y
	default:
		return tr.Z
	}
}
