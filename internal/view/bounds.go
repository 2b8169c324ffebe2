package view

import (
	"github.com/san-kum/butterfly/internal/solver"
)

// Bounds describes one axis: padded extrema and the explicit tick
// positions between them.
type Bounds struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Ticks []float64 `json:"ticks"`
}

// Contains reports whether v lies inside the bounds.
func (b Bounds) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

// ComputeBounds finds the joint extrema of one coordinate across all
// supplied trajectories, widens them by padding on each side, and lays
// ticks from the padded minimum. Joint extrema are the point: computing
// per-trajectory would put the two comparison runs on different scales.
func ComputeBounds(trajs []*solver.Trajectory, axis solver.Axis, padding, tickSpacing float64) Bounds {
	cols := make([][]float64, 0, len(trajs))
	for _, tr := range trajs {
		cols = append(cols, tr.Coord(axis))
	}
	return boundsOf(cols, padding, tickSpacing)
}

// ComputeSharedBounds is ComputeBounds across every coordinate of every
// trajectory at once. The time view uses it so that x, y and z panels share
// one ordinate scale.
func ComputeSharedBounds(trajs []*solver.Trajectory, padding, tickSpacing float64) Bounds {
	cols := make([][]float64, 0, 3*len(trajs))
	for _, tr := range trajs {
		cols = append(cols, tr.X, tr.Y, tr.Z)
	}
	return boundsOf(cols, padding, tickSpacing)
}

// timeBounds builds the abscissa bounds for time panels straight from the
// sample times, unpadded.
func timeBounds(times []float64, tickSpacing float64) Bounds {
	return boundsOf([][]float64{times}, 0, tickSpacing)
}

func boundsOf(cols [][]float64, padding, tickSpacing float64) Bounds {
	lo, hi, seen := 0.0, 0.0, false
	for _, col := range cols {
		for _, v := range col {
			if !seen {
				lo, hi, seen = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	lo -= padding
	hi += padding
	if lo == hi {
		// Constant data and no padding: fall back to a unit pad so the
		// axis never degenerates to a point.
		lo--
		hi++
	}

	return Bounds{Min: lo, Max: hi, Ticks: ticks(lo, hi, tickSpacing)}
}

// ticks steps from lo by spacing, truncating the partial final step so no
// tick overshoots hi. A fraction of the spacing absorbs float drift at the
// upper edge.
func ticks(lo, hi, spacing float64) []float64 {
	if spacing <= 0 {
		return []float64{lo}
	}
	out := make([]float64, 0, int((hi-lo)/spacing)+1)
	eps := spacing * 1e-9
	for v := lo; v <= hi+eps; v += spacing {
		out = append(out, v)
	}
	return out
}
