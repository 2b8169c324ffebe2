package view

import (
	"fmt"

	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/solver"
)

// Group identifies which run a series belongs to. The tags are stable
// across views and frames so a renderer can color and label the two paths
// consistently.
type Group string

const (
	GroupA Group = "Path A"
	GroupB Group = "Path B"
)

// Kind names the three view shapes a renderer can receive.
type Kind string

const (
	KindTime     Kind = "time"
	KindPlane    Kind = "phase_plane"
	KindPortrait Kind = "phase_portrait"
)

// Series is one polyline of a panel. Z is nil for 2-D panels.
type Series struct {
	Group Group     `json:"group"`
	Style string    `json:"style"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Z     []float64 `json:"z,omitempty"`
}

// Panel is one plotting surface with its axis bounds. ZBounds is set only
// on 3-D panels.
type Panel struct {
	Title   string   `json:"title"`
	XLabel  string   `json:"x_label"`
	YLabel  string   `json:"y_label"`
	ZLabel  string   `json:"z_label,omitempty"`
	XBounds Bounds   `json:"x_bounds"`
	YBounds Bounds   `json:"y_bounds"`
	ZBounds *Bounds  `json:"z_bounds,omitempty"`
	Series  []Series `json:"series"`
}

// ViewSpec is a complete renderer-agnostic view: ordered panels plus the
// reveal frames shared by every panel of the view.
type ViewSpec struct {
	Kind   Kind    `json:"kind"`
	Panels []Panel `json:"panels"`
	Frames []Frame `json:"frames"`
}

// Views bundles the three comparison views of one generate request.
type Views struct {
	Time     ViewSpec `json:"time"`
	Plane    ViewSpec `json:"phase_plane"`
	Portrait ViewSpec `json:"phase_portrait"`
}

// Strides sets the reveal step per view, in samples per animation frame.
// Time panels reveal coarser than the denser plane and portrait plots.
type Strides struct {
	Time     int `yaml:"time" json:"time"`
	Plane    int `yaml:"plane" json:"plane"`
	Portrait int `yaml:"portrait" json:"portrait"`
}

func DefaultStrides() Strides { return Strides{Time: 40, Plane: 15, Portrait: 10} }

// Axis layout constants carried over from the dashboard this pipeline
// feeds: phase views pad extrema by 2 units, the portrait uses coarser
// ticks for 3-D legibility, time panels are unpadded.
const (
	planePadding    = 2.0
	portraitPadding = 2.0

	timeTickSpacing     = 5.0
	ordinateTickSpacing = 6.0
	planeTickSpacing    = 5.0
	portraitTickSpacing = 7.0

	lineStyle = "line"
)

// Compose assembles the three comparison views from two trajectories
// sampled on the same grid. It allocates everything fresh: no state is
// shared with previous requests or between the returned views.
func Compose(a, b *solver.Trajectory, strides Strides) (*Views, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%w: empty trajectory", lorenz.ErrInvalidTimeGrid)
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: trajectories sampled on different grids (%d vs %d samples)",
			lorenz.ErrInvalidTimeGrid, a.Len(), b.Len())
	}

	timeView, err := composeTime(a, b, strides.Time)
	if err != nil {
		return nil, err
	}
	planeView, err := composePlane(a, b, strides.Plane)
	if err != nil {
		return nil, err
	}
	portraitView, err := composePortrait(a, b, strides.Portrait)
	if err != nil {
		return nil, err
	}

	return &Views{Time: *timeView, Plane: *planeView, Portrait: *portraitView}, nil
}

// composeTime builds the t-x, t-y, t-z panels. All three share one
// ordinate scale computed over every coordinate of both runs, so relative
// magnitude stays comparable across the sub-panels.
func composeTime(a, b *solver.Trajectory, stride int) (*ViewSpec, error) {
	frames, err := BuildFrames(a.Len(), stride)
	if err != nil {
		return nil, err
	}

	both := []*solver.Trajectory{a, b}
	ordinate := ComputeSharedBounds(both, 0, ordinateTickSpacing)
	abscissa := timeBounds(a.Times, timeTickSpacing)

	panels := make([]Panel, 0, 3)
	for _, axis := range []solver.Axis{solver.AxisX, solver.AxisY, solver.AxisZ} {
		c := axis.String()
		panels = append(panels, Panel{
			Title:   fmt.Sprintf("time (t) vs %s(t)", c),
			XLabel:  "time (t)",
			YLabel:  c + "(t)",
			XBounds: abscissa,
			YBounds: ordinate,
			Series: []Series{
				{Group: GroupA, Style: lineStyle, X: a.Times, Y: a.Coord(axis)},
				{Group: GroupB, Style: lineStyle, X: b.Times, Y: b.Coord(axis)},
			},
		})
	}

	return &ViewSpec{Kind: KindTime, Panels: panels, Frames: frames}, nil
}

// composePlane builds the three pairwise panels, covering each unordered
// coordinate pair exactly once. Bounds are per coordinate and reused
// wherever that coordinate appears.
func composePlane(a, b *solver.Trajectory, stride int) (*ViewSpec, error) {
	frames, err := BuildFrames(a.Len(), stride)
	if err != nil {
		return nil, err
	}

	both := []*solver.Trajectory{a, b}
	perAxis := map[solver.Axis]Bounds{}
	for _, axis := range []solver.Axis{solver.AxisX, solver.AxisY, solver.AxisZ} {
		perAxis[axis] = ComputeBounds(both, axis, planePadding, planeTickSpacing)
	}

	pairs := [3][2]solver.Axis{
		{solver.AxisX, solver.AxisY},
		{solver.AxisX, solver.AxisZ},
		{solver.AxisY, solver.AxisZ},
	}

	panels := make([]Panel, 0, 3)
	for _, pair := range pairs {
		h, v := pair[0], pair[1]
		panels = append(panels, Panel{
			Title:   fmt.Sprintf("%s(t) vs %s(t)", h, v),
			XLabel:  h.String() + "(t)",
			YLabel:  v.String() + "(t)",
			XBounds: perAxis[h],
			YBounds: perAxis[v],
			Series: []Series{
				{Group: GroupA, Style: lineStyle, X: a.Coord(h), Y: a.Coord(v)},
				{Group: GroupB, Style: lineStyle, X: b.Coord(h), Y: b.Coord(v)},
			},
		})
	}

	return &ViewSpec{Kind: KindPlane, Panels: panels, Frames: frames}, nil
}

// composePortrait builds the single 3-D panel with both runs as (x,y,z)
// curves.
func composePortrait(a, b *solver.Trajectory, stride int) (*ViewSpec, error) {
	frames, err := BuildFrames(a.Len(), stride)
	if err != nil {
		return nil, err
	}

	both := []*solver.Trajectory{a, b}
	zb := ComputeBounds(both, solver.AxisZ, portraitPadding, portraitTickSpacing)
	panel := Panel{
		Title:   "phase portrait",
		XLabel:  "x(t)",
		YLabel:  "y(t)",
		ZLabel:  "z(t)",
		XBounds: ComputeBounds(both, solver.AxisX, portraitPadding, portraitTickSpacing),
		YBounds: ComputeBounds(both, solver.AxisY, portraitPadding, portraitTickSpacing),
		ZBounds: &zb,
		Series: []Series{
			{Group: GroupA, Style: lineStyle, X: a.X, Y: a.Y, Z: a.Z},
			{Group: GroupB, Style: lineStyle, X: b.X, Y: b.Y, Z: b.Z},
		},
	}

	return &ViewSpec{Kind: KindPortrait, Panels: []Panel{panel}, Frames: frames}, nil
}
