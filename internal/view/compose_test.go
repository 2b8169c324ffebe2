package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/solver"
)

func composeFixture(t *testing.T) (*solver.Trajectory, *solver.Trajectory) {
	t.Helper()
	grid := solver.TimeGrid{T0: 0, Tf: 2, Dt: 0.01}
	a, err := solver.Integrate(lorenz.Classic(), lorenz.State{X: 0, Y: 1, Z: 0}, grid)
	require.NoError(t, err)
	b, err := solver.Integrate(lorenz.Classic(), lorenz.State{X: 1, Y: 0, Z: 1}, grid)
	require.NoError(t, err)
	return a, b
}

func TestCompose_Shape(t *testing.T) {
	a, b := composeFixture(t)

	views, err := Compose(a, b, DefaultStrides())
	require.NoError(t, err)

	assert.Equal(t, KindTime, views.Time.Kind)
	assert.Equal(t, KindPlane, views.Plane.Kind)
	assert.Equal(t, KindPortrait, views.Portrait.Kind)

	assert.Len(t, views.Time.Panels, 3)
	assert.Len(t, views.Plane.Panels, 3)
	assert.Len(t, views.Portrait.Panels, 1)

	for _, spec := range []ViewSpec{views.Time, views.Plane, views.Portrait} {
		for _, p := range spec.Panels {
			require.Len(t, p.Series, 2)
			assert.Equal(t, GroupA, p.Series[0].Group)
			assert.Equal(t, GroupB, p.Series[1].Group)
		}
		require.NotEmpty(t, spec.Frames)
		assert.Equal(t, a.Len(), spec.Frames[len(spec.Frames)-1].PrefixLen)
	}
}

func TestCompose_SharedOrdinate(t *testing.T) {
	a, b := composeFixture(t)

	views, err := Compose(a, b, DefaultStrides())
	require.NoError(t, err)

	// All three time panels share one ordinate scale, wide enough for
	// every coordinate of both runs.
	ord := views.Time.Panels[0].YBounds
	for _, p := range views.Time.Panels[1:] {
		assert.Equal(t, ord, p.YBounds)
	}
	for _, tr := range []*solver.Trajectory{a, b} {
		for i := 0; i < tr.Len(); i++ {
			s := tr.At(i)
			assert.True(t, ord.Contains(s.X) && ord.Contains(s.Y) && ord.Contains(s.Z),
				"sample %d outside shared ordinate", i)
		}
	}
}

func TestCompose_PlanePairs(t *testing.T) {
	a, b := composeFixture(t)

	views, err := Compose(a, b, DefaultStrides())
	require.NoError(t, err)

	// Each unordered coordinate pair appears exactly once.
	titles := make(map[string]int)
	for _, p := range views.Plane.Panels {
		titles[p.Title]++
		assert.Nil(t, p.ZBounds)
	}
	assert.Equal(t, map[string]int{
		"x(t) vs y(t)": 1,
		"x(t) vs z(t)": 1,
		"y(t) vs z(t)": 1,
	}, titles)
}

func TestCompose_Portrait(t *testing.T) {
	a, b := composeFixture(t)

	views, err := Compose(a, b, DefaultStrides())
	require.NoError(t, err)

	p := views.Portrait.Panels[0]
	require.NotNil(t, p.ZBounds)
	for _, s := range p.Series {
		assert.Len(t, s.Z, a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		assert.True(t, p.XBounds.Contains(a.X[i]), "x sample %d out of bounds", i)
		assert.True(t, p.YBounds.Contains(a.Y[i]), "y sample %d out of bounds", i)
		assert.True(t, p.ZBounds.Contains(a.Z[i]), "z sample %d out of bounds", i)
	}
}

func TestCompose_FrameStrides(t *testing.T) {
	a, b := composeFixture(t)

	views, err := Compose(a, b, Strides{Time: 40, Plane: 15, Portrait: 10})
	require.NoError(t, err)

	// Denser strides reveal in more frames.
	assert.Greater(t, len(views.Portrait.Frames), len(views.Plane.Frames))
	assert.Greater(t, len(views.Plane.Frames), len(views.Time.Frames))

	assert.Equal(t, 40, views.Time.Frames[1].PrefixLen-views.Time.Frames[0].PrefixLen)
	assert.Equal(t, 15, views.Plane.Frames[1].PrefixLen-views.Plane.Frames[0].PrefixLen)
}

func TestCompose_MismatchedGrids(t *testing.T) {
	a, _ := composeFixture(t)
	short, err := solver.Integrate(lorenz.Classic(), lorenz.State{Y: 1},
		solver.TimeGrid{T0: 0, Tf: 1, Dt: 0.01})
	require.NoError(t, err)

	_, err = Compose(a, short, DefaultStrides())
	assert.ErrorIs(t, err, lorenz.ErrInvalidTimeGrid)
}

func TestCompose_InvalidStride(t *testing.T) {
	a, b := composeFixture(t)

	_, err := Compose(a, b, Strides{Time: 0, Plane: 15, Portrait: 10})
	assert.ErrorIs(t, err, lorenz.ErrInvalidStride)
}
