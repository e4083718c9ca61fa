package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justagist/dijkstra-graph-manipulation/builder"
	"github.com/justagist/dijkstra-graph-manipulation/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1, 2}, g.ContractibleNodes())
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(5))},
		builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.ContractibleNodes())
	for _, c := range g.Connections() {
		assert.Equal(t, int64(5), c.Weight)
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	// 3 rows × 3 horizontal + 2 × 4 vertical
	assert.Equal(t, 17, g.EdgeCount())

	corner, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, corner)
	inner, err := g.Degree(5)
	require.NoError(t, err)
	assert.Equal(t, 4, inner)
}

func TestStarAndComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	hub, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 5, hub)

	g, err = builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a.Connections(), b.Connections())
	for _, c := range a.Connections() {
		assert.GreaterOrEqual(t, c.Weight, int64(1))
		assert.LessOrEqual(t, c.Weight, int64(9))
	}
}

func TestShifted_DisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(3),
		builder.Shifted(10, builder.Path(3)),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, g.Nodes())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDOffset(100)}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []int{100, 101}, g.Nodes())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"path too short", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too short", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"empty grid", nil, builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"star too short", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"complete too short", nil, builder.Complete(1), builder.ErrTooFewVertices},
		{"bad probability", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestGraphRejectionIsWrapped(t *testing.T) {
	// Sequential ids forbid starting at 5.
	_, err := builder.BuildGraph(
		[]core.GraphOption{core.WithSequentialIDs()},
		[]builder.BuilderOption{builder.WithIDOffset(5)},
		builder.Path(2),
	)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrNonSequentialNode)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDOffset(-1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}
