// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, weights and determinism.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/wgraph"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven topology checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE []wgraph.Edge
	}{
		{"Path4", 4, builder.Path(4), []wgraph.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 3}}},
		{"Cycle3", 3, builder.Cycle(3), []wgraph.Edge{{V: 0, W: 1}, {V: 0, W: 2}, {V: 1, W: 2}}},
		{"Star4", 4, builder.Star(4), []wgraph.Edge{{V: 0, W: 1}, {V: 0, W: 2}, {V: 0, W: 3}}},
		{"Complete3", 3, builder.Complete(3), []wgraph.Edge{{V: 0, W: 1}, {V: 0, W: 2}, {V: 1, W: 2}}},
		{"Grid2x2", 4, builder.Grid(2, 2), []wgraph.Edge{{V: 0, W: 1}, {V: 0, W: 2}, {V: 1, W: 3}, {V: 2, W: 3}}},
		{"Path3InLargerGraph", 5, builder.Path(3), []wgraph.Edge{{V: 0, W: 1}, {V: 1, W: 2}}},
		{"Complete1", 1, builder.Complete(1), []wgraph.Edge{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.n, g.VertexCount())
			require.Equal(t, tc.wantE, g.Edges())
			require.Equal(t, len(tc.wantE), g.EdgeCount())

			for _, e := range tc.wantE {
				wt, err := g.Weight(e.V, e.W)
				require.NoError(t, err)
				require.Equal(t, builder.DefaultEdgeWeight, wt)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		ctor builder.Constructor
		want error
	}{
		{"PathTooShort", 3, builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooShort", 3, builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooShort", 3, builder.Star(1), builder.ErrTooFewVertices},
		{"GridZeroRows", 3, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"PathExceedsGraph", 3, builder.Path(4), builder.ErrGraphTooSmall},
		{"GridExceedsGraph", 5, builder.Grid(2, 3), builder.ErrGraphTooSmall},
		{"BadProbability", 3, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"NoRNG", 3, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"NilConstructor", 3, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.Nil(t, g)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v; want %v", err, tc.want)
			}
		})
	}

	_, err := builder.BuildGraph(0, nil)
	require.ErrorIs(t, err, wgraph.ErrBadVertexCount)
}

// TestBuildGraph_FirstWriteWins composes overlapping constructors.
func TestBuildGraph_FirstWriteWins(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 4, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(7))}, builder.Path(4))
	require.NoError(t, builder.Apply(g,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Cycle(4),
	))

	require.Equal(t, 4, g.EdgeCount())
	w01, _ := g.Weight(0, 1)
	w30, _ := g.Weight(3, 0)
	require.Equal(t, 7, w01) // from Path
	require.Equal(t, 2, w30) // only Cycle closes the ring
}

// TestRandomSparse_Deterministic locks the edge set for a fixed seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a := mustBuild(t, 12, opts, builder.RandomSparse(12, 0.3))
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	b := mustBuild(t, 12, opts, builder.RandomSparse(12, 0.3))

	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		wa, _ := a.Weight(e.V, e.W)
		wb, _ := b.Weight(e.V, e.W)
		require.Equal(t, wa, wb)
		require.True(t, wa >= 1 && wa <= 9, "weight %d out of range", wa)
	}

	// p ∈ {0,1} needs no RNG
	empty := mustBuild(t, 5, nil, builder.RandomSparse(5, 0))
	require.Zero(t, empty.EdgeCount())
	full := mustBuild(t, 5, nil, builder.RandomSparse(5, 1))
	require.Equal(t, 10, full.EdgeCount())
}

func mustBuild(t *testing.T, n int, opts []builder.BuilderOption, cons ...builder.Constructor) *wgraph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, opts, cons...)
	require.NoError(t, err)

	return g
}
