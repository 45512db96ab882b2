// Package builder_test contains unit tests for the WeightFn implementations
// and option constructors, covering behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/stretchr/testify/require"
)

// TestWeightFnConstructors verifies that constructors panic on meaningless input.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_zero", func() { builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() { builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, tc.fn)
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	require.Equal(t, 5, builder.ConstantWeightFn(5)(rng))

	uni := builder.UniformWeightFn(3, 6)
	require.Equal(t, 3, uni(nil))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		w := uni(rng)
		require.GreaterOrEqual(t, w, 3)
		require.LessOrEqual(t, w, 6)
		seen[w] = true
	}
	require.Len(t, seen, 4)
}

// TestWithRand_SharedSource shows WithRand consumes the caller's RNG.
func TestWithRand_SharedSource(t *testing.T) {
	t.Parallel()

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	a, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithRand(r1)}, builder.RandomSparse(8, 0.5))
	require.NoError(t, err)
	b, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithRand(r2)}, builder.RandomSparse(8, 0.5))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
}
