// Package builder provides deterministic topology constructors that populate
// a wgraph.Graph: paths, cycles, stars, complete graphs, grids and seeded
// random sparse graphs.
//
// The package offers the following key components:
//
//   - BuildGraph:   allocates a graph of n vertices and applies constructors in order.
//   - Constructor:  a function that inserts edges into vertices 0..k-1 of a graph.
//   - BuilderOption: functional options (WithSeed, WithRand, WithWeightFn).
//   - WeightFn:     edge-weight generators (DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn).
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graph.
//   - Composition: wgraph.InsertEdge is first-write-wins, so overlapping
//     constructors keep the weight of whichever inserted an edge first.
//   - Option constructors panic on meaningless values; constructors never panic
//     and return sentinel errors wrapped with method context.
//
// Example:
//
//	g, err := builder.BuildGraph(6,
//		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
//		builder.Path(4), builder.Star(6),
//	)
package builder
