package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/builder"
)

// ExampleBuildGraph composes a path with a star hub on six vertices.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(6,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.Path(4), builder.Star(6),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.Edges())
	// Output:
	// 6 7
	// [{0 1} {0 2} {0 3} {0 4} {0 5} {1 2} {2 3}]
}
