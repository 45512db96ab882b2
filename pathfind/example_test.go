package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/pathfind"
	"github.com/katalvlaran/hopgraph/wgraph"
)

// ExampleFindPath runs the two-edge chain 0–1–2 (weights 2) with a loose and
// a tight bound.
func ExampleFindPath() {
	g, _ := wgraph.New(3)
	_ = g.InsertEdge(0, 1, 2)
	_ = g.InsertEdge(1, 2, 2)

	out := make([]wgraph.Vertex, g.VertexCount())
	n, _ := pathfind.FindPath(g, 0, 2, 5, out)
	fmt.Println(n, out[:n])

	// weight 2 is not < 2
	n, _ = pathfind.FindPath(g, 0, 2, 2, out)
	fmt.Println(n)
	// Output:
	// 3 [0 1 2]
	// 0
}

// ExamplePath_routeNetwork prefers fewer hops over lower total weight,
// unless the heavy shortcut is filtered out.
func ExamplePath_routeNetwork() {
	// 0 ─1─ 1 ─1─ 2 ─1─ 3, plus a direct 0 ─40─ 3
	g, _ := wgraph.New(4)
	_ = g.InsertEdge(0, 1, 1)
	_ = g.InsertEdge(1, 2, 1)
	_ = g.InsertEdge(2, 3, 1)
	_ = g.InsertEdge(0, 3, 40)

	p, _ := pathfind.Path(g, 0, 3, 100)
	fmt.Println(p)
	p, _ = pathfind.Path(g, 0, 3, 40)
	fmt.Println(p)
	// Output:
	// [0 3]
	// [0 1 2 3]
}
