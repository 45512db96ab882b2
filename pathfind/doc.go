// SPDX-License-Identifier: MIT

// Package pathfind finds fewest-hop paths in a wgraph.Graph using
// breadth-first search restricted to edges lighter than a threshold.
//
// What
//
//   - FindPath writes the path from src to dst into a caller-supplied buffer
//     and returns its length in vertices (0 when dst is unreachable).
//   - Path is the allocating convenience form.
//   - Reachable lists every vertex reachable from src under the same rule.
//
// Edge eligibility
//
//	An edge (u,i) may be traversed iff 0 < weight(u,i) < maxWeight. The bound
//	is strict: an edge whose weight equals maxWeight is excluded. A zero
//	matrix entry is "no edge", never a traversable zero-weight edge. With
//	maxWeight <= 1 nothing is eligible.
//
// Weights only gate eligibility. Path length is the hop count; this is not
// a minimum-total-weight search.
//
// Determinism
//
//	Neighbors are scanned in increasing vertex order, so among equal-length
//	paths the one through the lowest-indexed vertices discovered first wins,
//	and repeated calls return the identical path.
//
// Complexity (n = VertexCount)
//
//   - Time:   O(n²)  (one matrix row scanned per dequeued vertex)
//   - Memory: O(n)   per call; nothing survives the call.
//
// Errors
//
//   - ErrNilGraph       the graph pointer is nil.
//   - ErrInvalidVertex  src or dst is not a vertex of g (wraps wgraph.ErrInvalidVertex).
//   - ErrShortBuffer    the output buffer is shorter than VertexCount.
//
// Usage
//
//	out := make([]wgraph.Vertex, g.VertexCount())
//	n, err := pathfind.FindPath(g, 0, 2, 5, out)
//	if err != nil {
//		// handle one of the errors above
//	}
//	fmt.Println(out[:n]) // [0 1 2], or [] when unreachable
//
//	// with hooks:
//	n, err = pathfind.FindPath(g, 0, 2, 5, out,
//		pathfind.WithOnEnqueue(func(v wgraph.Vertex, depth int) { /* ... */ }),
//		pathfind.WithOnDequeue(func(v wgraph.Vertex, depth int) { /* ... */ }),
//	)
package pathfind
