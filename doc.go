// Package hopgraph is a small library for fixed-size, undirected, weighted
// graphs and fewest-hop path queries under a weight bound.
//
// What is hopgraph?
//
//	A dense-matrix graph plus a breadth-first path finder:
//		• wgraph:   the graph store (vertices 0..n-1, first-write-wins edges)
//		• pathfind: fewest-hop paths using only edges lighter than a bound
//		• builder:  deterministic fixtures (path, cycle, star, complete, grid, random)
//		• display:  human-readable dumps of graphs and paths
//		• loader:   YAML graph descriptions with validation
//		• cmd/findpath: the command-line front end
//
// Weights gate which edges a query may use; they never price the path. The
// answer is always the path with the fewest edges, ties going to the lowest
// vertex indices.
//
// Quick ASCII example:
//
//	    0 ─2─ 1 ─2─ 2
//
//	FindPath(0 → 2, max 5) = [0 1 2]
//	FindPath(0 → 2, max 2) = no path (2 is not < 2)
//
//	go get github.com/katalvlaran/hopgraph
package hopgraph
