// SPDX-License-Identifier: MIT

package wgraph

// Vertex identifies a vertex by its index in [0, VertexCount).
type Vertex int

// Edge is an unordered pair of vertices. It is a value, not a stored entity:
// MakeEdge returns one, Edges lists them.
type Edge struct {
	V, W Vertex
}

// Neighbor is one adjacent vertex together with the weight of the connecting edge.
type Neighbor struct {
	To     Vertex
	Weight int
}

// Graph is a fixed-size undirected weighted graph stored as a dense,
// symmetric adjacency matrix.
//
// The zero value is not usable; construct with New.
type Graph struct {
	n       int   // number of vertices, 0 after Drop
	m       int   // number of distinct undirected edges
	weights []int // n*n row-major, weights[v*n+w]; 0 == no edge
}
