// SPDX-License-Identifier: MIT

package wgraph

import "fmt"

// MaxVertices is the largest vertex count New accepts. At the cap the n*n
// weight buffer holds 2^28 entries.
const MaxVertices = 1 << 14

// New creates a graph with n vertices and no edges.
// Stage 1 (Validate): 1 <= n <= MaxVertices.
// Stage 2 (Prepare): allocate the zero-filled n*n weight buffer.
// Stage 3 (Finalize): return the graph with EdgeCount() == 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n <= 0 || n > MaxVertices {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadVertexCount)
	}

	return &Graph{n: n, weights: make([]int, n*n)}, nil
}

// IsValidVertex reports whether g is non-nil and 0 <= v < g.VertexCount().
// Every vertex-taking method validates its arguments through it.
func IsValidVertex(g *Graph, v Vertex) bool {
	return g != nil && v >= 0 && int(v) < g.n
}

// IsValidVertex is the method form of the package-level IsValidVertex.
// It is safe to call on a nil receiver.
func (g *Graph) IsValidVertex(v Vertex) bool {
	return IsValidVertex(g, v)
}

// VertexCount returns the number of vertices, or 0 for a nil or dropped graph.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}

	return g.n
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.m
}

// MakeEdge validates v and w and returns them as an Edge. It does not touch
// the matrix.
func (g *Graph) MakeEdge(v, w Vertex) (Edge, error) {
	if err := g.check("MakeEdge", v, w); err != nil {
		return Edge{}, err
	}

	return Edge{V: v, W: w}, nil
}

// InsertEdge connects v and w with the given weight, in both directions.
//
// If v and w are already connected the call is a no-op: the existing weight
// is kept and EdgeCount is unchanged.
//
// Errors: ErrNilGraph, ErrInvalidVertex, ErrBadWeight (weight <= 0).
// Complexity: O(1).
func (g *Graph) InsertEdge(v, w Vertex, weight int) error {
	if err := g.check("InsertEdge", v, w); err != nil {
		return err
	}
	if weight <= 0 {
		return graphErrorf("InsertEdge", v, w, ErrBadWeight)
	}

	// first insertion wins
	if g.weights[g.at(v, w)] != 0 {
		return nil
	}
	g.weights[g.at(v, w)] = weight
	g.weights[g.at(w, v)] = weight
	g.m++

	return nil
}

// RemoveEdge disconnects v and w. Removing an absent edge is a no-op.
//
// Errors: ErrNilGraph, ErrInvalidVertex.
// Complexity: O(1).
func (g *Graph) RemoveEdge(v, w Vertex) error {
	if err := g.check("RemoveEdge", v, w); err != nil {
		return err
	}
	if g.weights[g.at(v, w)] == 0 {
		return nil
	}
	g.weights[g.at(v, w)] = 0
	g.weights[g.at(w, v)] = 0
	g.m--

	return nil
}

// Drop releases the weight buffer. Afterwards VertexCount and EdgeCount are
// zero and every vertex is invalid, so vertex-taking methods return
// ErrInvalidVertex. Dropping twice, or dropping nil, is harmless.
func (g *Graph) Drop() {
	if g == nil {
		return
	}
	g.weights = nil
	g.n, g.m = 0, 0
}

// Clone returns a deep copy of g. A nil graph clones to nil.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	cp := make([]int, len(g.weights))
	copy(cp, g.weights)

	return &Graph{n: g.n, m: g.m, weights: cp}
}

// check validates the receiver and both vertices, wrapping the failure with
// method context.
func (g *Graph) check(method string, v, w Vertex) error {
	if g == nil {
		return graphErrorf(method, v, w, ErrNilGraph)
	}
	if !g.IsValidVertex(v) || !g.IsValidVertex(w) {
		return graphErrorf(method, v, w, ErrInvalidVertex)
	}

	return nil
}

// at is the flat index of entry (v,w). Callers validate first.
func (g *Graph) at(v, w Vertex) int {
	return int(v)*g.n + int(w)
}
