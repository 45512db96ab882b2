// SPDX-License-Identifier: MIT

// Package wgraph provides a fixed-size, undirected, weighted graph backed by a
// dense adjacency matrix.
//
// What
//
//   - Vertices are the integers 0..n-1; n is fixed by New and never changes.
//   - Edges carry a positive integer weight; a zero matrix entry means "no edge".
//   - Every edge is stored in both directions, so Weight(v,w) == Weight(w,v).
//   - EdgeCount is maintained incrementally by InsertEdge/RemoveEdge.
//
// Storage
//
//	The matrix lives in one flat row-major []int of length n*n, exactly like
//	a dense matrix: entry (v,w) sits at index v*n+w. There are no per-row
//	allocations.
//
// Insertion policy
//
//	InsertEdge is first-write-wins. Inserting an edge that already exists is a
//	no-op: the stored weight is kept and EdgeCount does not change. To change a
//	weight, RemoveEdge then InsertEdge.
//
// Complexity (n = VertexCount)
//
//   - New, Clone:                 O(n²) time and memory
//   - InsertEdge, RemoveEdge:     O(1)
//   - Weight, HasEdge, MakeEdge:  O(1)
//   - Neighbors:                  O(n)
//   - Edges:                      O(n²)
//
// Errors
//
//   - ErrNilGraph        a method was called on a nil *Graph.
//   - ErrBadVertexCount  New was given n <= 0 or n > MaxVertices.
//   - ErrInvalidVertex   a vertex outside [0, n), or any vertex after Drop.
//   - ErrBadWeight       InsertEdge was given weight <= 0.
//
// Precondition failures never mutate the graph. Duplicate inserts and removals
// of absent edges are not errors.
//
// Concurrency
//
//	Graph has no internal locking. Callers sharing a Graph across goroutines
//	must serialize access themselves.
//
// Usage
//
//	g, err := wgraph.New(3)
//	if err != nil {
//		// handle ErrBadVertexCount
//	}
//	_ = g.InsertEdge(0, 1, 2)
//	_ = g.InsertEdge(1, 2, 2)
//	nbrs, _ := g.Neighbors(1) // [{0 2} {2 2}]
package wgraph
