// SPDX-License-Identifier: MIT

package wgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "wgraph: ". Methods wrap
// them with call context via %w, so callers must branch with errors.Is.
var (
	// ErrNilGraph is returned when a method is invoked on a nil *Graph.
	ErrNilGraph = errors.New("wgraph: graph is nil")

	// ErrBadVertexCount is returned by New when the vertex count is outside
	// [1, MaxVertices].
	ErrBadVertexCount = errors.New("wgraph: vertex count out of range")

	// ErrInvalidVertex indicates a vertex outside [0, VertexCount).
	ErrInvalidVertex = errors.New("wgraph: invalid vertex")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("wgraph: edge weight must be > 0")
)

// graphErrorf prefixes err with the method name and its vertex arguments,
// e.g. "InsertEdge(3,9): wgraph: invalid vertex".
func graphErrorf(method string, v, w Vertex, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, v, w, err)
}
