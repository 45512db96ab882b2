// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// helpers.go — shared validation and insertion helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// validateMin returns ErrTooFewVertices if n < min.
func validateMin(method, param string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, min, ErrTooFewVertices)
	}

	return nil
}

// validateFits returns ErrGraphTooSmall if g cannot hold need vertices.
func validateFits(method string, g *wgraph.Graph, need int) error {
	if g.VertexCount() < need {
		return fmt.Errorf("%s: need %d vertices, graph has %d: %w",
			method, need, g.VertexCount(), ErrGraphTooSmall)
	}

	return nil
}

// link inserts u–v with the next configured weight.
func link(method string, g *wgraph.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.InsertEdge(wgraph.Vertex(u), wgraph.Vertex(v), w); err != nil {
		return fmt.Errorf("%s: InsertEdge(%d,%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
