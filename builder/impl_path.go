// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_path.go — Path(n): the simple path 0–1–…–(n-1).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); graph must hold n vertices (else ErrGraphTooSmall).
//   • Emits edges i–(i+1) for i ascending.

package builder

import "github.com/katalvlaran/hopgraph/wgraph"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links vertices 0..n-1 into a path.
func Path(n int) Constructor {
	return func(g *wgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := validateFits(methodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
