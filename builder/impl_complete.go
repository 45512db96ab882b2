// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_complete.go — Complete(n): K_n over vertices 0..n-1.
//
// Complexity: O(n²) edge insertions, emitted for i asc, j > i asc.

package builder

import "github.com/katalvlaran/hopgraph/wgraph"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *wgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := validateFits(methodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
