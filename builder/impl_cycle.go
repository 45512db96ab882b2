// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_cycle.go — Cycle(n): the simple cycle C_n over vertices 0..n-1.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); graph must hold n vertices.
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1.

package builder

import "github.com/katalvlaran/hopgraph/wgraph"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle.
func Cycle(n int) Constructor {
	return func(g *wgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := validateFits(methodCycle, g, n); err != nil {
			return err
		}
		// i == n-1 closes the ring back to 0
		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
