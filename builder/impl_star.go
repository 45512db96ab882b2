// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_star.go — Star(n): hub 0 connected to leaves 1..n-1.

package builder

import "github.com/katalvlaran/hopgraph/wgraph"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects vertex 0 to each of 1..n-1.
func Star(n int) Constructor {
	return func(g *wgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := validateFits(methodStar, g, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := link(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
