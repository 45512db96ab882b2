// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Constructors only insert edges; the vertex set is fixed by BuildGraph.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// Constructor applies a deterministic edge mutation to g using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *wgraph.Graph, cfg builderConfig) error

// BuildGraph creates a wgraph.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n²) for the allocation plus the sum of constructor costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*wgraph.Graph, error) {
	g, err := wgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It exists for callers
// that allocate the graph themselves (e.g. loader) and for composing onto a
// partially built graph.
func Apply(g *wgraph.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
