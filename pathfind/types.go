// SPDX-License-Identifier: MIT

package pathfind

import (
	"errors"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// Sentinel errors for path queries.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrInvalidVertex is wgraph.ErrInvalidVertex, re-exported so callers of
	// this package need not import wgraph to branch on it.
	ErrInvalidVertex = wgraph.ErrInvalidVertex

	// ErrShortBuffer is returned when the output buffer cannot hold a path
	// through every vertex.
	ErrShortBuffer = errors.New("pathfind: output buffer shorter than vertex count")
)

// Option configures a query via functional arguments.
type Option func(*Options)

// Options holds the traversal callbacks.
type Options struct {
	// OnEnqueue is called when a vertex is discovered and joins the frontier.
	// depth is its hop distance from the source.
	OnEnqueue func(v wgraph.Vertex, depth int)

	// OnDequeue is called when a vertex leaves the frontier, before it is
	// compared to the destination.
	OnDequeue func(v wgraph.Vertex, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(wgraph.Vertex, int) {},
		OnDequeue: func(wgraph.Vertex, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v wgraph.Vertex, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v wgraph.Vertex, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// pred is a predecessor slot; ok == false means "none".
type pred struct {
	v  wgraph.Vertex
	ok bool
}
