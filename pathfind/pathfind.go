// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// noDest makes the walker exhaust the component instead of stopping early.
const noDest wgraph.Vertex = -1

// walker holds the per-call BFS state. It is discarded on return.
type walker struct {
	g       *wgraph.Graph
	max     int
	opts    Options
	queue   []wgraph.Vertex
	visited []bool
	pred    []pred
	dist    []int
	order   []wgraph.Vertex
}

// FindPath writes the fewest-hop path from src to dst into out, using only
// edges with 0 < weight < maxWeight, and returns the number of vertices on
// it. out must have length at least g.VertexCount(); on success out[:n] runs
// from src to dst and the remaining slots are unspecified.
//
// src == dst yields the one-vertex path [src] without traversal, whatever
// maxWeight is. An unreachable dst yields 0 and a nil error.
func FindPath(g *wgraph.Graph, src, dst wgraph.Vertex, maxWeight int, out []wgraph.Vertex, opts ...Option) (int, error) {
	if err := validate(g, src, dst); err != nil {
		return 0, err
	}
	if len(out) < g.VertexCount() {
		return 0, fmt.Errorf("%w: len=%d, need %d", ErrShortBuffer, len(out), g.VertexCount())
	}

	if src == dst {
		out[0] = src
		return 1, nil
	}

	w := newWalker(g, maxWeight, opts)
	w.run(src, dst)

	return w.build(dst, out), nil
}

// Path is FindPath with an allocated result. It returns nil, nil when dst
// is unreachable.
func Path(g *wgraph.Graph, src, dst wgraph.Vertex, maxWeight int, opts ...Option) ([]wgraph.Vertex, error) {
	if err := validate(g, src, dst); err != nil {
		return nil, err
	}
	out := make([]wgraph.Vertex, g.VertexCount())
	n, err := FindPath(g, src, dst, maxWeight, out, opts...)
	if err != nil || n == 0 {
		return nil, err
	}

	return out[:n:n], nil
}

// Reachable returns every vertex reachable from src through edges with
// 0 < weight < maxWeight, in BFS visit order, src first.
func Reachable(g *wgraph.Graph, src wgraph.Vertex, maxWeight int, opts ...Option) ([]wgraph.Vertex, error) {
	if err := validate(g, src, src); err != nil {
		return nil, err
	}
	w := newWalker(g, maxWeight, opts)
	w.run(src, noDest)

	return w.order, nil
}

func validate(g *wgraph.Graph, src, dst wgraph.Vertex) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.IsValidVertex(src) {
		return fmt.Errorf("pathfind: source %d: %w", src, ErrInvalidVertex)
	}
	if !g.IsValidVertex(dst) {
		return fmt.Errorf("pathfind: destination %d: %w", dst, ErrInvalidVertex)
	}

	return nil
}

func newWalker(g *wgraph.Graph, maxWeight int, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()

	return &walker{
		g:       g,
		max:     maxWeight,
		opts:    o,
		queue:   make([]wgraph.Vertex, 0, n),
		visited: make([]bool, n),
		pred:    make([]pred, n),
		dist:    make([]int, n),
		order:   make([]wgraph.Vertex, 0, n),
	}
}

// run performs the BFS from src, stopping once dst is dequeued.
func (w *walker) run(src, dst wgraph.Vertex) {
	// the source has no predecessor but is visited from the start
	w.visited[src] = true
	w.enqueue(src)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if cur == dst {
			return
		}
		w.expand(cur)
	}
}

func (w *walker) enqueue(v wgraph.Vertex) {
	w.opts.OnEnqueue(v, w.dist[v])
	w.queue = append(w.queue, v)
}

func (w *walker) dequeue() wgraph.Vertex {
	v := w.queue[0]
	w.queue = w.queue[1:]
	w.order = append(w.order, v)
	w.opts.OnDequeue(v, w.dist[v])

	return v
}

// expand discovers every unvisited eligible neighbor of cur, in increasing
// vertex order.
func (w *walker) expand(cur wgraph.Vertex) {
	nbrs, err := w.g.Neighbors(cur)
	if err != nil {
		// cur came off our own queue, so it is valid
		return
	}
	for _, nb := range nbrs {
		if nb.Weight >= w.max || w.visited[nb.To] {
			continue
		}
		w.visited[nb.To] = true
		w.pred[nb.To] = pred{v: cur, ok: true}
		w.dist[nb.To] = w.dist[cur] + 1
		w.enqueue(nb.To)
	}
}

// build writes the source→dst path into out and returns its length, or 0 if
// dst was never reached.
func (w *walker) build(dst wgraph.Vertex, out []wgraph.Vertex) int {
	if !w.pred[dst].ok {
		return 0
	}
	n := w.dist[dst] + 1
	out[n-1] = dst
	for i := n - 2; i >= 0; i-- {
		out[i] = w.pred[out[i+1]].v
	}

	return n
}
