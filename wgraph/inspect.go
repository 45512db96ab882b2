// SPDX-License-Identifier: MIT

package wgraph

import "fmt"

// Weight returns the weight of edge (v,w), or 0 if they are not connected.
// Complexity: O(1).
func (g *Graph) Weight(v, w Vertex) (int, error) {
	if err := g.check("Weight", v, w); err != nil {
		return 0, err
	}

	return g.weights[g.at(v, w)], nil
}

// HasEdge reports whether v and w are connected.
func (g *Graph) HasEdge(v, w Vertex) (bool, error) {
	wt, err := g.Weight(v, w)
	if err != nil {
		return false, err
	}

	return wt != 0, nil
}

// Neighbors returns every vertex adjacent to v with the connecting weight,
// in increasing vertex order.
// Complexity: O(n).
func (g *Graph) Neighbors(v Vertex) ([]Neighbor, error) {
	if g == nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrNilGraph)
	}
	if !g.IsValidVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrInvalidVertex)
	}

	row := g.weights[int(v)*g.n : (int(v)+1)*g.n]
	var out []Neighbor
	for i, wt := range row {
		if wt != 0 {
			out = append(out, Neighbor{To: Vertex(i), Weight: wt})
		}
	}

	return out, nil
}

// Edges lists every edge once as {V, W} with V <= W, ordered by V then W.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, g.m)
	for v := 0; v < g.n; v++ {
		// upper triangle only, the lower one mirrors it
		for w := v; w < g.n; w++ {
			if g.weights[v*g.n+w] != 0 {
				out = append(out, Edge{V: Vertex(v), W: Vertex(w)})
			}
		}
	}

	return out
}
