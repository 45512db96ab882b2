// SPDX-License-Identifier: MIT

package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// ErrNames is returned when fewer names than vertices are supplied.
var ErrNames = errors.New("display: fewer names than vertices")

// ErrNilGraph is returned when Show is given a nil graph.
var ErrNilGraph = errors.New("display: graph is nil")

// PathSeparator joins vertex names in FormatPath.
const PathSeparator = " -> "

// Show writes g to w in the form
//
//	#vertices=3, #edges=2
//
//	0 Sydney
//		Melbourne (714)
//
//	1 Melbourne
//	...
//
// names[v] labels vertex v; a nil names slice labels vertices by index.
func Show(w io.Writer, g *wgraph.Graph, names []string) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	if names != nil && len(names) < n {
		return fmt.Errorf("%w: have %d, need %d", ErrNames, len(names), n)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#vertices=%d, #edges=%d\n\n", n, g.EdgeCount())
	for v := 0; v < n; v++ {
		fmt.Fprintf(bw, "%d %s\n", v, label(names, wgraph.Vertex(v)))
		nbrs, err := g.Neighbors(wgraph.Vertex(v))
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			fmt.Fprintf(bw, "\t%s (%d)\n", label(names, nb.To), nb.Weight)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FormatPath renders path as "A -> B -> C". An empty path renders as "".
// Vertices without a name fall back to their index.
func FormatPath(path []wgraph.Vertex, names []string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = label(names, v)
	}

	return strings.Join(parts, PathSeparator)
}

func label(names []string, v wgraph.Vertex) string {
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}

	return strconv.Itoa(int(v))
}
