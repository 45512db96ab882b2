package wgraph_test

import (
	"testing"

	"github.com/katalvlaran/hopgraph/wgraph"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := wgraph.New(512); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	g, _ := wgraph.New(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, w := wgraph.Vertex(i%256), wgraph.Vertex((i*7+1)%256)
		_ = g.InsertEdge(v, w, 1)
		_ = g.RemoveEdge(v, w)
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g, _ := wgraph.New(256)
	for w := wgraph.Vertex(1); w < 256; w += 3 {
		_ = g.InsertEdge(0, w, int(w))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Neighbors(0); err != nil {
			b.Fatal(err)
		}
	}
}
