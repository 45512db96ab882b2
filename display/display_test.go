package display_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/hopgraph/display"
	"github.com/katalvlaran/hopgraph/wgraph"
	"github.com/stretchr/testify/require"
)

func TestShow_Names(t *testing.T) {
	g, err := wgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.InsertEdge(0, 1, 714))
	require.NoError(t, g.InsertEdge(2, 0, 1143))

	var buf bytes.Buffer
	require.NoError(t, display.Show(&buf, g, []string{"Adelaide", "Melbourne", "Perth"}))

	want := "#vertices=3, #edges=2\n\n" +
		"0 Adelaide\n\tMelbourne (714)\n\tPerth (1143)\n\n" +
		"1 Melbourne\n\tAdelaide (714)\n\n" +
		"2 Perth\n\tAdelaide (1143)\n\n"
	require.Equal(t, want, buf.String())
}

func TestShow_IndicesAndErrors(t *testing.T) {
	g, _ := wgraph.New(2)
	_ = g.InsertEdge(0, 1, 5)

	var buf bytes.Buffer
	require.NoError(t, display.Show(&buf, g, nil))
	require.Equal(t, "#vertices=2, #edges=1\n\n0 0\n\t1 (5)\n\n1 1\n\t0 (5)\n\n", buf.String())

	err := display.Show(&buf, g, []string{"only"})
	if !errors.Is(err, display.ErrNames) {
		t.Errorf("short names: want ErrNames, got %v", err)
	}
	require.ErrorIs(t, display.Show(&buf, nil, nil), display.ErrNilGraph)
}

func TestFormatPath(t *testing.T) {
	names := []string{"A", "B", "C"}
	require.Equal(t, "A -> C -> B", display.FormatPath([]wgraph.Vertex{0, 2, 1}, names))
	require.Equal(t, "A -> 7", display.FormatPath([]wgraph.Vertex{0, 7}, names))
	require.Equal(t, "0 -> 1", display.FormatPath([]wgraph.Vertex{0, 1}, nil))
	require.Equal(t, "", display.FormatPath(nil, names))
}
