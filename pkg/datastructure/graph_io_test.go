package datastructure

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameGraph(t *testing.T, want, got *Graph) {
	t.Helper()
	require.Equal(t, want.NumberOfVertices(), got.NumberOfVertices())
	require.Equal(t, want.NumberOfEdges(), got.NumberOfEdges())

	for u := Index(0); int(u) < want.NumberOfVertices(); u++ {
		assert.Equal(t, want.GetVertex(u).GetOsmID(), got.GetVertex(u).GetOsmID())
		assert.Equal(t, want.GetCoordinate(u), got.GetCoordinate(u))
		assert.Equal(t, want.NumberOfNeighbors(u), got.NumberOfNeighbors(u))
	}
	for e := Index(0); int(e) < want.NumberOfEdges(); e++ {
		assert.Equal(t, want.GetOutEdge(e), got.GetOutEdge(e))
		assert.Equal(t, want.GetTailOfOutedge(e), got.GetTailOfOutedge(e))
	}
}

func TestEncodeDecodeGraph(t *testing.T) {
	g := testGraph()

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	decoded, err := DecodeGraph(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, decoded)
}

func TestWriteReadGraphFile(t *testing.T) {
	g := testGraph()
	filename := filepath.Join(t.TempDir(), "test.graph")

	require.NoError(t, g.WriteGraph(filename))

	read, err := ReadGraph(filename)
	require.NoError(t, err)
	assertSameGraph(t, g, read)
}

func TestDecodeGraphErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad header", input: "1\n"},
		{name: "missing vertex", input: "2 0\n1 0 0\n"},
		{name: "bad edge", input: "1 1\n1 0 0\n0 x 1 1 0\n"},
		{name: "edge endpoint out of range", input: "1 1\n1 0 0\n0 5 1 1 0\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGraph(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
