package percolation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClusters_Simple checks cluster discovery on a 4×4 grid:
//
//	o o . .
//	. o . o
//	. . . o
//	o . . .
//
// Expected: {(1,1),(1,2),(2,2)}, {(2,4),(3,4)}, {(4,1)}.
func TestClusters_Simple(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	for _, s := range []Site{{1, 1}, {1, 2}, {2, 2}, {2, 4}, {3, 4}, {4, 1}} {
		require.NoError(t, g.Open(s.Row, s.Col))
	}

	got := g.Clusters()
	want := [][]Site{
		{{1, 1}, {1, 2}, {2, 2}},
		{{2, 4}, {3, 4}},
		{{4, 1}},
	}
	assert.Equal(t, want, got)
}

// TestClusters_Empty checks that a closed grid has no clusters.
func TestClusters_Empty(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	assert.Empty(t, g.Clusters())
}

// TestIndexRoundTrip checks index and site are inverse over the whole grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := New(6)
	require.NoError(t, err)
	for row := 1; row <= 6; row++ {
		for col := 1; col <= 6; col++ {
			assert.Equal(t, Site{row, col}, g.site(g.index(row, col)))
		}
	}
	assert.Equal(t, 36, g.virtual())
}

// TestDump checks the debug layout on a 2×2 grid after opening (1,1).
func TestDump(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	require.NoError(t, g.Open(1, 1))

	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))
	want := "" +
		"  1   0 \n" +
		"  0   0 \n" +
		"\n" +
		"virtual top:   0\n" +
		"  0   1 \n" +
		"  2   3 \n"
	assert.Equal(t, want, buf.String())
}
