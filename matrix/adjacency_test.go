// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fieldsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square2x2 is the open 2×2 square tiling: edges 0-1, 0-2, 1-3, 2-3.
func square2x2(t *testing.T) *matrix.Adjacency {
	t.Helper()
	upper, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, upper.Set(e[0], e[1], 1))
	}
	adj, err := matrix.Mirror(upper)
	require.NoError(t, err)
	return adj
}

func TestMirrorProducesSymmetricAdjacency(t *testing.T) {
	adj := square2x2(t)

	require.Equal(t, 4, adj.Order())
	require.True(t, adj.Symmetric())
	require.Equal(t, 4, adj.EdgeCount())
	assert.True(t, adj.HasEdge(3, 1))
	assert.False(t, adj.HasEdge(0, 3))
	assert.False(t, adj.HasEdge(0, 0))
	assert.False(t, adj.HasEdge(0, 9), "out of range reports no edge")

	require.Equal(t, []matrix.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 1}}, adj.Arcs(0))
	require.Equal(t, 2, adj.Degree(3))
	require.Nil(t, adj.Arcs(-1))

	row, err := adj.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, row)
	_, err = adj.Row(4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestMirrorRejectsLowerEntries(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 0, 1))

	_, err = matrix.Mirror(m)
	require.ErrorIs(t, err, matrix.ErrNotUpperTriangular)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Mirror(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFromRowsValidation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"Empty", nil, matrix.ErrInvalidDimensions},
		{"Ragged", [][]float64{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"SelfLoop", [][]float64{{1, 0}, {0, 0}}, matrix.ErrNonZeroDiagonal},
		{"Negative", [][]float64{{0, -1}, {1, 0}}, matrix.ErrInvalidWeight},
		{"NaN", [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrInvalidWeight},
		{"Inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, matrix.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRowsDirectedWeights(t *testing.T) {
	adj, err := matrix.FromRows([][]float64{
		{0, 2.5, 0},
		{0, 0, 1},
		{4, 0, 0},
	})
	require.NoError(t, err)
	require.False(t, adj.Symmetric())
	require.Equal(t, 3, adj.EdgeCount())

	w, err := adj.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, w)

	same, err := matrix.FromRows([][]float64{{0, 2.5, 0}, {0, 0, 1}, {4, 0, 0}})
	require.NoError(t, err)
	require.True(t, adj.Equal(same))
	require.False(t, adj.Equal(square2x2(t)))
}

func TestGonumExport(t *testing.T) {
	adj := square2x2(t)
	g := adj.Gonum()

	require.Equal(t, 4, g.Nodes().Len())
	w, ok := g.Weight(0, 2)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
	require.True(t, g.HasEdgeFromTo(2, 0))
	require.False(t, g.HasEdgeBetween(0, 3))
	require.NotNil(t, g.Node(3))
}
