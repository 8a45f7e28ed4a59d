// SPDX-License-Identifier: MIT

// Package dijkstra_test validates single-source and all-pairs searches:
// argument validation, small hand-checked graphs, metric properties and
// agreement with gonum's reference implementation.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fieldsim/dijkstra"
	"github.com/katalvlaran/fieldsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
)

// mustRows builds an Adjacency from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Adjacency {
	t.Helper()
	adj, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return adj
}

// randomSymmetric builds an undirected graph on n vertices where each pair is
// connected with probability p and weight in [1,5].
func randomSymmetric(t *testing.T, rng *rand.Rand, n int, p float64) *matrix.Adjacency {
	t.Helper()
	upper, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				require.NoError(t, upper.Set(i, j, float64(1+rng.Intn(5))))
			}
		}
	}
	adj, err := matrix.Mirror(upper)
	require.NoError(t, err)
	return adj
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSingleSource_Validation(t *testing.T) {
	_, err := dijkstra.SingleSource(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilAdjacency)

	adj := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	_, err = dijkstra.SingleSource(adj, 2)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.SingleSource(adj, -1)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.AllPairs(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

func TestWithWorkers_PanicsOnZero(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithWorkers(0) })
}

func TestRoundLimitIsFatal(t *testing.T) {
	// A 4-vertex path needs 4 rounds; allowing 2 must abort, not truncate.
	adj := mustRows(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})
	vd, err := dijkstra.SearchWithLimit(adj, 0, 2)
	require.ErrorIs(t, err, dijkstra.ErrRoundLimit)
	require.Nil(t, vd.Dist)

	vd, err = dijkstra.SearchWithLimit(adj, 0, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, vd.Dist)
}

// ------------------------------------------------------------------------
// 2. Hand-checked graphs
// ------------------------------------------------------------------------

func TestSingleSource_Square2x2(t *testing.T) {
	// 0 - 1
	// |   |
	// 2 - 3
	adj := mustRows(t, [][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})
	vd, err := dijkstra.SingleSource(adj, 0)
	require.NoError(t, err)
	require.Equal(t, 0, vd.Source)
	require.Equal(t, []float64{0, 1, 1, 2}, vd.Dist)
	require.Equal(t, 2.0, vd.To(3))
}

func TestSingleSource_WeightedTriangle(t *testing.T) {
	// 0-1 (1), 1-2 (2), 0-2 (5): the detour through 1 wins.
	adj := mustRows(t, [][]float64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})
	vd, err := dijkstra.SingleSource(adj, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, vd.To(2))
}

func TestSingleSource_Unreachable(t *testing.T) {
	// Two components {0,1} and {2}.
	adj := mustRows(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	vd, err := dijkstra.SingleSource(adj, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(vd.To(2), 1))
	require.False(t, vd.Reachable(2))
	require.True(t, vd.Reachable(1))
	require.True(t, math.IsInf(vd.To(99), 1))

	vd, err = dijkstra.SingleSource(adj, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, vd.To(2))
	require.True(t, math.IsInf(vd.To(0), 1))
}

func TestSingleSource_Directed(t *testing.T) {
	// 0→1→2 with no way back.
	adj := mustRows(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	gd, err := dijkstra.AllPairs(adj)
	require.NoError(t, err)
	require.Equal(t, 2.0, gd.Between(0, 2))
	require.True(t, math.IsInf(gd.Between(2, 0), 1))
	require.True(t, math.IsInf(gd.Between(7, 0), 1))
}

// ------------------------------------------------------------------------
// 3. Properties on random graphs
// ------------------------------------------------------------------------

func TestAllPairs_MetricProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	adj := randomSymmetric(t, rng, 30, 0.15)

	gd, err := dijkstra.AllPairs(adj)
	require.NoError(t, err)
	require.Equal(t, 30, gd.Order())

	n := gd.Order()
	for u := 0; u < n; u++ {
		require.Equal(t, u, gd[u].Source)
		assert.Equal(t, 0.0, gd.Between(u, u), "self distance of %d", u)
		for v := 0; v < n; v++ {
			assert.Equal(t, gd.Between(u, v), gd.Between(v, u), "symmetry %d,%d", u, v)
			for w := 0; w < n; w++ {
				if !gd[u].Reachable(v) || !gd[v].Reachable(w) {
					continue
				}
				assert.LessOrEqual(t, gd.Between(u, w), gd.Between(u, v)+gd.Between(v, w))
			}
		}
	}
}

func TestAllPairs_SequentialEqualsParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	adj := randomSymmetric(t, rng, 60, 0.08)

	seq, err := dijkstra.AllPairs(adj)
	require.NoError(t, err)
	par, err := dijkstra.AllPairs(adj, dijkstra.WithWorkers(4))
	require.NoError(t, err)
	def, err := dijkstra.AllPairs(adj, dijkstra.WithParallel())
	require.NoError(t, err)

	require.True(t, seq.Equal(par))
	require.True(t, seq.Equal(def))
	require.False(t, seq.Equal(seq[:10]))
}

func TestAllPairs_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	adj := randomSymmetric(t, rng, 40, 0.1)

	gd, err := dijkstra.AllPairs(adj, dijkstra.WithWorkers(3))
	require.NoError(t, err)

	ref := path.DijkstraAllPaths(adj.Gonum())
	for u := 0; u < adj.Order(); u++ {
		for v := 0; v < adj.Order(); v++ {
			want := ref.Weight(int64(u), int64(v))
			got := gd.Between(u, v)
			if math.IsInf(want, 1) {
				require.True(t, math.IsInf(got, 1), "(%d,%d) should be unreachable", u, v)
				continue
			}
			require.InDelta(t, want, got, 1e-9, "(%d,%d)", u, v)
		}
	}
}
