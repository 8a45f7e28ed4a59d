// SPDX-License-Identifier: MIT

package neighborhood_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fieldsim/dijkstra"
	"github.com/katalvlaran/fieldsim/matrix"
	"github.com/katalvlaran/fieldsim/neighborhood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distances(t *testing.T, rows [][]float64) dijkstra.GraphDistance {
	t.Helper()
	adj, err := matrix.FromRows(rows)
	require.NoError(t, err)
	gd, err := dijkstra.AllPairs(adj)
	require.NoError(t, err)
	return gd
}

// square2x2 is 0-1 / 2-3 with vertical edges 0-2 and 1-3.
var square2x2 = [][]float64{
	{0, 1, 1, 0},
	{1, 0, 0, 1},
	{1, 0, 0, 1},
	{0, 1, 1, 0},
}

// path5 is the weighted path 0 -1- 1 -2- 2 -1- 3, plus isolated vertex 4.
var path5 = [][]float64{
	{0, 1, 0, 0, 0},
	{1, 0, 2, 0, 0},
	{0, 2, 0, 1, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0},
}

func TestConvert_Square2x2Buckets(t *testing.T) {
	gn := neighborhood.Convert(distances(t, square2x2))
	require.Len(t, gn, 4)

	n0 := gn[0]
	require.Equal(t, 0, n0.Source)
	require.Equal(t, []float64{0, 1, 2}, n0.Distances)
	require.Equal(t, []int{0}, n0.Bucket(0))
	require.Equal(t, []int{1, 2}, n0.Bucket(1))
	require.Equal(t, []int{3}, n0.Bucket(2))
	require.Nil(t, n0.Bucket(5))
}

func TestConvert_UnreachableBucket(t *testing.T) {
	gn := neighborhood.Convert(distances(t, path5))
	n0 := gn[0]

	require.Equal(t, []float64{0, 1, 3, 4, math.Inf(1)}, n0.Distances)
	require.Equal(t, []int{4}, n0.Bucket(math.Inf(1)))
	require.True(t, math.IsInf(n0.Distance(4), 1))
	require.Equal(t, 3.0, n0.Distance(2))
	require.True(t, math.IsInf(n0.Distance(42), 1))

	// Unbounded queries return reachable vertices only.
	require.Equal(t, []int{0, 1, 2, 3}, n0.Query())
	require.Equal(t, []int{4}, gn[4].Query())
}

func TestQuery_Snapping(t *testing.T) {
	n0 := neighborhood.Convert(distances(t, path5))[0] // distances 0,1,3,4

	cases := []struct {
		name string
		opts []neighborhood.QueryOption
		want []int
	}{
		{"Default", nil, []int{0, 1, 2, 3}},
		{"ExactRing", []neighborhood.QueryOption{neighborhood.WithRadius(1, 1)}, []int{1}},
		{"ExcludeSelf", []neighborhood.QueryOption{neighborhood.WithLower(1)}, []int{1, 2, 3}},
		{"UpperSnapsDown", []neighborhood.QueryOption{neighborhood.WithUpper(1.9)}, []int{0, 1}},
		{"UpperTieGoesLow", []neighborhood.QueryOption{neighborhood.WithUpper(2)}, []int{0, 1}},
		{"UpperSnapsUp", []neighborhood.QueryOption{neighborhood.WithUpper(2.2)}, []int{0, 1, 2}},
		{"LowerSnapsUp", []neighborhood.QueryOption{neighborhood.WithRadius(2.6, 10)}, []int{2, 3}},
		{"NegativeLower", []neighborhood.QueryOption{neighborhood.WithRadius(-3, 0)}, []int{0}},
		{"Inverted", []neighborhood.QueryOption{neighborhood.WithRadius(4, 1)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, n0.Query(tc.opts...))
		})
	}

	require.Equal(t, 1.0, n0.Snap(2))
	require.Equal(t, 4.0, n0.Snap(math.Inf(1)))
	require.Equal(t, 0.0, n0.Snap(-1))
}

func TestGraphNeighborhood_QueryDelegates(t *testing.T) {
	gn := neighborhood.Convert(distances(t, square2x2))
	require.Equal(t, []int{0, 1, 3}, gn.Query(1, neighborhood.WithUpper(1)))
	require.Nil(t, gn.Query(9))
	require.Nil(t, gn.Query(-1))
}

// TestConvert_RoundTrip checks distance(u,v) == d iff v ∈ neighborhood(u)[d],
// and that buckets partition the vertex set.
func TestConvert_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 25
	upper, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.12 {
				require.NoError(t, upper.Set(i, j, float64(1+rng.Intn(3))))
			}
		}
	}
	adj, err := matrix.Mirror(upper)
	require.NoError(t, err)
	gd, err := dijkstra.AllPairs(adj)
	require.NoError(t, err)

	gn := neighborhood.Convert(gd)
	for u := 0; u < n; u++ {
		seen := make(map[int]bool, n)
		for i, d := range gn[u].Distances {
			for _, v := range gn[u].Members[i] {
				assert.False(t, seen[v], "vertex %d appears twice from %d", v, u)
				seen[v] = true
				assert.Equal(t, gd.Between(u, v), d)
			}
		}
		assert.Len(t, seen, n)
		for v := 0; v < n; v++ {
			assert.Contains(t, gn[u].Bucket(gd.Between(u, v)), v)
		}
	}

	require.True(t, gn.Equal(neighborhood.Convert(gd)))
	require.False(t, gn.Equal(gn[:3]))
}
