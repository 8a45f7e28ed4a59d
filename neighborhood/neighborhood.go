// SPDX-License-Identifier: MIT

package neighborhood

import (
	"math"
	"sort"

	"github.com/katalvlaran/fieldsim/dijkstra"
)

// Convert inverts every VertexDistance of gd into a VertexNeighborhood.
func Convert(gd dijkstra.GraphDistance) GraphNeighborhood {
	out := make(GraphNeighborhood, len(gd))
	for i, vd := range gd {
		out[i] = ConvertVertex(vd)
	}

	return out
}

// ConvertVertex groups the vertices of vd by distance. Ties share a bucket.
func ConvertVertex(vd dijkstra.VertexDistance) VertexNeighborhood {
	byDist := make(map[float64][]int)
	for v, d := range vd.Dist {
		byDist[d] = append(byDist[d], v) // v ascends, so buckets stay sorted
	}

	distances := make([]float64, 0, len(byDist))
	for d := range byDist {
		distances = append(distances, d)
	}
	sort.Float64s(distances) // +Inf sorts last

	members := make([][]int, len(distances))
	for i, d := range distances {
		members[i] = byDist[d]
	}

	return VertexNeighborhood{Source: vd.Source, Distances: distances, Members: members}
}

// Bucket returns the vertices at exactly distance d, or nil.
func (n VertexNeighborhood) Bucket(d float64) []int {
	i := sort.SearchFloat64s(n.Distances, d)
	if i < len(n.Distances) && n.Distances[i] == d {
		return n.Members[i]
	}
	return nil
}

// Distance returns the bucket distance holding v, or +Inf when v is absent.
func (n VertexNeighborhood) Distance(v int) float64 {
	for i, ms := range n.Members {
		j := sort.SearchInts(ms, v)
		if j < len(ms) && ms[j] == v {
			return n.Distances[i]
		}
	}
	return math.Inf(1)
}

// finite returns how many leading buckets have a finite distance.
func (n VertexNeighborhood) finite() int {
	k := len(n.Distances)
	for k > 0 && math.IsInf(n.Distances[k-1], 1) {
		k--
	}
	return k
}

// snapIndex returns the index of the finite distance nearest to x; ties
// resolve to the smaller distance. Returns -1 when no finite bucket exists.
func (n VertexNeighborhood) snapIndex(x float64) int {
	k := n.finite()
	if k == 0 {
		return -1
	}
	if math.IsInf(x, 1) || x >= n.Distances[k-1] {
		return k - 1
	}
	if x <= n.Distances[0] {
		return 0
	}
	i := sort.SearchFloat64s(n.Distances[:k], x) // Distances[i-1] < x <= Distances[i]
	if n.Distances[i] == x {
		return i
	}
	if n.Distances[i]-x < x-n.Distances[i-1] {
		return i
	}
	return i - 1
}

// Snap returns the occurring finite distance nearest to x (ties go low).
func (n VertexNeighborhood) Snap(x float64) float64 {
	i := n.snapIndex(x)
	if i < 0 {
		return math.Inf(1)
	}
	return n.Distances[i]
}

// Query returns the sorted vertices whose distance from Source lies within
// the snapped closed interval [lower, upper]. Without options every reachable
// vertex is returned.
func (n VertexNeighborhood) Query(opts ...QueryOption) []int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lo, hi := n.snapIndex(cfg.Lower), n.snapIndex(cfg.Upper)
	if lo < 0 || lo > hi {
		return nil
	}

	size := 0
	for i := lo; i <= hi; i++ {
		size += len(n.Members[i])
	}
	out := make([]int, 0, size)
	for i := lo; i <= hi; i++ {
		out = append(out, n.Members[i]...)
	}
	sort.Ints(out)

	return out
}

// Query delegates to the neighborhood of source; unknown sources yield nil.
func (g GraphNeighborhood) Query(source int, opts ...QueryOption) []int {
	if source < 0 || source >= len(g) {
		return nil
	}
	return g[source].Query(opts...)
}

// Equal reports whether both neighborhoods hold identical buckets.
func (g GraphNeighborhood) Equal(other GraphNeighborhood) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		a, b := g[i], other[i]
		if a.Source != b.Source || len(a.Distances) != len(b.Distances) {
			return false
		}
		for j := range a.Distances {
			if a.Distances[j] != b.Distances[j] || len(a.Members[j]) != len(b.Members[j]) {
				return false
			}
			for k := range a.Members[j] {
				if a.Members[j][k] != b.Members[j][k] {
					return false
				}
			}
		}
	}

	return true
}
