// SPDX-License-Identifier: MIT

package gridgraph

import "sort"

// Patches finds the contiguous regions of vertices accepted by keep, following
// the grid's own adjacency (wrap edges included). Each patch is sorted and
// patches are ordered by their smallest vertex.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *Grid) Patches(keep func(v int) bool) [][]int {
	total := g.Order()
	seen := make([]bool, total)
	var patches [][]int

	for v0 := 0; v0 < total; v0++ {
		if seen[v0] || !keep(v0) {
			continue
		}
		// BFS to collect one patch
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, arc := range g.Adjacency.Arcs(queue[qi]) {
				if seen[arc.To] || !keep(arc.To) {
					continue
				}
				seen[arc.To] = true
				queue = append(queue, arc.To)
			}
		}
		sort.Ints(queue)
		patches = append(patches, queue)
	}

	return patches
}
