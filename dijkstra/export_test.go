// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/fieldsim/matrix"

// SearchWithLimit exposes the bounded search so tests can force the round limit.
func SearchWithLimit(adj *matrix.Adjacency, source, limit int) (VertexDistance, error) {
	return search(adj, source, limit)
}
