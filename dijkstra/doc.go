// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source and all-pairs shortest-path
// distances over a matrix.Adjacency.
//
// Overview:
//
//   - SingleSource runs Dijkstra's algorithm from one vertex and returns a
//     VertexDistance: one entry per vertex, 0 for the source itself and +Inf
//     for every unreachable vertex.
//   - AllPairs runs SingleSource once per vertex and gathers the results,
//     indexed by source, into a GraphDistance. Sources are independent, so
//     the work may be fanned out across a fixed worker pool (WithParallel,
//     WithWorkers); sequential and parallel dispatch produce identical tables.
//
// Algorithm:
//
//   - Tentative distances start at +Inf except the source (0).
//   - Each round extracts the unvisited vertex with the minimum tentative
//     distance (lazy-decrease-key min-heap), finalizes it, and relaxes its
//     arcs: candidate = dist[current] + weight, accepted only when strictly
//     smaller than the current tentative distance.
//   - The search ends when no reachable unvisited vertex remains.
//   - At most N+1 rounds are allowed per source. Exceeding the bound means the
//     adjacency or the search state is inconsistent; the search aborts with
//     ErrRoundLimit instead of returning a partial table.
//
// Complexity:
//
//   - SingleSource: O((V + E) log V) time, O(V + E) space.
//   - AllPairs:     O(V (V + E) log V) time, O(V²) space for the result.
//
// Errors (sentinel):
//
//   - ErrNilAdjacency      the adjacency pointer is nil.
//   - ErrSourceOutOfRange  the source id is not in 0..N-1.
//   - ErrRoundLimit        the N+1 round bound was exceeded (fatal).
//
// Thread safety:
//
//	A matrix.Adjacency is immutable, so any number of searches may share it.
//	VertexDistance and GraphDistance are read-only once returned.
package dijkstra
