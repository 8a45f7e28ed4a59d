// SPDX-License-Identifier: MIT

// Package matrix holds the dense storage behind every topology in fieldsim.
//
// What:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Adjacency: a square, zero-diagonal, non-negative weight matrix over
//     vertex ids 0..N-1. adjacency[i][j] > 0 iff the edge i→j exists.
//   - Mirror: turns an upper-triangular indicator matrix (as produced by the
//     grid generators) into a full symmetric Adjacency: full = upper + upperᵀ.
//
// Why:
//
//	Tilings used by the simulator are small-to-medium (hundreds to a few
//	thousand cells) and are built once, then read from many goroutines. A
//	dense matrix gives O(1) edge lookups and a trivially shareable layout;
//	Adjacency additionally caches per-vertex arc lists so shortest-path
//	searches relax only real edges.
//
// Immutability:
//
//	An Adjacency is frozen once constructed. Callers receive copies from Row
//	and never a handle to the backing slice, so the value is safe to share
//	across goroutines without locking.
//
// Interop:
//
//	Gonum exports the adjacency as a gonum weighted graph so callers can run
//	gonum algorithms (connectivity, reference shortest paths) on the same
//	topology.
//
// Complexity:
//
//	NewDense/Clone: O(r*c). At/Set: O(1). Mirror/FromRows: O(N²).
//	Arcs: O(1) (precomputed during construction).
package matrix
