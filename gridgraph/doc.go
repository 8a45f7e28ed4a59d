// SPDX-License-Identifier: MIT

// Package gridgraph synthesizes tiling topologies and builds them into
// topology.Graph values.
//
// What:
//
//   - Four tilings: Hexagon, Square, Moore and Triangle, each over a
//     rows×cols lattice indexed row-major (vertex = row*cols + col).
//   - Optional torus wrap joining opposite boundaries, including the
//     diagonal wrap edges of each tiling.
//   - Grid: a topology.Graph plus the lattice shape, with coordinate helpers.
//   - Patches: connected components of the vertices selected by a mask,
//     used to report contiguous habitat.
//
// Tiling rules (forward edges i→j, j > i, later mirrored):
//
//	Hexagon   (row+1, col), (row, col+1), (row+1, col-1)
//	Square    (row+1, col), (row, col+1)
//	Moore     Square plus (row+1, col-1), (row+1, col+1)
//	Triangle  (row, col+1); (row+1, col) only where row+col is even
//
// Without torus, edges leaving the lattice are dropped. With torus they wrap
// modulo rows and cols. A toroidal Triangle needs an even row count so the
// vertical parity lines up across the seam.
//
// Complexity:
//
//   - Upper/Adjacency: O(rows×cols) edges, O((rows×cols)²) matrix memory.
//   - New: dominated by the all-pairs search, O(V·(V+E) log V).
//
// Errors:
//
//   - ErrUnknownKind: tiling tag without a generator.
//   - ErrBadSize: rows or cols below 1.
//   - ErrOddTorusRows: toroidal Triangle with an odd row count.
package gridgraph
