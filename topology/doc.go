// SPDX-License-Identifier: MIT

// Package topology bundles an adjacency matrix with its shortest-path
// distance table and the derived neighborhood buckets into one immutable
// Graph, and persists graphs so the expensive all-pairs search is paid once
// per spatial configuration rather than once per run.
//
// What:
//
//   - Graph: (Neighborhood, Distance, Adjacency) plus the Spec it was built
//     from. Distance and Neighborhood are always derived from Adjacency.
//   - Build: runs dijkstra.AllPairs (optionally on a worker pool), converts
//     the result, checks connectivity with gonum and logs a summary.
//   - Encode/Decode: a versioned binary format holding the Spec and the
//     non-zero adjacency entries. Distance tables are recomputed on Decode.
//   - Store: where encoded graphs live. FileStore keeps one file per Spec key;
//     SQLiteStore keeps them in a single SQLite database (sqlx + modernc).
//
// Errors:
//
//   - ErrNilGraph, ErrNotFound, ErrBadMagic, ErrVersion, ErrCorrupt.
//
// Thread safety:
//
//	Graphs are read-only after Build and may be shared freely. Stores are safe
//	for concurrent use.
package topology
