// SPDX-License-Identifier: MIT

// Package neighborhood inverts shortest-path distance tables into
// distance-indexed buckets and answers radius-bounded queries over them.
//
// What:
//
//   - VertexNeighborhood groups every vertex of a graph by its distance from
//     one source. Buckets partition the full vertex set; unreachable vertices
//     share the +Inf bucket.
//   - GraphNeighborhood holds one VertexNeighborhood per source vertex and is
//     derived deterministically from a dijkstra.GraphDistance by Convert.
//   - Query(lower, upper) returns the union of buckets whose distance lies in
//     the closed interval [lower, upper] after both bounds are snapped to the
//     nearest distance that actually occurs from that source.
//
// Snapping:
//
//	Snapping considers finite distances only. A bound equidistant from two
//	occurring distances snaps to the smaller one. An upper bound of +Inf snaps
//	to the largest finite distance, so an unbounded query returns every
//	reachable vertex (the source included, at distance 0).
//
// Why:
//
//	Movement, mating and cannibalism models ask "who is within k steps" many
//	times per tick. Precomputed buckets answer with a binary search plus a
//	concatenation, never touching the distance table.
//
// Complexity:
//
//	Convert: O(V² log V). Query: O(log B + K) for B buckets and K results.
package neighborhood
