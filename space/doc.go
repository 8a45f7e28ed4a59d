// SPDX-License-Identifier: MIT

// Package space stacks topology graphs into nested levels (field, plant,
// leaf, ...) and addresses positions in that stack with Location keys.
//
// A Location is a comparable fixed-size tuple of vertex ids, one per level
// from the coarsest down; it is used directly as a map key by agent storage.
// Level i of a Location is a vertex of graph i, and the location's own level
// is Depth()-1.
//
// Space precomputes, for every level, the catalogue of all Locations of that
// depth (the cross product of the vertex sets of levels 0..level). The
// scheduler partitions agents by these keys.
//
// Randomness is always supplied by the caller as a *rand.Rand.
package space
