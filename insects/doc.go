// SPDX-License-Identifier: MIT

// Package insects holds reference agent models for a herbivorous insect with
// a larval and an adult stage, living on a field of plants.
//
// Space layout: level 0 is the field (one vertex per plant); deeper levels,
// when present, are positions on a plant (leaves). Larvae occupy full-depth
// locations, adults occupy field vertices.
//
// Larva: grow, consume (cannibalism on the same leaf), develop (into an
// Adult once heavy enough), survive, advance_age, move (to a neighboring leaf).
//
// Adult: move (across the field within MoveRadius), reproduce (females mate
// with a male on the same plant and lay eggs on random leaves), survive,
// advance_age, reset (clears the mated flag).
//
// Inheritance is Mendelian at one biallelic locus; the resistant allele
// carries a growth cost with partial dominance. Plant quality comes from a
// Habitat, a normalized simplex noise field over the field grid.
package insects
