// SPDX-License-Identifier: MIT

// Package agents defines what the scheduler needs from simulated individuals
// and from the storage that owns them.
//
// An Agent reports its Kind, its space.Location and whether it is alive;
// everything else (the biological models) lives in concrete types that also
// implement the schedule capability interfaces.
//
// Storage groups agents into Partitions: for a given space level, every
// agent whose Location reaches that level is filed under the Location prefix
// of that depth, then by Kind. Partitions are snapshots; later moves or
// inserts do not alter a Partition already handed out.
//
// Memory is the in-process Storage. It is safe for concurrent use.
package agents
