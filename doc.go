// Package fieldsim is a discrete-time simulator of insect populations living
// on a nested spatial structure (field → plant → leaf).
//
// 🚀 What is fieldsim?
//
//	Two engines and the pieces that feed them:
//		• Topology: tiling generators (hexagon, square, moore, triangle,
//		  optionally toroidal), all-pairs Dijkstra, radius-bounded
//		  neighborhood queries, and a versioned topology cache
//		• Scheduling: per-kind action batches applied to agents partitioned
//		  by location, with repetition, shuffling and parallel fan-out by
//		  agent or by location
//
// Under the hood, everything is organized as flat packages, leaves first:
//
//	matrix/       dense float64 matrix and the validated Adjacency
//	dijkstra/     single-source and all-pairs shortest paths
//	neighborhood/ distance buckets and snapped radius queries
//	topology/     Graph (adjacency + distances + neighborhoods), codec, stores
//	gridgraph/    tiling generators, torus wrap, masked patches
//	space/        Location keys and the multi-level Space
//	agents/       kind registry, agent bins, in-memory storage
//	schedule/     Action, Actions, Step, Schedule
//	engine/       the tick loop and recorders
//	census/       SQLite census export
//	insects/      larva and adult models, genotypes, habitat noise
//	config/       YAML scenarios
//	cmd/fieldsim  the command line driver
//
// Quick ASCII example, a 2×2 open square grid:
//
//	    0───1
//	    │   │
//	    2───3
//
//	distance(0,3) = 2, neighborhood(0) at 1 = {1,2}, at 2 = {3}.
//
//	go run ./cmd/fieldsim -config cmd/fieldsim/scenario.yaml
package fieldsim
