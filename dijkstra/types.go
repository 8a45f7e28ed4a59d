// SPDX-License-Identifier: MIT

// Package dijkstra defines result types, options and sentinel errors.
package dijkstra

import (
	"errors"
	"math"
	"runtime"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilAdjacency indicates that a nil *matrix.Adjacency was passed in.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrSourceOutOfRange indicates that the source vertex id is not in 0..N-1.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrRoundLimit indicates that a search exceeded N+1 extraction rounds.
	// It signals an implementation bug or a malformed adjacency and is fatal.
	ErrRoundLimit = errors.New("dijkstra: round limit exceeded")
)

// VertexDistance holds shortest-path distances from one source vertex.
// Dist[v] is the distance to v; unreachable vertices hold +Inf.
type VertexDistance struct {
	Source int
	Dist   []float64
}

// To returns the distance from the source to v, or +Inf for ids out of range.
func (d VertexDistance) To(v int) float64 {
	if v < 0 || v >= len(d.Dist) {
		return math.Inf(1)
	}
	return d.Dist[v]
}

// Reachable reports whether v has a finite distance from the source.
func (d VertexDistance) Reachable(v int) bool {
	return !math.IsInf(d.To(v), 1)
}

// GraphDistance maps every source vertex to its VertexDistance.
// Index i holds the VertexDistance whose Source is i.
type GraphDistance []VertexDistance

// Order returns the number of vertices covered by the table.
func (g GraphDistance) Order() int { return len(g) }

// Between returns distance(u, v), or +Inf when either id is out of range.
func (g GraphDistance) Between(u, v int) float64 {
	if u < 0 || u >= len(g) {
		return math.Inf(1)
	}
	return g[u].To(v)
}

// Equal reports whether both tables hold exactly the same distances.
func (g GraphDistance) Equal(other GraphDistance) bool {
	if len(g) != len(other) {
		return false
	}
	for u := range g {
		if g[u].Source != other[u].Source || len(g[u].Dist) != len(other[u].Dist) {
			return false
		}
		for v, d := range g[u].Dist {
			if other[u].Dist[v] != d {
				return false
			}
		}
	}

	return true
}

// Options configures AllPairs.
//
// Parallel – fan sources out across a worker pool.
// Workers  – pool size; defaults to runtime.NumCPU().
type Options struct {
	Parallel bool
	Workers  int
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithParallel dispatches sources across a pool of Options.Workers goroutines.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithWorkers sets the pool size and enables parallel dispatch.
// Panics if n < 1: a pool without workers is a programming error.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("dijkstra: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Parallel = true
		o.Workers = n
	}
}

// DefaultOptions returns sequential dispatch with a pool size of
// runtime.NumCPU() (used only when Parallel is switched on).
func DefaultOptions() Options {
	return Options{
		Parallel: false,
		Workers:  runtime.NumCPU(),
	}
}
