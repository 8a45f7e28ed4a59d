// SPDX-License-Identifier: MIT

package neighborhood

import "math"

// VertexNeighborhood maps distance → vertices at that distance from Source.
// Distances is ascending; Members[i] holds the sorted vertex ids at
// Distances[i]. A trailing +Inf bucket, when present, holds unreachable ids.
type VertexNeighborhood struct {
	Source    int
	Distances []float64
	Members   [][]int
}

// GraphNeighborhood maps every source vertex to its VertexNeighborhood.
// Index i holds the neighborhood whose Source is i.
type GraphNeighborhood []VertexNeighborhood

// Options holds the closed query interval before snapping.
type Options struct {
	Lower float64
	Upper float64
}

// QueryOption customizes a radius query.
type QueryOption func(*Options)

// WithLower sets the lower distance bound (default 0).
func WithLower(d float64) QueryOption {
	return func(o *Options) { o.Lower = d }
}

// WithUpper sets the upper distance bound (default +Inf).
func WithUpper(d float64) QueryOption {
	return func(o *Options) { o.Upper = d }
}

// WithRadius sets both bounds at once.
func WithRadius(lower, upper float64) QueryOption {
	return func(o *Options) {
		o.Lower = lower
		o.Upper = upper
	}
}

// DefaultOptions is the unbounded query [0, +Inf].
func DefaultOptions() Options {
	return Options{Lower: 0, Upper: math.Inf(1)}
}
