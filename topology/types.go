// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"log/slog"
	"runtime"
)

// KindCustom tags graphs built from an arbitrary adjacency rather than a tiling.
const KindCustom = "custom"

// Spec records how a graph was produced. For tilings Kind is the tiling tag
// and Rows×Cols the grid shape; custom graphs carry only their order.
type Spec struct {
	Kind  string
	Rows  int
	Cols  int
	Torus bool
}

// Key is the stable identifier used by stores, e.g. "hexagon-10x12-torus".
func (s Spec) Key() string {
	kind := s.Kind
	if kind == "" {
		kind = KindCustom
	}
	key := fmt.Sprintf("%s-%dx%d", kind, s.Rows, s.Cols)
	if s.Torus {
		key += "-torus"
	}
	return key
}

// String implements fmt.Stringer.
func (s Spec) String() string { return s.Key() }

// Options configures Build and the stores that call it.
type Options struct {
	Spec     Spec
	Logger   *slog.Logger
	Parallel bool
	Workers  int
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithSpec attaches the producing Spec to the built Graph.
func WithSpec(s Spec) Option {
	return func(o *Options) { o.Spec = s }
}

// WithLogger routes build logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("topology: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithWorkers runs the all-pairs search on a pool of n workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("topology: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Parallel = true
		o.Workers = n
	}
}

// DefaultOptions returns parallel dispatch over runtime.NumCPU() workers
// with the default slog logger.
func DefaultOptions() Options {
	return Options{
		Spec:     Spec{Kind: KindCustom},
		Logger:   slog.Default(),
		Parallel: true,
		Workers:  runtime.NumCPU(),
	}
}
