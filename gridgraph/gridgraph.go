// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fieldsim/matrix"
	"github.com/katalvlaran/fieldsim/topology"
)

// Upper returns the strictly upper-triangular unit-weight edge indicator of
// the tiling: entry (i, j), i < j, is 1 when i and j are adjacent.
//
// Validation (in order): ErrUnknownKind, ErrBadSize, ErrOddTorusRows.
// Complexity: O(rows×cols) edges, O((rows×cols)²) memory.
func Upper(kind Kind, rows, cols int, torus bool) (*matrix.Dense, error) {
	next, ok := rules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrBadSize, kind, rows, cols)
	}
	if kind == Triangle && torus && rows%2 != 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrOddTorusRows, rows)
	}

	n := rows * cols
	upper, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var r, c, nr, nc, i, j int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			i = r*cols + c
			for _, d := range next(r, c) {
				nr, nc = r+d.dr, c+d.dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					if !torus {
						continue // off the open lattice
					}
					nr, nc = wrap(nr, rows), wrap(nc, cols)
				}
				j = nr*cols + nc
				if i == j {
					continue // degenerate wrap on a single row or column
				}
				if i < j {
					_ = upper.Set(i, j, 1) // indices valid by construction
				} else {
					_ = upper.Set(j, i, 1)
				}
			}
		}
	}

	return upper, nil
}

// wrap reduces x into 0..n-1.
func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Adjacency mirrors Upper into the full symmetric adjacency.
func Adjacency(kind Kind, rows, cols int, torus bool) (*matrix.Adjacency, error) {
	upper, err := Upper(kind, rows, cols, torus)
	if err != nil {
		return nil, err
	}
	return matrix.Mirror(upper)
}

// New builds the tiling and its distance and neighborhood tables.
func New(kind Kind, rows, cols int, torus bool, opts ...topology.Option) (*Grid, error) {
	adj, err := Adjacency(kind, rows, cols, torus)
	if err != nil {
		return nil, err
	}
	spec := SpecOf(kind, rows, cols, torus)
	g, err := topology.Build(adj, append(opts, topology.WithSpec(spec))...)
	if err != nil {
		return nil, err
	}

	return &Grid{Graph: g, Kind: kind, Rows: rows, Cols: cols, Torus: torus}, nil
}

// FromSpec is New driven by a topology.Spec, parsing its Kind tag.
func FromSpec(spec topology.Spec, opts ...topology.Option) (*Grid, error) {
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}
	return New(kind, spec.Rows, spec.Cols, spec.Torus, opts...)
}

// Load returns the grid for spec from store, building and saving it on a miss.
// A nil store always builds.
func Load(ctx context.Context, store topology.Store, spec topology.Spec, opts ...topology.Option) (*Grid, error) {
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}
	spec.Kind = string(kind)

	g, err := topology.Cached(ctx, store, spec, func() (*topology.Graph, error) {
		grid, err := New(kind, spec.Rows, spec.Cols, spec.Torus, opts...)
		if err != nil {
			return nil, err
		}
		return grid.Graph, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Grid{Graph: g, Kind: kind, Rows: spec.Rows, Cols: spec.Cols, Torus: spec.Torus}, nil
}

// InBounds reports whether (row, col) lies on the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index maps (row, col) to its row-major vertex id.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a vertex id back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(v int) (row, col int) {
	return v / g.Cols, v % g.Cols
}
