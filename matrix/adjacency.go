// SPDX-License-Identifier: MIT
// Adjacency: the square weight matrix every fieldsim topology is built on.
//
// Contract:
//   - Order N ≥ 1, vertices are the dense ids 0..N-1.
//   - Diagonal is exactly 0 (no self-loops).
//   - Off-diagonal entries are finite and ≥ 0; 0 means "no edge".
//   - Frozen after construction.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Arc is one outgoing edge of a vertex: target id and positive weight.
type Arc struct {
	To     int
	Weight float64
}

// Adjacency is an immutable N×N edge-weight matrix with cached arc lists.
type Adjacency struct {
	mat  *Dense  // backing storage; never exposed
	arcs [][]Arc // arcs[i] = outgoing edges of i, ascending by To
}

// FromRows builds an Adjacency from a row slice, validating the contract.
// Returns ErrInvalidDimensions, ErrNonSquare, ErrNonZeroDiagonal or ErrInvalidWeight.
// Complexity: O(N²).
func FromRows(rows [][]float64) (*Adjacency, error) {
	n := len(rows)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			_ = mat.Set(i, j, rows[i][j]) // indices valid by construction
		}
	}

	return newAdjacency(mat)
}

// FromDense validates m and wraps a private copy of it as an Adjacency.
// Complexity: O(N²).
func FromDense(m *Dense) (*Adjacency, error) {
	if m == nil {
		return nil, fmt.Errorf("FromDense: nil matrix: %w", ErrInvalidDimensions)
	}

	return newAdjacency(m.Clone())
}

// Mirror builds the symmetric Adjacency full = upper + upperᵀ.
// upper must be square with non-zero entries only strictly above the diagonal.
// Complexity: O(N²).
func Mirror(upper *Dense) (*Adjacency, error) {
	if upper == nil {
		return nil, fmt.Errorf("Mirror: nil matrix: %w", ErrInvalidDimensions)
	}
	n := upper.Rows()
	if n != upper.Cols() {
		return nil, fmt.Errorf("Mirror: %dx%d: %w", n, upper.Cols(), ErrNonSquare)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if upper.data[i*n+j] != 0 {
				return nil, fmt.Errorf("Mirror: entry (%d,%d)=%g: %w", i, j, upper.data[i*n+j], ErrNotUpperTriangular)
			}
		}
	}

	full := upper.Clone()
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			full.data[j*n+i] = full.data[i*n+j]
		}
	}

	return newAdjacency(full)
}

// newAdjacency validates mat in place and precomputes arc lists. mat is owned
// by the result afterwards.
func newAdjacency(mat *Dense) (*Adjacency, error) {
	n := mat.Rows()
	if n != mat.Cols() {
		return nil, fmt.Errorf("Adjacency: %dx%d: %w", n, mat.Cols(), ErrNonSquare)
	}

	arcs := make([][]Arc, n)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = mat.data[i*n+j]
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("Adjacency: entry (%d,%d)=%g: %w", i, j, w, ErrInvalidWeight)
			}
			if i == j {
				if w != 0 {
					return nil, fmt.Errorf("Adjacency: vertex %d weight %g: %w", i, w, ErrNonZeroDiagonal)
				}
				continue
			}
			if w > 0 {
				arcs[i] = append(arcs[i], Arc{To: j, Weight: w})
			}
		}
	}

	return &Adjacency{mat: mat, arcs: arcs}, nil
}

// Order returns N, the number of vertices.
func (a *Adjacency) Order() int { return a.mat.Rows() }

// At returns the weight of i→j (0 when there is no edge).
func (a *Adjacency) At(i, j int) (float64, error) { return a.mat.At(i, j) }

// HasEdge reports whether adjacency[i][j] > 0. Out-of-range ids report false.
func (a *Adjacency) HasEdge(i, j int) bool {
	w, err := a.mat.At(i, j)
	return err == nil && w > 0
}

// Arcs returns the outgoing arcs of vertex i, ascending by target id.
// The returned slice is shared and must not be modified.
func (a *Adjacency) Arcs(i int) []Arc {
	if i < 0 || i >= len(a.arcs) {
		return nil
	}
	return a.arcs[i]
}

// Degree returns the number of outgoing arcs of vertex i.
func (a *Adjacency) Degree(i int) int { return len(a.Arcs(i)) }

// Row returns a copy of row i.
func (a *Adjacency) Row(i int) ([]float64, error) {
	n := a.Order()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("Adjacency.Row(%d): %w", i, ErrIndexOutOfBounds)
	}
	out := make([]float64, n)
	copy(out, a.mat.data[i*n:(i+1)*n])

	return out, nil
}

// EdgeCount returns the number of undirected edges {i,j}, i<j, with a
// positive weight in either direction.
func (a *Adjacency) EdgeCount() int {
	n := a.Order()
	count := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a.mat.data[i*n+j] > 0 || a.mat.data[j*n+i] > 0 {
				count++
			}
		}
	}

	return count
}

// Symmetric reports whether adjacency[i][j] == adjacency[j][i] for all i, j.
func (a *Adjacency) Symmetric() bool {
	n := a.Order()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a.mat.data[i*n+j] != a.mat.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// Equal reports whether b has the same order and identical entries.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Order() != b.Order() {
		return false
	}
	for i, v := range a.mat.data {
		if b.mat.data[i] != v {
			return false
		}
	}

	return true
}

// Gonum exports the adjacency as a gonum weighted directed graph with node ids
// 0..N-1; undirected edges appear as two arcs.
// Complexity: O(N + E).
func (a *Adjacency) Gonum() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	n := a.Order()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for _, arc := range a.arcs[i] {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(i)), simple.Node(int64(arc.To)), arc.Weight))
		}
	}

	return g
}

// String renders the matrix rows for debugging.
func (a *Adjacency) String() string { return a.mat.String() }
