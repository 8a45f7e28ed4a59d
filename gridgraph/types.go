// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fieldsim/topology"
)

// Kind selects a tiling rule.
type Kind string

const (
	// Hexagon connects each cell to six neighbors on an offset lattice.
	Hexagon Kind = "hexagon"
	// Square connects orthogonal neighbors (von Neumann).
	Square Kind = "square"
	// Moore connects orthogonal and diagonal neighbors.
	Moore Kind = "moore"
	// Triangle connects horizontal neighbors and alternating vertical ones.
	Triangle Kind = "triangle"
)

// Kinds lists every supported tiling in a stable order.
var Kinds = []Kind{Hexagon, Square, Moore, Triangle}

// ParseKind maps a case-insensitive tag to a Kind.
func ParseKind(tag string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := rules[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
	return k, nil
}

// offset is a forward step (drow, dcol) between lattice cells.
type offset struct{ dr, dc int }

// rule returns the forward offsets leaving (row, col).
type rule func(row, col int) []offset

var (
	hexOffsets    = []offset{{1, 0}, {0, 1}, {1, -1}}
	squareOffsets = []offset{{1, 0}, {0, 1}}
	mooreOffsets  = []offset{{1, 0}, {0, 1}, {1, -1}, {1, 1}}
	triUp         = []offset{{0, 1}, {1, 0}}
	triFlat       = []offset{{0, 1}}
)

var rules = map[Kind]rule{
	Hexagon: func(int, int) []offset { return hexOffsets },
	Square:  func(int, int) []offset { return squareOffsets },
	Moore:   func(int, int) []offset { return mooreOffsets },
	Triangle: func(row, col int) []offset {
		if (row+col)%2 == 0 {
			return triUp
		}
		return triFlat
	},
}

// Grid is a Graph synthesized from a tiling. It is immutable once built.
type Grid struct {
	*topology.Graph
	Kind  Kind
	Rows  int
	Cols  int
	Torus bool
}

// SpecOf returns the topology spec a grid of this shape is stored under.
func SpecOf(kind Kind, rows, cols int, torus bool) topology.Spec {
	return topology.Spec{Kind: string(kind), Rows: rows, Cols: cols, Torus: torus}
}
