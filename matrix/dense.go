// SPDX-License-Identifier: MIT
// Dense: the scratch matrix tiling generators fill before it is frozen into
// an Adjacency.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a bounds-checked rows×cols float64 matrix in one flat slice.
type Dense struct {
	r, c int
	data []float64 // data[i*c+j] is entry (i, j)
}

// NewDense returns a zero rows×cols matrix, or ErrInvalidDimensions when
// either side is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// offset maps (i, j) to its slot in data.
func (m *Dense) offset(op string, i, j int) (int, error) {
	if i >= 0 && i < m.r && j >= 0 && j < m.c {
		return i*m.c + j, nil
	}
	return -1, fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", op, i, j, m.r, m.c, ErrIndexOutOfBounds)
}

// At returns entry (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}
	return m.data[k], nil
}

// Set stores v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.data[k] = v
	return nil
}

// Clone returns an independent copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String prints one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
