// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so logs can be grepped.
// Callers match with errors.Is; context is attached with %w at the call site.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a self-loop weight on the adjacency diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrInvalidWeight signals a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrNotUpperTriangular signals a non-zero entry at or below the diagonal
	// of a matrix passed to Mirror.
	ErrNotUpperTriangular = errors.New("matrix: matrix is not strictly upper triangular")
)
