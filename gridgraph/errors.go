// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrUnknownKind indicates a tiling tag with no matching generator.
	ErrUnknownKind = errors.New("gridgraph: unknown tiling kind")
	// ErrBadSize indicates rows or cols below 1.
	ErrBadSize = errors.New("gridgraph: rows and cols must be at least 1")
	// ErrOddTorusRows indicates a toroidal Triangle grid with an odd row count.
	ErrOddTorusRows = errors.New("gridgraph: toroidal triangle grid needs an even row count")
)
