// SPDX-License-Identifier: MIT

package space

import "errors"

var (
	// ErrNoLevels indicates a Space built without any graph.
	ErrNoLevels = errors.New("space: at least one level is required")
	// ErrTooDeep indicates more levels or vertices than MaxDepth.
	ErrTooDeep = errors.New("space: depth exceeds MaxDepth")
	// ErrLevelOutOfRange indicates a level index outside the Space.
	ErrLevelOutOfRange = errors.New("space: level out of range")
	// ErrInvalidLocation indicates a Location whose vertices do not exist in the Space.
	ErrInvalidLocation = errors.New("space: invalid location")
)
