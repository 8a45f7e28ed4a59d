// SPDX-License-Identifier: MIT

package topology

import "errors"

var (
	// ErrNilGraph indicates that a nil Graph or adjacency was supplied.
	ErrNilGraph = errors.New("topology: graph is nil")

	// ErrNotFound indicates that a store holds no graph for the requested spec.
	ErrNotFound = errors.New("topology: graph not found")

	// ErrBadMagic indicates that a payload does not start with the graph magic.
	ErrBadMagic = errors.New("topology: bad magic")

	// ErrVersion indicates an encoded graph written by an unsupported codec version.
	ErrVersion = errors.New("topology: unsupported codec version")

	// ErrCorrupt indicates a truncated or inconsistent payload.
	ErrCorrupt = errors.New("topology: corrupt payload")
)
