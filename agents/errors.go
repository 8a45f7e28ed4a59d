// SPDX-License-Identifier: MIT

package agents

import "errors"

var (
	// ErrNilAgent indicates a nil Agent passed to storage.
	ErrNilAgent = errors.New("agents: agent is nil")
	// ErrUnknownKind indicates an agent kind name or id that was never registered.
	ErrUnknownKind = errors.New("agents: unknown kind")
	// ErrDuplicateKind indicates a kind name registered twice.
	ErrDuplicateKind = errors.New("agents: duplicate kind")
	// ErrEmptyName indicates a blank kind name.
	ErrEmptyName = errors.New("agents: empty kind name")
	// ErrOutsideSpace indicates an agent whose Location is not part of the storage's Space.
	ErrOutsideSpace = errors.New("agents: location outside space")
)
