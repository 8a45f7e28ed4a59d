// SPDX-License-Identifier: MIT

// Package schedule drives one simulation tick as an ordered program of Steps.
//
// What:
//
//   - Operation: the fixed set of named model calls (move, grow, survive,
//     develop, reproduce, consume, advance_age, reset). Each has a capability
//     interface (Mover, Grower, ...) that agent types implement.
//   - Action: one Operation plus the Scope it may touch. Actions: the ordered
//     list run on every agent of one kind.
//   - Step: batches of Actions keyed by agent kind, applied to the agents of
//     every location key of one space level, repeated, optionally shuffled,
//     optionally fanned out by location or by agent.
//   - Schedule: Steps run top to bottom; one Perform is one tick.
//
// Parallel safety:
//
//	Every Action declares a Scope. ScopeSelf actions mutate only the agent they
//	run on; ScopeNeighborhood actions may read or mutate other agents. A Step
//	that fans out (by agent or by location) accepts only ScopeSelf actions and
//	fails construction with ErrUnsafeParallel otherwise.
//
// Randomness:
//
//	All draws come from Env.Rand. Fan-out derives one independent stream per
//	chunk from it, so runs with a fixed seed repeat exactly for a fixed worker
//	count.
//
// Errors:
//
//   - ErrUnknownOperation, ErrUnsupportedOperation, ErrConflictingParallel,
//     ErrUnsafeParallel, ErrDuplicateBatch, ErrNilEnv.
package schedule
