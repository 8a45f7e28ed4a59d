// SPDX-License-Identifier: MIT

package schedule

import "errors"

var (
	// ErrUnknownOperation indicates an operation name with no capability.
	ErrUnknownOperation = errors.New("schedule: unknown operation")
	// ErrUnsupportedOperation indicates an agent that lacks a configured capability.
	ErrUnsupportedOperation = errors.New("schedule: operation not supported by agent")
	// ErrConflictingParallel indicates a Step with both parallel modes set.
	ErrConflictingParallel = errors.New("schedule: parallel_by_agent and parallel_by_location are mutually exclusive")
	// ErrUnsafeParallel indicates a parallel Step containing a non-self-scoped action.
	ErrUnsafeParallel = errors.New("schedule: parallel step with an action that reaches beyond its agent")
	// ErrDuplicateBatch indicates two batches for the same agent kind in one Step.
	ErrDuplicateBatch = errors.New("schedule: duplicate agent kind in step")
	// ErrNilEnv indicates Perform called without a complete Env.
	ErrNilEnv = errors.New("schedule: env requires space, storage and rand")
)
