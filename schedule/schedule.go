// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/space"
)

// Schedule is the ordered Step program of one tick.
type Schedule struct {
	steps []*Step
}

// New returns a Schedule running steps in the given order.
func New(steps ...*Step) *Schedule {
	s := &Schedule{steps: make([]*Step, len(steps))}
	copy(s.steps, steps)
	return s
}

// Steps returns a copy of the step list.
func (s *Schedule) Steps() []*Step {
	out := make([]*Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Len returns the number of steps.
func (s *Schedule) Len() int { return len(s.steps) }

// Perform runs every Step in order and concatenates the agents they created.
// Created agents are returned, not inserted: callers decide when they join
// the storage.
func (s *Schedule) Perform(env *Env) ([]agents.Agent, error) {
	var out []agents.Agent
	for i, st := range s.steps {
		created, err := st.Perform(env)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, created...)
	}
	return out, nil
}

// Bind checks, before any tick runs, that every kind referenced by the
// schedule has a prototype implementing every operation configured for it.
func (s *Schedule) Bind(prototypes map[agents.Kind]agents.Agent) error {
	for i, st := range s.steps {
		for _, b := range st.batches {
			proto, ok := prototypes[b.Kind]
			if !ok || proto == nil {
				return fmt.Errorf("step %d: %w: no prototype for kind %d", i, ErrUnsupportedOperation, b.Kind)
			}
			if err := b.Supports(proto); err != nil {
				return fmt.Errorf("step %d: kind %d: %w", i, b.Kind, err)
			}
		}
	}
	return nil
}

// Validate checks every step level against sp.
func (s *Schedule) Validate(sp *space.Space) error {
	for i, st := range s.steps {
		if _, err := sp.Keys(st.level); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Kinds lists the distinct agent kinds referenced, in first-use order.
func (s *Schedule) Kinds() []agents.Kind {
	seen := make(map[agents.Kind]bool)
	var out []agents.Kind
	for _, st := range s.steps {
		for _, b := range st.batches {
			if !seen[b.Kind] {
				seen[b.Kind] = true
				out = append(out, b.Kind)
			}
		}
	}
	return out
}
