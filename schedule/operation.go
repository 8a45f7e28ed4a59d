// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fieldsim/agents"
)

// Operation names one model call an agent can perform.
type Operation uint8

const (
	Move Operation = iota
	Grow
	Survive
	Develop
	Reproduce
	Consume
	AdvanceAge
	Reset

	numOperations
)

var operationNames = [numOperations]string{
	Move:       "move",
	Grow:       "grow",
	Survive:    "survive",
	Develop:    "develop",
	Reproduce:  "reproduce",
	Consume:    "consume",
	AdvanceAge: "advance_age",
	Reset:      "reset",
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	if o < numOperations {
		return operationNames[o]
	}
	return fmt.Sprintf("operation(%d)", o)
}

// ParseOperation maps a configured name to its Operation.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range operationNames {
		if n == key {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Scope declares how far an action's side effects reach.
type Scope uint8

const (
	// ScopeSelf actions mutate only the agent they run on.
	ScopeSelf Scope = iota
	// ScopeNeighborhood actions may read or mutate other agents.
	ScopeNeighborhood
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == ScopeSelf {
		return "self"
	}
	return "neighborhood"
}

// DefaultScope is the scope assumed for o unless an action is declared local.
// Consume and Reproduce look at other agents (prey, mates); the rest do not.
func (o Operation) DefaultScope() Scope {
	switch o {
	case Consume, Reproduce:
		return ScopeNeighborhood
	default:
		return ScopeSelf
	}
}

// Capability interfaces. Each returns the agents the call created.
type (
	Mover interface {
		Move(env *Env) ([]agents.Agent, error)
	}
	Grower interface {
		Grow(env *Env) ([]agents.Agent, error)
	}
	Survivor interface {
		Survive(env *Env) ([]agents.Agent, error)
	}
	Developer interface {
		Develop(env *Env) ([]agents.Agent, error)
	}
	Reproducer interface {
		Reproduce(env *Env) ([]agents.Agent, error)
	}
	Consumer interface {
		Consume(env *Env) ([]agents.Agent, error)
	}
	Ager interface {
		AdvanceAge(env *Env) ([]agents.Agent, error)
	}
	Resetter interface {
		Reset(env *Env) ([]agents.Agent, error)
	}
)

// method resolves o on a, or returns nil when a lacks the capability.
func (o Operation) method(a agents.Agent) func(*Env) ([]agents.Agent, error) {
	switch o {
	case Move:
		if c, ok := a.(Mover); ok {
			return c.Move
		}
	case Grow:
		if c, ok := a.(Grower); ok {
			return c.Grow
		}
	case Survive:
		if c, ok := a.(Survivor); ok {
			return c.Survive
		}
	case Develop:
		if c, ok := a.(Developer); ok {
			return c.Develop
		}
	case Reproduce:
		if c, ok := a.(Reproducer); ok {
			return c.Reproduce
		}
	case Consume:
		if c, ok := a.(Consumer); ok {
			return c.Consume
		}
	case AdvanceAge:
		if c, ok := a.(Ager); ok {
			return c.AdvanceAge
		}
	case Reset:
		if c, ok := a.(Resetter); ok {
			return c.Reset
		}
	}
	return nil
}

// Supports reports whether a implements the capability of o.
func (o Operation) Supports(a agents.Agent) bool {
	return o.method(a) != nil
}
