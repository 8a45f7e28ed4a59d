// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/space"
)

// Env is what an action sees besides its own agent. Worker goroutines get a
// shallow copy carrying their own Rand.
type Env struct {
	Space   *space.Space
	Storage agents.Storage
	Rand    *rand.Rand
	Tick    int
	Logger  *slog.Logger
}

func (e *Env) valid() bool {
	return e != nil && e.Space != nil && e.Storage != nil && e.Rand != nil
}

// fork returns a copy of e drawing from rng.
func (e *Env) fork(rng *rand.Rand) *Env {
	c := *e
	c.Rand = rng
	return &c
}

// Action is one Operation with its declared Scope.
type Action struct {
	Op    Operation
	Scope Scope
}

// ActionOption configures an Action.
type ActionOption func(*Action)

// Local declares that the action touches only its own agent, overriding the
// operation's default scope.
func Local() ActionOption {
	return func(a *Action) { a.Scope = ScopeSelf }
}

// NewAction returns an Action for op with op's default scope.
func NewAction(op Operation, opts ...ActionOption) Action {
	a := Action{Op: op, Scope: op.DefaultScope()}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// ParseAction accepts "op" or "op:local".
func ParseAction(s string) (Action, error) {
	name, suffix, hasSuffix := strings.Cut(s, ":")
	op, err := ParseOperation(name)
	if err != nil {
		return Action{}, err
	}
	if !hasSuffix {
		return NewAction(op), nil
	}
	if strings.TrimSpace(strings.ToLower(suffix)) != "local" {
		return Action{}, fmt.Errorf("%w: scope %q in %q", ErrUnknownOperation, suffix, s)
	}
	return NewAction(op, Local()), nil
}

// String renders the action as it is configured.
func (a Action) String() string {
	if a.Scope == ScopeSelf && a.Op.DefaultScope() != ScopeSelf {
		return a.Op.String() + ":local"
	}
	return a.Op.String()
}

// Perform invokes the action on agent and returns the agents it created.
func (a Action) Perform(agent agents.Agent, env *Env) ([]agents.Agent, error) {
	fn := a.Op.method(agent)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s on %T", ErrUnsupportedOperation, a.Op, agent)
	}
	out, err := fn(env)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", a.Op, agent.Location(), err)
	}
	return out, nil
}

// Actions is the ordered action list run on every agent of Kind.
type Actions struct {
	Kind agents.Kind
	List []Action
}

// NewActions builds the batch for kind from operation names.
func NewActions(kind agents.Kind, names ...string) (Actions, error) {
	as := Actions{Kind: kind, List: make([]Action, 0, len(names))}
	for _, n := range names {
		a, err := ParseAction(n)
		if err != nil {
			return Actions{}, err
		}
		as.List = append(as.List, a)
	}
	return as, nil
}

// Perform runs the list left to right on agent, concatenating created agents.
// It stops early, without error, once agent is no longer alive.
func (as Actions) Perform(agent agents.Agent, env *Env) ([]agents.Agent, error) {
	var out []agents.Agent
	for _, a := range as.List {
		if !agent.Alive() {
			break
		}
		created, err := a.Perform(agent, env)
		if err != nil {
			return nil, err
		}
		out = append(out, created...)
	}
	return out, nil
}

// SelfScoped reports whether every action only touches its own agent.
func (as Actions) SelfScoped() bool {
	for _, a := range as.List {
		if a.Scope != ScopeSelf {
			return false
		}
	}
	return true
}

// Supports returns the first operation of the list agent cannot perform.
func (as Actions) Supports(agent agents.Agent) error {
	for _, a := range as.List {
		if !a.Op.Supports(agent) {
			return fmt.Errorf("%w: %s on %T", ErrUnsupportedOperation, a.Op, agent)
		}
	}
	return nil
}
