// SPDX-License-Identifier: MIT

package agents

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fieldsim/space"
)

// Kind identifies an agent type (e.g. larva, adult). Kinds are handed out
// densely by a Registry.
type Kind uint16

// Agent is the minimal view the scheduler and storage have of an individual.
type Agent interface {
	Kind() Kind
	Location() space.Location
	Alive() bool
}

// Bin holds the agents of one location, by kind, in insertion order.
type Bin map[Kind][]Agent

// Len returns the number of agents in the bin across all kinds.
func (b Bin) Len() int {
	n := 0
	for _, as := range b {
		n += len(as)
	}
	return n
}

// Partition maps location keys of one level to their bins.
type Partition map[space.Location]Bin

// Agents returns the agents of kind filed under loc, or nil.
func (p Partition) Agents(loc space.Location, kind Kind) []Agent {
	return p[loc][kind]
}

// Registry maps kind names to dense Kind ids and back.
type Registry struct {
	names  []string
	byName map[string]Kind
}

// NewRegistry registers names in order, so the first name is Kind 0.
func NewRegistry(names ...string) (*Registry, error) {
	r := &Registry{byName: make(map[string]Kind, len(names))}
	for _, n := range names {
		if _, err := r.Register(n); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds name and returns its Kind.
func (r *Registry) Register(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 0, ErrEmptyName
	}
	if _, ok := r.byName[key]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateKind, name)
	}
	k := Kind(len(r.names))
	r.names = append(r.names, key)
	r.byName[key] = k
	return k, nil
}

// Lookup returns the Kind registered under name (case-insensitive).
func (r *Registry) Lookup(name string) (Kind, error) {
	k, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Name returns the registered name of k, or "kind(N)" when unknown.
func (r *Registry) Name(k Kind) string {
	if int(k) < len(r.names) {
		return r.names[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Kinds returns every registered Kind in registration order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.names))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int { return len(r.names) }
