// SPDX-License-Identifier: MIT

package agents

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/fieldsim/space"
)

// Storage owns the live agents of a run.
type Storage interface {
	// Partition snapshots the agents reaching level, keyed by their Location
	// prefix of depth level+1.
	Partition(level int) Partition
	// Agents snapshots the agents of kind whose Location lies within loc.
	Agents(loc space.Location, kind Kind) []Agent
	// Moved tells the storage that a changed its Location, which was from.
	// Agents not filed at from are left alone.
	Moved(a Agent, from space.Location)
	// Insert adds agents in order.
	Insert(agents ...Agent) error
	// Compact drops agents that are no longer alive and returns how many.
	Compact() int
	// All snapshots every stored agent in insertion order.
	All() []Agent
	// Len returns the number of stored agents.
	Len() int
}

// Memory is a slice-backed Storage guarded by a RWMutex. It files every agent
// under each prefix of its Location, so Agents reads one bucket. Agents that
// move without calling Moved are dropped from lookups at their old place and
// found at the new one after the next Partition or Compact.
type Memory struct {
	mu     sync.RWMutex
	space  *space.Space
	agents []Agent
	index  map[space.Location]Bin
}

// MemoryOption configures a Memory storage.
type MemoryOption func(*Memory)

// WithSpace makes Insert reject agents whose Location is not part of s.
func WithSpace(s *space.Space) MemoryOption {
	if s == nil {
		panic("agents: WithSpace(nil)")
	}
	return func(m *Memory) { m.space = s }
}

// NewMemory returns an empty Memory storage.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{index: make(map[space.Location]Bin)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// file adds a under every prefix of its Location. Callers hold mu.
func (m *Memory) file(a Agent) {
	if m.index == nil {
		m.index = make(map[space.Location]Bin)
	}
	loc, kind := a.Location(), a.Kind()
	for d := 1; d <= loc.Depth(); d++ {
		key := loc.Prefix(d)
		bin := m.index[key]
		if bin == nil {
			bin = make(Bin)
			m.index[key] = bin
		}
		bin[kind] = append(bin[kind], a)
	}
}

// unfile removes a from every prefix of from and reports whether it was
// filed there. Callers hold mu.
func (m *Memory) unfile(a Agent, from space.Location) bool {
	kind, found := a.Kind(), false
	for d := 1; d <= from.Depth(); d++ {
		bin := m.index[from.Prefix(d)]
		list := bin[kind]
		for i, x := range list {
			if x == a {
				bin[kind] = append(list[:i], list[i+1:]...)
				found = true
				break
			}
		}
	}
	return found
}

// reindex rebuilds the index from current Locations. Callers hold mu.
func (m *Memory) reindex() {
	m.index = make(map[space.Location]Bin, len(m.index))
	for _, a := range m.agents {
		m.file(a)
	}
}

// Partition re-indexes the storage and returns a copy of the buckets at
// depth level+1.
func (m *Memory) Partition(level int) Partition {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reindex()
	p := make(Partition)
	depth := level + 1
	if depth < 1 {
		return p
	}
	for key, bin := range m.index {
		if key.Depth() != depth {
			continue
		}
		cp := make(Bin, len(bin))
		for k, list := range bin {
			if len(list) > 0 {
				cp[k] = append([]Agent(nil), list...)
			}
		}
		p[key] = cp
	}
	return p
}

func (m *Memory) Agents(loc space.Location, kind Kind) []Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := m.agents
	if loc.Depth() > 0 {
		candidates = m.index[loc][kind]
	}
	var out []Agent
	for _, a := range candidates {
		if a.Kind() == kind && loc.IsPrefixOf(a.Location()) {
			out = append(out, a)
		}
	}
	return out
}

func (m *Memory) Moved(a Agent, from space.Location) {
	if a == nil || from == a.Location() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unfile(a, from) {
		m.file(a)
	}
}

func (m *Memory) Insert(agents ...Agent) error {
	for i, a := range agents {
		if a == nil {
			return fmt.Errorf("agents: insert #%d: %w", i, ErrNilAgent)
		}
		if m.space != nil && !m.space.Contains(a.Location()) {
			return fmt.Errorf("agents: insert #%d at %s: %w", i, a.Location(), ErrOutsideSpace)
		}
	}

	m.mu.Lock()
	m.agents = append(m.agents, agents...)
	for _, a := range agents {
		m.file(a)
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Compact() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.agents[:0]
	for _, a := range m.agents {
		if a.Alive() {
			kept = append(kept, a)
		}
	}
	removed := len(m.agents) - len(kept)
	for i := len(kept); i < len(m.agents); i++ {
		m.agents[i] = nil
	}
	m.agents = kept
	m.reindex()
	return removed
}

func (m *Memory) All() []Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Agent, len(m.agents))
	copy(out, m.agents)
	return out
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.agents)
}

// Census counts stored agents by kind.
func Census(s Storage) map[Kind]int {
	out := make(map[Kind]int)
	for _, a := range s.All() {
		out[a.Kind()]++
	}
	return out
}
