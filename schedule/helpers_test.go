// SPDX-License-Identifier: MIT

package schedule_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
	"github.com/katalvlaran/fieldsim/topology"
)

const (
	critterKind agents.Kind = iota
	grazerKind
)

var (
	discard   = slog.New(slog.NewTextHandler(io.Discard, nil))
	errBoom   = errors.New("boom")
	quietStep = schedule.WithLogger(discard)
)

// critter implements every capability. It only mutates itself except in
// Consume, which kills the other critters sharing its location.
type critter struct {
	id     int
	parent int
	loc    space.Location
	alive  bool
	age    int
	fail   bool
	doomed bool
}

func (c *critter) Kind() agents.Kind        { return critterKind }
func (c *critter) Location() space.Location { return c.loc }
func (c *critter) Alive() bool              { return c.alive }

func (c *critter) AdvanceAge(*schedule.Env) ([]agents.Agent, error) {
	c.age++
	return nil, nil
}

func (c *critter) Reproduce(*schedule.Env) ([]agents.Agent, error) {
	return []agents.Agent{&critter{id: -1, parent: c.id, loc: c.loc, alive: true}}, nil
}

func (c *critter) Survive(*schedule.Env) ([]agents.Agent, error) {
	if c.doomed {
		c.alive = false
	}
	return nil, nil
}

func (c *critter) Grow(*schedule.Env) ([]agents.Agent, error) {
	if c.fail {
		return nil, errBoom
	}
	return nil, nil
}

func (c *critter) Develop(*schedule.Env) ([]agents.Agent, error) { return nil, nil }
func (c *critter) Reset(*schedule.Env) ([]agents.Agent, error)   { return nil, nil }

func (c *critter) Consume(env *schedule.Env) ([]agents.Agent, error) {
	for _, a := range env.Storage.Agents(c.loc, critterKind) {
		if other := a.(*critter); other != c {
			other.alive = false
		}
	}
	return nil, nil
}

func (c *critter) Move(env *schedule.Env) ([]agents.Agent, error) {
	locs, err := env.Space.NeighborLocations(c.loc)
	if err != nil {
		return nil, err
	}
	from := c.loc
	c.loc = locs[env.Rand.Intn(len(locs))]
	env.Storage.Moved(c, from)
	return nil, nil
}

// grazer only ages.
type grazer struct{ loc space.Location }

func (g *grazer) Kind() agents.Kind        { return grazerKind }
func (g *grazer) Location() space.Location { return g.loc }
func (g *grazer) Alive() bool              { return true }

func (g *grazer) AdvanceAge(*schedule.Env) ([]agents.Agent, error) { return nil, nil }

// field returns a 2×2 square field whose vertices each hold a row of two leaves.
func field(t *testing.T) *space.Space {
	t.Helper()
	quiet := topology.WithLogger(discard)
	f, err := gridgraph.New(gridgraph.Square, 2, 2, false, quiet)
	require.NoError(t, err)
	l, err := gridgraph.New(gridgraph.Square, 1, 2, false, quiet)
	require.NoError(t, err)
	sp, err := space.New(f.Graph, l.Graph)
	require.NoError(t, err)
	return sp
}

// populate spreads n critters round-robin over the field vertices.
func populate(t *testing.T, n int) (*agents.Memory, []*critter) {
	t.Helper()
	m := agents.NewMemory()
	cs := make([]*critter, n)
	for i := range cs {
		cs[i] = &critter{id: i, loc: space.At(i%4, i%2), alive: true}
		require.NoError(t, m.Insert(cs[i]))
	}
	return m, cs
}

func newEnv(sp *space.Space, st agents.Storage, seed int64) *schedule.Env {
	return &schedule.Env{Space: sp, Storage: st, Rand: schedule.NewRand(seed), Logger: discard}
}

func batch(t *testing.T, kind agents.Kind, ops ...string) schedule.Actions {
	t.Helper()
	as, err := schedule.NewActions(kind, ops...)
	require.NoError(t, err)
	return as
}

func step(t *testing.T, batches []schedule.Actions, opts ...schedule.StepOption) *schedule.Step {
	t.Helper()
	s, err := schedule.NewStep(batches, append([]schedule.StepOption{quietStep}, opts...)...)
	require.NoError(t, err)
	return s
}

func parents(created []agents.Agent) []int {
	out := make([]int, len(created))
	for i, a := range created {
		out[i] = a.(*critter).parent
	}
	return out
}
