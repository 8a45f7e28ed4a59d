// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/insects"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
	"github.com/katalvlaran/fieldsim/topology"
)

func noop() error { return nil }

// Registry returns a registry holding the scenario kinds in order.
func (s *Scenario) Registry() (*agents.Registry, error) {
	return agents.NewRegistry(s.Kinds...)
}

// OpenStore opens the configured topology cache and returns its closer.
// Without a cache the store is nil, so every grid is built.
func (s *Scenario) OpenStore() (topology.Store, func() error, error) {
	switch {
	case s.Cache.SQLite != "":
		st, err := topology.OpenSQLiteStore(s.Cache.SQLite)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	case s.Cache.Dir != "":
		st, err := topology.NewFileStore(s.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return st, noop, nil
	}
	return nil, noop, nil
}

// BuildSpace loads every level through store, coarsest first, and stacks
// them into a Space.
func (s *Scenario) BuildSpace(ctx context.Context, store topology.Store, opts ...topology.Option) (*space.Space, []*gridgraph.Grid, error) {
	if s.Workers > 0 {
		opts = append(opts, topology.WithWorkers(s.Workers))
	}

	grids := make([]*gridgraph.Grid, len(s.Space))
	graphs := make([]*topology.Graph, len(s.Space))
	for i, g := range s.Space {
		spec := topology.Spec{Kind: g.Kind, Rows: g.Rows, Cols: g.Cols, Torus: g.Torus}
		grid, err := gridgraph.Load(ctx, store, spec, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("space[%d]: %w", i, err)
		}
		grids[i], graphs[i] = grid, grid.Graph
	}

	sp, err := space.New(graphs...)
	if err != nil {
		return nil, nil, err
	}
	return sp, grids, nil
}

// BuildHabitat returns the quality field over the field grid.
func (s *Scenario) BuildHabitat(field *gridgraph.Grid) *insects.Habitat {
	if s.Habitat.Uniform != nil {
		return insects.UniformHabitat(field, *s.Habitat.Uniform)
	}
	return insects.NewHabitat(field, s.Seed, s.Habitat.HabitatOptions)
}

// BuildSchedule resolves kind names through reg and builds one Step per
// schedule entry.
func (s *Scenario) BuildSchedule(reg *agents.Registry, logger *slog.Logger) (*schedule.Schedule, error) {
	steps := make([]*schedule.Step, 0, len(s.Schedule))
	for i, st := range s.Schedule {
		step, err := s.buildStep(reg, logger, st)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		steps = append(steps, step)
	}
	return schedule.New(steps...), nil
}

func (s *Scenario) buildStep(reg *agents.Registry, logger *slog.Logger, st Step) (*schedule.Step, error) {
	batches := make([]schedule.Actions, 0, len(st.Agents))
	for _, b := range st.Agents {
		kind, err := reg.Lookup(b.Kind)
		if err != nil {
			return nil, err
		}
		acts, err := schedule.NewActions(kind, b.Actions...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Kind, err)
		}
		batches = append(batches, acts)
	}

	opts := []schedule.StepOption{schedule.WithLevel(st.Level)}
	if st.Number != nil {
		opts = append(opts, schedule.WithRepeat(*st.Number))
	}
	if st.Shuffle {
		opts = append(opts, schedule.WithShuffle())
	}
	if st.ParallelByAgent {
		opts = append(opts, schedule.WithParallelByAgent())
	}
	if st.ParallelByLocation {
		opts = append(opts, schedule.WithParallelByLocation())
	}
	if s.Workers > 0 {
		opts = append(opts, schedule.WithWorkers(s.Workers))
	}
	if logger != nil {
		opts = append(opts, schedule.WithLogger(logger))
	}

	return schedule.NewStep(batches, opts...)
}

// Populate seeds the configured population into st.
func (s *Scenario) Populate(reg *agents.Registry, m *insects.Model, sp *space.Space, st agents.Storage, rng *rand.Rand) error {
	for i, p := range s.Population {
		kind, err := reg.Lookup(p.Kind)
		if err != nil {
			return fmt.Errorf("population[%d]: %w", i, err)
		}
		if err = m.Populate(sp, st, rng, kind, p.Count, p.Resistance); err != nil {
			return fmt.Errorf("population[%d]: %w", i, err)
		}
	}
	return nil
}
