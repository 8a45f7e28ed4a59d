// SPDX-License-Identifier: MIT

package insects

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/neighborhood"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
)

// Larva feeds and grows on a leaf until it develops into an Adult.
type Larva struct {
	id       uuid.UUID
	model    *Model
	loc      space.Location
	age      int
	mass     float64
	genotype Genotype
	alive    bool
}

func (l *Larva) Kind() agents.Kind        { return l.model.Larva }
func (l *Larva) Location() space.Location { return l.loc }
func (l *Larva) Alive() bool              { return l.alive }

func (l *Larva) ID() uuid.UUID      { return l.id }
func (l *Larva) Age() int           { return l.age }
func (l *Larva) Mass() float64      { return l.mass }
func (l *Larva) Genotype() Genotype { return l.genotype }

// Genome renders the genotype for export.
func (l *Larva) Genome() string { return l.genotype.String() }

// Grow adds mass in proportion to plant quality and genotype fitness.
func (l *Larva) Grow(*schedule.Env) ([]agents.Agent, error) {
	q := l.model.Habitat.Quality(l.loc.Vertex(0))
	l.mass += l.model.Params.GrowthRate * q * l.model.Fitness(l.genotype)
	return nil, nil
}

// Consume may eat one lighter larva sharing the leaf, absorbing half its mass.
func (l *Larva) Consume(env *schedule.Env) ([]agents.Agent, error) {
	if env.Rand.Float64() >= l.model.Params.CannibalismRate {
		return nil, nil
	}
	var prey []*Larva
	for _, a := range env.Storage.Agents(l.loc, l.model.Larva) {
		o, ok := a.(*Larva)
		if ok && o != l && o.alive && o.loc == l.loc && o.mass < l.mass {
			prey = append(prey, o)
		}
	}
	if victim, ok := pick(prey, env.Rand); ok {
		victim.alive = false
		l.mass += victim.mass / 2
	}
	return nil, nil
}

// Develop turns a larva at PupationMass into an Adult on the same plant.
func (l *Larva) Develop(env *schedule.Env) ([]agents.Agent, error) {
	if l.mass < l.model.Params.PupationMass {
		return nil, nil
	}
	l.alive = false
	return []agents.Agent{l.model.NewAdult(l.loc, l.genotype, l.mass, env.Rand)}, nil
}

// Survive applies the per-call larval survival probability.
func (l *Larva) Survive(env *schedule.Env) ([]agents.Agent, error) {
	if env.Rand.Float64() >= l.model.Params.LarvalSurvival {
		l.alive = false
	}
	return nil, nil
}

// AdvanceAge counts one more tick of life.
func (l *Larva) AdvanceAge(*schedule.Env) ([]agents.Agent, error) {
	l.age++
	return nil, nil
}

// Move crawls to an adjacent leaf of the same plant. Larvae on a
// single-level space stay put.
func (l *Larva) Move(env *schedule.Env) ([]agents.Agent, error) {
	if l.loc.Depth() < 2 {
		return nil, nil
	}
	locs, err := env.Space.NeighborLocations(l.loc, neighborhood.WithRadius(1, 1))
	if err != nil {
		return nil, err
	}
	if next, ok := pick(locs, env.Rand); ok {
		from := l.loc
		l.loc = next
		env.Storage.Moved(l, from)
	}
	return nil, nil
}
