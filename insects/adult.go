// SPDX-License-Identifier: MIT

package insects

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/neighborhood"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
)

// Adult flies between plants and mates.
type Adult struct {
	id       uuid.UUID
	model    *Model
	loc      space.Location
	age      int
	mass     float64
	genotype Genotype
	female   bool
	mated    bool
	alive    bool
}

func (a *Adult) Kind() agents.Kind        { return a.model.Adult }
func (a *Adult) Location() space.Location { return a.loc }
func (a *Adult) Alive() bool              { return a.alive }

func (a *Adult) ID() uuid.UUID      { return a.id }
func (a *Adult) Age() int           { return a.age }
func (a *Adult) Mass() float64      { return a.mass }
func (a *Adult) Genotype() Genotype { return a.genotype }
func (a *Adult) Female() bool       { return a.female }
func (a *Adult) Mated() bool        { return a.mated }

// Genome renders the genotype for export.
func (a *Adult) Genome() string { return a.genotype.String() }

// Move flies to a random plant within MoveRadius, possibly staying.
func (a *Adult) Move(env *schedule.Env) ([]agents.Agent, error) {
	locs, err := env.Space.NeighborLocations(a.loc, neighborhood.WithUpper(a.model.Params.MoveRadius))
	if err != nil {
		return nil, err
	}
	if next, ok := pick(locs, env.Rand); ok {
		from := a.loc
		a.loc = next
		env.Storage.Moved(a, from)
	}
	return nil, nil
}

// Reproduce lets an unmated female pair with a random male on her plant and
// lay Fecundity eggs, each on a random leaf of that plant.
func (a *Adult) Reproduce(env *schedule.Env) ([]agents.Agent, error) {
	if !a.female || a.mated {
		return nil, nil
	}
	var males []*Adult
	for _, o := range env.Storage.Agents(a.loc, a.model.Adult) {
		m, ok := o.(*Adult)
		if ok && !m.female && m.alive && m.loc == a.loc {
			males = append(males, m)
		}
	}
	father, ok := pick(males, env.Rand)
	if !ok {
		return nil, nil
	}
	a.mated = true

	eggs := make([]agents.Agent, 0, a.model.Params.Fecundity)
	for i := 0; i < a.model.Params.Fecundity; i++ {
		loc := a.loc
		for loc.Depth() < env.Space.Depth() {
			var err error
			if loc, err = env.Space.ExtendLocation(loc, env.Rand); err != nil {
				return nil, err
			}
		}
		eggs = append(eggs, a.model.NewLarva(loc, Cross(a.genotype, father.genotype, env.Rand), env.Rand))
	}
	return eggs, nil
}

// Survive applies the per-call adult survival probability and the age cap.
func (a *Adult) Survive(env *schedule.Env) ([]agents.Agent, error) {
	if a.age >= a.model.Params.MaxAdultAge || env.Rand.Float64() >= a.model.Params.AdultSurvival {
		a.alive = false
	}
	return nil, nil
}

// AdvanceAge counts one more tick of life.
func (a *Adult) AdvanceAge(*schedule.Env) ([]agents.Agent, error) {
	a.age++
	return nil, nil
}

// Reset clears the mated flag so a female can mate again next tick.
func (a *Adult) Reset(*schedule.Env) ([]agents.Agent, error) {
	a.mated = false
	return nil, nil
}
