// SPDX-License-Identifier: MIT

package insects

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/space"
)

// Kind names under which the models register.
const (
	LarvaName = "larva"
	AdultName = "adult"
)

// ErrNoHabitat indicates a Model without a Habitat.
var ErrNoHabitat = errors.New("insects: model requires a habitat")

// Params are the life-history constants shared by every individual.
type Params struct {
	GrowthRate      float64 `yaml:"growth_rate"`      // mass gained per grow at quality 1
	InitialMass     float64 `yaml:"initial_mass"`     // larval mass at hatching
	PupationMass    float64 `yaml:"pupation_mass"`    // mass at which a larva develops
	LarvalSurvival  float64 `yaml:"larval_survival"`  // per-call survival probability
	AdultSurvival   float64 `yaml:"adult_survival"`   // per-call survival probability
	MaxAdultAge     int     `yaml:"max_adult_age"`    // adults die after this many advance_age calls
	CannibalismRate float64 `yaml:"cannibalism_rate"` // chance a consume call eats a lighter larva
	Fecundity       int     `yaml:"fecundity"`        // eggs laid per mating
	MoveRadius      float64 `yaml:"move_radius"`      // adult flight distance on the field graph
	ResistanceCost  float64 `yaml:"resistance_cost"`  // growth penalty of RR
	Dominance       float64 `yaml:"dominance"`        // share of the penalty paid by SR
}

// DefaultParams returns a moderately growing, moderately fecund species.
func DefaultParams() Params {
	return Params{
		GrowthRate:      0.3,
		InitialMass:     0.1,
		PupationMass:    1.5,
		LarvalSurvival:  0.97,
		AdultSurvival:   0.9,
		MaxAdultAge:     10,
		CannibalismRate: 0.05,
		Fecundity:       4,
		MoveRadius:      2,
		ResistanceCost:  0.1,
		Dominance:       0.5,
	}
}

// Model is the read-only context every larva and adult refers to.
type Model struct {
	Larva   agents.Kind
	Adult   agents.Kind
	Params  Params
	Habitat *Habitat
}

// NewModel registers the larva and adult kinds in reg.
func NewModel(reg *agents.Registry, habitat *Habitat, p Params) (*Model, error) {
	if habitat == nil {
		return nil, ErrNoHabitat
	}
	m := &Model{Params: p, Habitat: habitat}
	var err error
	if m.Larva, err = lookupOrRegister(reg, LarvaName); err != nil {
		return nil, err
	}
	if m.Adult, err = lookupOrRegister(reg, AdultName); err != nil {
		return nil, err
	}
	return m, nil
}

func lookupOrRegister(reg *agents.Registry, name string) (agents.Kind, error) {
	if k, err := reg.Lookup(name); err == nil {
		return k, nil
	}
	return reg.Register(name)
}

// Prototypes returns one zero individual per kind, for schedule binding.
func (m *Model) Prototypes() map[agents.Kind]agents.Agent {
	return map[agents.Kind]agents.Agent{
		m.Larva: &Larva{model: m},
		m.Adult: &Adult{model: m},
	}
}

// Fitness is the relative growth multiplier of g.
func (m *Model) Fitness(g Genotype) float64 {
	switch g.Resistant() {
	case 0:
		return 1
	case 1:
		return 1 - m.Params.Dominance*m.Params.ResistanceCost
	default:
		return 1 - m.Params.ResistanceCost
	}
}

// newID draws a version 4 UUID from rng so seeded runs repeat their ids.
func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewLarva returns a hatchling at loc.
func (m *Model) NewLarva(loc space.Location, g Genotype, rng *rand.Rand) *Larva {
	return &Larva{
		id:       newID(rng),
		model:    m,
		loc:      loc,
		mass:     m.Params.InitialMass,
		genotype: g,
		alive:    true,
	}
}

// NewAdult returns an adult of random sex at the field vertex of loc.
func (m *Model) NewAdult(loc space.Location, g Genotype, mass float64, rng *rand.Rand) *Adult {
	return &Adult{
		id:       newID(rng),
		model:    m,
		loc:      loc.Prefix(1),
		mass:     mass,
		genotype: g,
		female:   rng.Intn(2) == 0,
		alive:    true,
	}
}

// Populate inserts count individuals of kind at random locations, with
// genotypes drawn at resistant allele frequency p.
func (m *Model) Populate(sp *space.Space, st agents.Storage, rng *rand.Rand, kind agents.Kind, count int, p float64) error {
	batch := make([]agents.Agent, 0, count)
	for i := 0; i < count; i++ {
		loc, err := sp.NewLocation(sp.Depth(), rng)
		if err != nil {
			return err
		}
		g := Draw(p, rng)
		switch kind {
		case m.Larva:
			batch = append(batch, m.NewLarva(loc, g, rng))
		case m.Adult:
			batch = append(batch, m.NewAdult(loc, g, m.Params.PupationMass, rng))
		default:
			return fmt.Errorf("insects: populate kind %d: %w", kind, agents.ErrUnknownKind)
		}
	}
	return st.Insert(batch...)
}

// pick returns a uniformly drawn element of xs, or the zero value when empty.
func pick[T any](xs []T, rng *rand.Rand) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	return xs[rng.Intn(len(xs))], true
}
