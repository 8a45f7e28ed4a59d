// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fieldsim/insects"
)

// Scenario is one decoded scenario file.
type Scenario struct {
	Seed       int64          `yaml:"seed"`
	Ticks      int            `yaml:"ticks"`
	Workers    int            `yaml:"workers"`
	Space      []Grid         `yaml:"space"`
	Kinds      []string       `yaml:"kinds"`
	Schedule   []Step         `yaml:"schedule"`
	Population []Population   `yaml:"population"`
	Model      insects.Params `yaml:"model"`
	Habitat    Habitat        `yaml:"habitat"`
	Cache      Cache          `yaml:"cache"`
	Output     Output         `yaml:"output"`
}

// Grid describes one space level.
type Grid struct {
	Kind  string `yaml:"kind"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Torus bool   `yaml:"torus"`
}

// Step describes one schedule step.
type Step struct {
	Agents             []Batch `yaml:"agents"`
	Number             *int    `yaml:"number"`
	Shuffle            bool    `yaml:"shuffle"`
	ParallelByAgent    bool    `yaml:"parallel_by_agent"`
	ParallelByLocation bool    `yaml:"parallel_by_location"`
	Level              int     `yaml:"level"`
}

// Batch is the action list of one agent kind within a step.
type Batch struct {
	Kind    string   `yaml:"kind"`
	Actions []string `yaml:"actions"`
}

// Population seeds count agents of kind; resistance is the R allele frequency.
type Population struct {
	Kind       string  `yaml:"kind"`
	Count      int     `yaml:"count"`
	Resistance float64 `yaml:"resistance"`
}

// Habitat shapes the plant quality field on the coarsest level.
type Habitat struct {
	insects.HabitatOptions `yaml:",inline"`

	// Uniform, when set, replaces the noise field with a constant quality.
	Uniform *float64 `yaml:"uniform"`
	// Threshold separates good plants from poor ones in patch reports.
	Threshold float64 `yaml:"threshold"`
}

// Cache locates the topology cache; SQLite wins over Dir when both are set.
type Cache struct {
	Dir    string `yaml:"dir"`
	SQLite string `yaml:"sqlite"`
}

// Output locates the census export.
type Output struct {
	SQLite      string `yaml:"sqlite"`
	Level       int    `yaml:"level"`
	Individuals bool   `yaml:"individuals"`
}

// Default returns a scenario with every optional field at its default.
func Default() *Scenario {
	return &Scenario{
		Seed:    1,
		Ticks:   10,
		Model:   insects.DefaultParams(),
		Habitat: Habitat{HabitatOptions: insects.DefaultHabitatOptions(), Threshold: 0.5},
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scenario from r over Default, rejecting unknown keys, and
// validates it.
func Decode(r io.Reader) (*Scenario, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the values option constructors would otherwise panic on.
func (s *Scenario) Validate() error {
	if len(s.Space) == 0 {
		return ErrNoSpace
	}
	if len(s.Schedule) == 0 {
		return ErrNoSchedule
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: ticks %d", ErrInvalid, s.Ticks)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, s.Workers)
	}
	for i, st := range s.Schedule {
		if st.Number != nil && *st.Number < 0 {
			return fmt.Errorf("%w: schedule[%d] number %d", ErrInvalid, i, *st.Number)
		}
		if st.Level < 0 {
			return fmt.Errorf("%w: schedule[%d] level %d", ErrInvalid, i, st.Level)
		}
	}
	for i, p := range s.Population {
		if p.Count < 0 {
			return fmt.Errorf("%w: population[%d] count %d", ErrInvalid, i, p.Count)
		}
		if p.Resistance < 0 || p.Resistance > 1 {
			return fmt.Errorf("%w: population[%d] resistance %g", ErrInvalid, i, p.Resistance)
		}
	}
	if s.Output.Level < 0 {
		return fmt.Errorf("%w: output level %d", ErrInvalid, s.Output.Level)
	}
	return nil
}
