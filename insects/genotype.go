// SPDX-License-Identifier: MIT

package insects

import (
	"fmt"
	"math/rand"
)

// Allele is one copy of the resistance locus.
type Allele uint8

const (
	Susceptible Allele = iota
	Resistant
)

// Genotype is an unordered allele pair, stored sorted.
type Genotype [2]Allele

// Common genotypes.
var (
	SS = Genotype{Susceptible, Susceptible}
	SR = Genotype{Susceptible, Resistant}
	RR = Genotype{Resistant, Resistant}
)

// NewGenotype returns the sorted pair (a, b).
func NewGenotype(a, b Allele) Genotype {
	if a > b {
		a, b = b, a
	}
	return Genotype{a, b}
}

// ParseGenotype accepts "SS", "SR", "RS" or "RR".
func ParseGenotype(s string) (Genotype, error) {
	if len(s) != 2 {
		return Genotype{}, fmt.Errorf("insects: genotype %q", s)
	}
	var out [2]Allele
	for i := 0; i < 2; i++ {
		switch s[i] {
		case 'S', 's':
			out[i] = Susceptible
		case 'R', 'r':
			out[i] = Resistant
		default:
			return Genotype{}, fmt.Errorf("insects: genotype %q", s)
		}
	}
	return NewGenotype(out[0], out[1]), nil
}

// Resistant returns how many resistant alleles g carries.
func (g Genotype) Resistant() int { return int(g[0]) + int(g[1]) }

// String renders g as "SS", "SR" or "RR".
func (g Genotype) String() string {
	b := [2]byte{'S', 'S'}
	for i, a := range g {
		if a == Resistant {
			b[i] = 'R'
		}
	}
	return string(b[:])
}

// Cross draws one allele from each parent.
func Cross(mother, father Genotype, rng *rand.Rand) Genotype {
	return NewGenotype(mother[rng.Intn(2)], father[rng.Intn(2)])
}

// Draw samples a Hardy-Weinberg genotype for resistant allele frequency p.
func Draw(p float64, rng *rand.Rand) Genotype {
	pick := func() Allele {
		if rng.Float64() < p {
			return Resistant
		}
		return Susceptible
	}
	return NewGenotype(pick(), pick())
}
