// SPDX-License-Identifier: MIT

package insects

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/fieldsim/gridgraph"
)

// Habitat assigns every field vertex a plant quality in [0, 1).
type Habitat struct {
	grid    *gridgraph.Grid
	quality []float64
}

// HabitatOptions shapes the noise field.
type HabitatOptions struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
}

// DefaultHabitatOptions returns three octaves at a field-scale frequency.
func DefaultHabitatOptions() HabitatOptions {
	return HabitatOptions{Octaves: 3, Frequency: 0.15, Persistence: 0.5}
}

// NewHabitat samples normalized simplex noise at every cell of grid.
func NewHabitat(grid *gridgraph.Grid, seed int64, opts HabitatOptions) *Habitat {
	noise := opensimplex.NewNormalized(seed)
	h := &Habitat{grid: grid, quality: make([]float64, grid.Order())}
	for v := range h.quality {
		r, c := grid.Coordinate(v)
		h.quality[v] = octaveNoise(noise, float64(c), float64(r), opts)
	}
	return h
}

// UniformHabitat gives every vertex of grid the same quality.
func UniformHabitat(grid *gridgraph.Grid, q float64) *Habitat {
	h := &Habitat{grid: grid, quality: make([]float64, grid.Order())}
	for v := range h.quality {
		h.quality[v] = q
	}
	return h
}

// octaveNoise layers opts.Octaves frequencies and renormalizes to [0, 1).
func octaveNoise(noise opensimplex.Noise, x, y float64, opts HabitatOptions) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	freq := opts.Frequency
	for i := 0; i < opts.Octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxVal += amplitude
		amplitude *= opts.Persistence
		freq *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// Quality returns the plant quality at field vertex v (0 outside the field).
func (h *Habitat) Quality(v int) float64 {
	if v < 0 || v >= len(h.quality) {
		return 0
	}
	return h.quality[v]
}

// Mean returns the average quality over the field.
func (h *Habitat) Mean() float64 {
	if len(h.quality) == 0 {
		return 0
	}
	sum := 0.0
	for _, q := range h.quality {
		sum += q
	}
	return sum / float64(len(h.quality))
}

// Patches returns the contiguous groups of field vertices with quality of at
// least threshold.
func (h *Habitat) Patches(threshold float64) [][]int {
	return h.grid.Patches(func(v int) bool { return h.quality[v] >= threshold })
}
