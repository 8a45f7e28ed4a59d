// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fieldsim/neighborhood"
	"github.com/katalvlaran/fieldsim/topology"
)

// Space is an immutable stack of graphs, level 0 being the coarsest.
type Space struct {
	levels []*topology.Graph
	keys   [][]Location // keys[i]: every Location of depth i+1, lexicographic
}

// New builds a Space over levels and enumerates the location catalogue.
func New(levels ...*topology.Graph) (*Space, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if len(levels) > MaxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, len(levels))
	}
	for i, g := range levels {
		if g == nil {
			return nil, fmt.Errorf("space: level %d: %w", i, topology.ErrNilGraph)
		}
	}

	s := &Space{levels: levels, keys: make([][]Location, len(levels))}
	prev := []Location{{}}
	for i, g := range levels {
		n := g.Order()
		cur := make([]Location, 0, len(prev)*n)
		for _, p := range prev {
			for v := 0; v < n; v++ {
				loc, _ := p.Extend(v) // depth checked above
				cur = append(cur, loc)
			}
		}
		s.keys[i] = cur
		prev = cur
	}

	return s, nil
}

// Depth returns the number of levels.
func (s *Space) Depth() int { return len(s.levels) }

// Graph returns the graph of level.
func (s *Space) Graph(level int) (*topology.Graph, error) {
	if level < 0 || level >= len(s.levels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, level, len(s.levels))
	}
	return s.levels[level], nil
}

// Keys returns the Locations that partition agents at level. The slice is
// shared and must not be modified.
func (s *Space) Keys(level int) ([]Location, error) {
	if level < 0 || level >= len(s.keys) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, level, len(s.keys))
	}
	return s.keys[level], nil
}

// Contains reports whether every vertex of loc exists at its level.
func (s *Space) Contains(loc Location) bool {
	if loc.Depth() > len(s.levels) {
		return false
	}
	for i := 0; i < loc.Depth(); i++ {
		if v := loc.Vertex(i); v < 0 || v >= s.levels[i].Order() {
			return false
		}
	}
	return true
}

func (s *Space) check(loc Location) error {
	if loc.Depth() == 0 || !s.Contains(loc) {
		return fmt.Errorf("%w: %s", ErrInvalidLocation, loc)
	}
	return nil
}

// Neighborhood returns the vertices of loc's level whose snapped distance
// from loc's deepest vertex falls within the query bounds.
func (s *Space) Neighborhood(loc Location, opts ...neighborhood.QueryOption) ([]int, error) {
	if err := s.check(loc); err != nil {
		return nil, err
	}
	return s.levels[loc.Level()].Neighbors(loc.Last(), opts...), nil
}

// NeighborLocations lifts Neighborhood back to Locations sharing loc's parent.
func (s *Space) NeighborLocations(loc Location, opts ...neighborhood.QueryOption) ([]Location, error) {
	vs, err := s.Neighborhood(loc, opts...)
	if err != nil {
		return nil, err
	}
	parent := loc.Parent()
	out := make([]Location, len(vs))
	for i, v := range vs {
		out[i], _ = parent.Extend(v) // parent is one level shallower than loc
	}
	return out, nil
}

// RandomVertex draws a uniform vertex of level.
func (s *Space) RandomVertex(level int, rng *rand.Rand) (int, error) {
	g, err := s.Graph(level)
	if err != nil {
		return 0, err
	}
	return rng.Intn(g.Order()), nil
}

// ExtendLocation appends a uniformly drawn vertex of the next deeper level.
func (s *Space) ExtendLocation(loc Location, rng *rand.Rand) (Location, error) {
	if loc.Depth() > 0 {
		if err := s.check(loc); err != nil {
			return Location{}, err
		}
	}
	v, err := s.RandomVertex(loc.Depth(), rng)
	if err != nil {
		return Location{}, err
	}
	return loc.Extend(v)
}

// NewLocation draws one vertex per level from the top down to depth.
func (s *Space) NewLocation(depth int, rng *rand.Rand) (Location, error) {
	if depth < 1 || depth > len(s.levels) {
		return Location{}, fmt.Errorf("%w: depth %d of %d", ErrLevelOutOfRange, depth, len(s.levels))
	}
	var loc Location
	var err error
	for loc.Depth() < depth {
		if loc, err = s.ExtendLocation(loc, rng); err != nil {
			return Location{}, err
		}
	}
	return loc, nil
}
