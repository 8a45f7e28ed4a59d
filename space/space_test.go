// SPDX-License-Identifier: MIT

package space_test

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/neighborhood"
	"github.com/katalvlaran/fieldsim/space"
	"github.com/katalvlaran/fieldsim/topology"
)

var quiet = topology.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// fieldAndLeaves returns a 2×2 square field of plants, each with a row of
// three leaves.
func fieldAndLeaves(t *testing.T) *space.Space {
	t.Helper()
	field, err := gridgraph.New(gridgraph.Square, 2, 2, false, quiet)
	require.NoError(t, err)
	leaves, err := gridgraph.New(gridgraph.Square, 1, 3, false, quiet)
	require.NoError(t, err)

	s, err := space.New(field.Graph, leaves.Graph)
	require.NoError(t, err)
	return s
}

func TestNew_Errors(t *testing.T) {
	_, err := space.New()
	require.ErrorIs(t, err, space.ErrNoLevels)

	_, err = space.New(nil)
	require.ErrorIs(t, err, topology.ErrNilGraph)

	g, err := gridgraph.New(gridgraph.Square, 1, 1, false, quiet)
	require.NoError(t, err)
	_, err = space.New(g.Graph, g.Graph, g.Graph, g.Graph, g.Graph)
	require.ErrorIs(t, err, space.ErrTooDeep)
}

func TestKeys(t *testing.T) {
	s := fieldAndLeaves(t)
	assert.Equal(t, 2, s.Depth())

	top, err := s.Keys(0)
	require.NoError(t, err)
	assert.Equal(t, []space.Location{space.At(0), space.At(1), space.At(2), space.At(3)}, top)

	deep, err := s.Keys(1)
	require.NoError(t, err)
	require.Len(t, deep, 12)
	assert.Equal(t, space.At(0, 0), deep[0])
	assert.Equal(t, space.At(1, 0), deep[3])
	assert.Equal(t, space.At(3, 2), deep[11])

	_, err = s.Keys(2)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
	_, err = s.Graph(-1)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
}

func TestNeighborhood(t *testing.T) {
	s := fieldAndLeaves(t)

	vs, err := s.Neighborhood(space.At(0), neighborhood.WithRadius(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, vs)

	vs, err = s.Neighborhood(space.At(2, 1), neighborhood.WithRadius(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, vs)

	locs, err := s.NeighborLocations(space.At(3, 0), neighborhood.WithUpper(1))
	require.NoError(t, err)
	assert.Equal(t, []space.Location{space.At(3, 0), space.At(3, 1)}, locs)

	for _, bad := range []space.Location{{}, space.At(7), space.At(0, 3), space.At(0, 0, 0)} {
		_, err = s.Neighborhood(bad)
		require.ErrorIs(t, err, space.ErrInvalidLocation, bad.String())
	}
}

func TestRandomLocations(t *testing.T) {
	s := fieldAndLeaves(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		loc, err := s.NewLocation(2, rng)
		require.NoError(t, err)
		require.Equal(t, 2, loc.Depth())
		require.True(t, s.Contains(loc), loc.String())

		ext, err := s.ExtendLocation(loc.Parent(), rng)
		require.NoError(t, err)
		require.True(t, loc.Parent().IsPrefixOf(ext))
		require.True(t, s.Contains(ext))
	}

	_, err := s.NewLocation(0, rng)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
	_, err = s.NewLocation(3, rng)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
	_, err = s.ExtendLocation(space.At(1, 1), rng)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
	_, err = s.ExtendLocation(space.At(9), rng)
	require.ErrorIs(t, err, space.ErrInvalidLocation)
}

func TestRandomLocations_Seeded(t *testing.T) {
	s := fieldAndLeaves(t)
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		la, err := s.NewLocation(2, a)
		require.NoError(t, err)
		lb, err := s.NewLocation(2, b)
		require.NoError(t, err)
		require.Equal(t, la, lb)
	}
}
