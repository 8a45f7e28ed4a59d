// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fieldsim/gridgraph"
)

// habitat marks suitable cells (1) on a 3×4 lattice:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
var habitat = []int{
	0, 1, 1, 0,
	1, 1, 0, 0,
	0, 0, 1, 1,
}

func suitable(v int) bool { return habitat[v] == 1 }

func TestPatches_Open(t *testing.T) {
	g := mustGrid(t, gridgraph.Square, 3, 4, false)

	assert.Equal(t, [][]int{{1, 2, 4, 5}, {10, 11}}, g.Patches(suitable))
}

func TestPatches_TorusJoinsAcrossSeam(t *testing.T) {
	g := mustGrid(t, gridgraph.Square, 3, 4, true)

	// 10 wraps vertically onto 2.
	assert.Equal(t, [][]int{{1, 2, 4, 5, 10, 11}}, g.Patches(suitable))
}

func TestPatches_MooreTouchesCorners(t *testing.T) {
	g := mustGrid(t, gridgraph.Moore, 3, 4, false)

	// 5 and 10 touch diagonally.
	assert.Equal(t, [][]int{{1, 2, 4, 5, 10, 11}}, g.Patches(suitable))
}

func TestPatches_Empty(t *testing.T) {
	g := mustGrid(t, gridgraph.Square, 2, 2, false)

	assert.Nil(t, g.Patches(func(int) bool { return false }))
	assert.Len(t, g.Patches(func(int) bool { return true }), 1)
}
