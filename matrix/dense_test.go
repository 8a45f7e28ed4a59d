// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsim/matrix"
)

func TestNewDense(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 1}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%v", dims)
	}

	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
}

func TestDense_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrIndexOutOfBounds)
	assert.Contains(t, m.Set(0, -1, 1).Error(), "Dense.Set(0,-1) on 2x2")
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.89, v)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 1))
	v, _ = m.At(1, 2)
	assert.Equal(t, 7.89, v)
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 7.89]\n", m.String())
}
