package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	_, err := NewGrid(nil)
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]int{{}})
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, ErrRaggedGrid)

	_, err = NewGrid([][]int{{0, 1, 1}, {1, 1, 1}})
	require.ErrorIs(t, err, ErrOddDimension)

	src := [][]int{{0, 1}, {1, 1}}
	g, err := NewGrid(src)
	require.NoError(t, err)
	src[0][0] = 9
	assert.Equal(t, 0, g[0][0])
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 3, g.Solid())
}
