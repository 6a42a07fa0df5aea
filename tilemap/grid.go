package tilemap

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid    = errors.New("tilemap: grid has no cells")
	ErrRaggedGrid   = errors.New("tilemap: grid rows differ in length")
	ErrOddDimension = errors.New("tilemap: grid dimensions must be even")
)

// Grid is a row-major matrix of tile codes. Row 0 is the top of the map,
// 0 is empty and any other code is solid.
type Grid [][]int

// NewGrid validates rows loaded from a level source and returns them as a Grid.
// The rows are copied so later edits by the caller cannot reach the map.
func NewGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := make(Grid, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), cols)
		}
		g[i] = append([]int(nil), row...)
	}
	if len(rows)%2 != 0 || cols%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddDimension, len(rows), cols)
	}
	return g, nil
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Solid reports the number of nonzero cells.
func (g Grid) Solid() int {
	n := 0
	for _, row := range g {
		for _, code := range row {
			if code != 0 {
				n++
			}
		}
	}
	return n
}
