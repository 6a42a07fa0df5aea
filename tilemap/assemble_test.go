package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	for c := range g[rows-1] {
		g[rows-1][c] = 1
	}
	return g
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := NewAssembler(Viewport{Width: 1920, Height: 1080}, 10)
	require.NoError(t, err)
	return a
}

func TestNewAssemblerRequiresViewport(t *testing.T) {
	_, err := NewAssembler(Viewport{}, 10)
	require.ErrorIs(t, err, ErrNoViewport)

	_, err = NewAssembler(Viewport{Width: 800, Height: 0}, 10)
	require.ErrorIs(t, err, ErrNoViewport)

	_, err = NewAssembler(Viewport{Width: 800, Height: 600}, 0)
	require.Error(t, err)
}

func TestUnitSize(t *testing.T) {
	a := newTestAssembler(t)
	assert.Equal(t, UnitSize{W: 16, H: 9}, a.UnitSize(floorGrid(12, 12)))
	assert.Equal(t, UnitSize{W: 8, H: 9}, a.UnitSize(floorGrid(12, 24)))
}

func TestAssembleFloorGrid(t *testing.T) {
	a := newTestAssembler(t)
	layout := a.Assemble(floorGrid(12, 12))

	require.Len(t, layout.Tiles, 1, "a solid row must compact into one collider")
	floor := layout.Tiles[0]
	require.NotNil(t, floor.Span)
	assert.Equal(t, Span{Row: 11, Start: 0, Len: 12}, *floor.Span)
	assert.InDelta(t, 0, floor.Collider.X, 1e-9)
	assert.InDelta(t, -49.5, floor.Collider.Y, 1e-9)
	assert.InDelta(t, 96, floor.Collider.HalfW, 1e-9)
	assert.InDelta(t, 4.5, floor.Collider.HalfH, 1e-9)
	assert.Zero(t, floor.Collider.Friction)

	require.Len(t, layout.Boundaries, 3)
	sides := map[Side]Collider{}
	for _, b := range layout.Boundaries {
		sides[b.Side] = b.Collider
	}
	assert.Len(t, sides, 3)
	assert.Equal(t, NewCollider(-97, 0, 1, 54), sides[SideLeft])
	assert.Equal(t, NewCollider(97, 0, 1, 54), sides[SideRight])
	assert.Equal(t, NewCollider(0, 55, 98, 1), sides[SideTop])
	assert.Len(t, layout.All(), 4)
}

func TestAssembleSpritesMatchColliders(t *testing.T) {
	a := newTestAssembler(t)
	g := Grid{
		{1, 0, 0, 0, 0, 1},
		{0, 1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1},
	}
	layout := a.Assemble(g)
	require.Len(t, layout.Tiles, 5)
	for _, p := range layout.All() {
		w, h := p.Collider.Size()
		assert.Equal(t, w, p.Sprite.W)
		assert.Equal(t, h, p.Sprite.H)
		assert.Zero(t, p.Collider.Friction)
	}
	for _, p := range layout.Tiles {
		assert.True(t, p.Sprite.Visible)
	}
}

func TestAssemblePlacesSpansOnCells(t *testing.T) {
	a, err := NewAssembler(Viewport{Width: 400, Height: 400}, 10)
	require.NoError(t, err)
	// 4x4 grid of 10x10 world-unit cells spanning [-20,20] on both axes
	g := Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	}
	layout := a.Assemble(g)
	require.Len(t, layout.Tiles, 2)

	topLeft := layout.Tiles[0].Collider
	assert.InDelta(t, -15, topLeft.X, 1e-9)
	assert.InDelta(t, 15, topLeft.Y, 1e-9)
	assert.InDelta(t, 5, topLeft.HalfW, 1e-9)

	right := layout.Tiles[1].Collider
	assert.InDelta(t, 10, right.X, 1e-9)
	assert.InDelta(t, -5, right.Y, 1e-9)
	assert.InDelta(t, 10, right.HalfW, 1e-9)
	assert.InDelta(t, 5, right.HalfH, 1e-9)
}

func TestAssembleDoesNotMergeRows(t *testing.T) {
	a := newTestAssembler(t)
	g := floorGrid(4, 4)
	for c := range g[2] {
		g[2][c] = 1
	}
	layout := a.Assemble(g)
	require.Len(t, layout.Tiles, 2)
	assert.Equal(t, 2, layout.Tiles[0].Span.Row)
	assert.Equal(t, 3, layout.Tiles[1].Span.Row)
}

func TestAssembleOddGridPanics(t *testing.T) {
	a := newTestAssembler(t)
	assert.Panics(t, func() { a.Assemble(Grid{{1, 1, 1}, {0, 0, 0}}) })
}

func TestWithWallThickness(t *testing.T) {
	a := newTestAssembler(t).WithWallThickness(2)
	walls := a.Boundaries()
	assert.Equal(t, NewCollider(-98, 0, 2, 54), walls[0].Collider)
	assert.Equal(t, NewCollider(0, 56, 100, 2), walls[2].Collider)
}
