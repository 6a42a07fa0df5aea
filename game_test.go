package main

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestGame(t *testing.T, level string) *Game {
	t.Helper()
	spec, err := prefabs.LoadGameSpec("")
	require.NoError(t, err)
	grid, err := levels.Load(level)
	require.NoError(t, err)
	g, err := NewGame(spec, grid, false)
	require.NoError(t, err)
	return g
}

func TestNewGameBuildsWorld(t *testing.T) {
	g := newTestGame(t, "default.yaml")

	assert.Equal(t, 1, ecs.Count(g.world, component.StaticTileComponent.Kind()))
	assert.Equal(t, 3, ecs.Count(g.world, component.BoundaryComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(g.world, component.PlayerTagComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(g.world, component.CameraComponent.Kind()))
	assert.Len(t, g.scheduler.Systems(), 3)

	w, h := g.LayoutF(640, 480)
	assert.Equal(t, 1920.0, w)
	assert.Equal(t, 1080.0, h)
}

func TestNewGameRejectsBadViewport(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("")
	require.NoError(t, err)
	spec.Window.Width = 0
	grid, err := levels.Load("default.yaml")
	require.NoError(t, err)

	_, err = NewGame(spec, grid, false)
	assert.ErrorIs(t, err, tilemap.ErrNoViewport)
}

func TestNewGameRejectsUnknownKey(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("")
	require.NoError(t, err)
	spec.Keys.Jump = "Trampoline"
	grid, err := levels.Load("default.yaml")
	require.NoError(t, err)

	_, err = NewGame(spec, grid, false)
	assert.Error(t, err)
}

func TestLayoutYAMLRoundTrip(t *testing.T) {
	g := newTestGame(t, "arena.tmx")

	data, err := layoutYAML(g.layout)
	require.NoError(t, err)

	var back tilemap.Layout
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, g.layout, back)
	assert.Len(t, back.Tiles, 7)
}
