package entity

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/tilemap"
)

// LoadMapToWorld assembles grid once and creates a static collider entity for
// every row span and boundary wall, plus a bounds entity describing the map.
// The layout is returned for export.
func LoadMapToWorld(w *ecs.World, asm *tilemap.Assembler, grid tilemap.Grid, tileColor color.NRGBA) (tilemap.Layout, error) {
	layout := asm.Assemble(grid)

	halfW, halfH := asm.HalfExtents()
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		HalfWidth:  halfW,
		HalfHeight: halfH,
		Unit:       layout.Unit,
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
	}); err != nil {
		return tilemap.Layout{}, fmt.Errorf("level: add bounds: %w", err)
	}

	for _, p := range layout.Tiles {
		e, err := newStaticBody(w, p, tileColor)
		if err != nil {
			return tilemap.Layout{}, err
		}
		if err := ecs.Add(w, e, component.StaticTileComponent.Kind(), &component.StaticTile{
			Row:   p.Span.Row,
			Start: p.Span.Start,
			Cells: p.Span.Len,
		}); err != nil {
			return tilemap.Layout{}, fmt.Errorf("level: add static tile: %w", err)
		}
		log.Debug("tile collider",
			"row", p.Span.Row, "start", p.Span.Start, "cells", p.Span.Len,
			"x", p.Collider.X, "y", p.Collider.Y, "half_w", p.Collider.HalfW, "half_h", p.Collider.HalfH)
	}

	for _, p := range layout.Boundaries {
		e, err := newStaticBody(w, p, tileColor)
		if err != nil {
			return tilemap.Layout{}, err
		}
		if err := ecs.Add(w, e, component.BoundaryComponent.Kind(), &component.Boundary{Side: string(p.Side)}); err != nil {
			return tilemap.Layout{}, fmt.Errorf("level: add boundary: %w", err)
		}
		log.Debug("boundary collider", "side", p.Side, "x", p.Collider.X, "y", p.Collider.Y)
	}

	log.Info("map assembled",
		"rows", grid.Rows(), "cols", grid.Cols(),
		"unit_w", layout.Unit.W, "unit_h", layout.Unit.H,
		"tiles", len(layout.Tiles), "boundaries", len(layout.Boundaries))
	return layout, nil
}

func newStaticBody(w *ecs.World, p tilemap.Placement, c color.NRGBA) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.Collider.X, Y: p.Collider.Y}); err != nil {
		return 0, fmt.Errorf("level: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		HalfW:    p.Collider.HalfW,
		HalfH:    p.Collider.HalfH,
		Friction: p.Collider.Friction,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("level: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  p.Sprite.W,
		Height: p.Sprite.H,
		Color:  c,
		Hidden: !p.Sprite.Visible,
	}); err != nil {
		return 0, fmt.Errorf("level: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerTiles}); err != nil {
		return 0, fmt.Errorf("level: add render layer: %w", err)
	}
	return e, nil
}
