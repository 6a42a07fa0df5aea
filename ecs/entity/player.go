package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
)

// PlayerSpawn places the player one body width plus inset in from the left
// wall, at the configured height.
func PlayerSpawn(halfWidth float64, spec prefabs.PlayerSpec) (float64, float64) {
	return -(halfWidth - spec.Size - spec.SpawnInset), spec.SpawnY
}

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, tuning movement.Tuning, halfWidth float64) (ecs.Entity, error) {
	x, y := PlayerSpawn(halfWidth, spec)
	return NewPlayerAt(w, spec, tuning, x, y)
}

func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, tuning movement.Tuning, x, y float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Tuning: tuning}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add collision: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		HalfW:          spec.Size,
		HalfH:          spec.Size,
		Mass:           spec.Mass,
		LinearDamping:  spec.LinearDamping,
		RotationLocked: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.GravityScale}); err != nil {
		return 0, fmt.Errorf("player: add gravity scale: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Size * 2,
		Height: spec.Size * 2,
		Color:  spec.Color.NRGBA,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	return player, nil
}
