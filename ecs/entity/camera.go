package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/tilemap"
)

// NewCamera creates the camera at the world origin. pixelsPerUnit is the
// physics scale.
func NewCamera(w *ecs.World, viewport tilemap.Viewport, pixelsPerUnit float64) (ecs.Entity, error) {
	return NewCameraAt(w, viewport, pixelsPerUnit, 0, 0)
}

func NewCameraAt(w *ecs.World, viewport tilemap.Viewport, pixelsPerUnit, x, y float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		PixelsPerUnit:  pixelsPerUnit,
		ViewportWidth:  viewport.Width,
		ViewportHeight: viewport.Height,
		Zoom:           1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
