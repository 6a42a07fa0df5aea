package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Projection maps world units (y up, origin at the viewport centre) to screen
// pixels (y down, origin top-left).
type Projection struct {
	CamX    float64
	CamY    float64
	Scale   float64
	ScreenW float64
	ScreenH float64
}

// ProjectionFor reads the first camera entity. Without a camera it returns an
// identity-scaled projection centred on screen.
func ProjectionFor(w *ecs.World, screenW, screenH float64) Projection {
	p := Projection{Scale: 1, ScreenW: screenW, ScreenH: screenH}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return p
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		p.CamX = camTransform.X
		p.CamY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		scale := camComp.PixelsPerUnit
		if scale <= 0 {
			scale = 1
		}
		if camComp.Zoom > 0 {
			scale *= camComp.Zoom
		}
		p.Scale = scale
	}
	return p
}

func (p Projection) ToScreen(x, y float64) (float64, float64) {
	return p.ScreenW/2 + (x-p.CamX)*p.Scale, p.ScreenH/2 - (y-p.CamY)*p.Scale
}

func (p Projection) ToWorld(sx, sy float64) (float64, float64) {
	return (sx-p.ScreenW/2)/p.Scale + p.CamX, -(sy-p.ScreenH/2)/p.Scale + p.CamY
}

// Length converts a world distance to pixels.
func (p Projection) Length(v float64) float64 {
	return v * p.Scale
}
