package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type RenderSystem struct {
	pixel *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e      ecs.Entity
	layer  int
	t      *component.Transform
	sprite *component.Sprite
}

// Draw fills every visible sprite as a rectangle centred on its transform,
// lowest render layer first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	bounds := screen.Bounds()
	proj := ProjectionFor(w, float64(bounds.Dx()), float64(bounds.Dy()))

	for _, item := range drawOrder(w) {
		s := item.sprite
		wpx := proj.Length(s.Width)
		hpx := proj.Length(s.Height)
		cx, cy := proj.ToScreen(item.t.X, item.t.Y)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(wpx, hpx)
		op.GeoM.Rotate(-item.t.Rotation)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleWithColor(s.Color)
		screen.DrawImage(r.pixel, op)
	}
}

// drawOrder lists the visible sprites sorted by layer, then entity.
func drawOrder(w *ecs.World) []drawItem {
	var items []drawItem
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if s.Hidden || s.Width <= 0 || s.Height <= 0 {
			return
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawItem{e: e, layer: layer, t: t, sprite: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})
	return items
}
