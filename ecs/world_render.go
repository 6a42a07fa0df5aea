package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws world state each frame.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(w *World, screen *ebiten.Image)

func (f RendererFunc) Draw(w *World, screen *ebiten.Image) {
	f(w, screen)
}

// Draw calls each renderer in order. Nil renderers are skipped.
func Draw(w *World, screen *ebiten.Image, renderers ...Renderer) {
	if w == nil || screen == nil {
		return
	}
	for _, r := range renderers {
		if r == nil {
			continue
		}
		r.Draw(w, screen)
	}
}
