package component

import "image/color"

// Sprite is a solid rectangle centred on the entity's transform. Width and
// Height are in world units and match the collider for static tiles.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.NRGBA
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
