package component

import "github.com/milk9111/platformer/tilemap"

// LevelBounds describes the assembled map: half the viewport in world units
// and the cell size.
type LevelBounds struct {
	HalfWidth  float64
	HalfHeight float64
	Unit       tilemap.UnitSize
	Rows       int
	Cols       int
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
