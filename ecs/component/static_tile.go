package component

// StaticTile marks a collider built from one row span of the map.
type StaticTile struct {
	Row   int
	Start int
	Cells int
}

var StaticTileComponent = NewComponent[StaticTile]()

// Boundary marks one of the walls closing the play area.
type Boundary struct {
	Side string
}

var BoundaryComponent = NewComponent[Boundary]()
