package component

const (
	LayerTiles  = 0
	LayerPlayer = 10
)

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
