package component

const (
	WallNone  = 0
	WallLeft  = 1
	WallRight = 2
)

// PlayerCollision is refreshed by the physics system after every step.
type PlayerCollision struct {
	Grounded bool
	Wall     int
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
