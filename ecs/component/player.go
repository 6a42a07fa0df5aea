package component

import "github.com/milk9111/platformer/movement"

// Player carries the controller tuning and the last controller result.
type Player struct {
	Tuning movement.Tuning
	Last   movement.Result
}

var PlayerComponent = NewComponent[Player]()
