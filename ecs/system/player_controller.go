package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update feeds each player's input and current body velocity through the
// controller and adds the resulting delta to the body. Bodies that physics has
// not created yet are skipped.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
			if bodyComp.Body == nil {
				return
			}

			vel := bodyComp.Body.Velocity()
			res := movement.Step(movement.Velocity{X: vel.X, Y: vel.Y}, movement.Keys{
				Left:        input.Left,
				Right:       input.Right,
				Sprint:      input.Sprint,
				Jump:        input.Jump,
				JumpPressed: input.JumpPressed,
			}, player.Tuning)
			player.Last = res

			vel.X += res.Delta.X
			vel.Y += res.Delta.Y
			bodyComp.Body.SetVelocityVector(vel)
		})
}
