package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime handles and the box collider used to
// create them. Sizes are half-extents in world units.
type PhysicsBody struct {
	Body           *cp.Body
	Shape          *cp.Shape
	HalfW          float64
	HalfH          float64
	Mass           float64
	Friction       float64
	Elasticity     float64
	LinearDamping  float64
	Static         bool
	RotationLocked bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
