package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

// groundedEpsilon is the largest vertical speed snapped to zero while the
// player stands on a solid.
const groundedEpsilon = 1.0

// PhysicsConfig is the space setup taken from game.yaml.
type PhysicsConfig struct {
	Gravity    float64
	Iterations int
	Timestep   float64
}

type PhysicsSystem struct {
	space         *cp.Space
	timestep      float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	playerShapes map[*cp.Shape]ecs.Entity
	playerStates map[ecs.Entity]*playerContactState
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

type playerContactState struct {
	grounded bool
	wall     int
}

func NewPhysicsSystem(cfg PhysicsConfig) *PhysicsSystem {
	space := cp.NewSpace()
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	timestep := cfg.Timestep
	if timestep <= 0 {
		timestep = 1.0 / 60.0
	}
	return &PhysicsSystem{
		space:        space,
		timestep:     timestep,
		entities:     make(map[ecs.Entity]*bodyInfo),
		playerShapes: make(map[*cp.Shape]ecs.Entity),
		playerStates: make(map[ecs.Entity]*playerContactState),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Sync creates bodies for new physics entities without stepping. The game
// calls it once after the map is loaded so the first controller tick sees a
// body.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.syncEntities(w)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.resetPlayerContacts(w)

	ps.space.Step(ps.timestep)

	ps.settlePlayers()
	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		playerEntity, playerIsA := sys.playerShapes[shapeA]
		if !playerIsA {
			var okB bool
			playerEntity, okB = sys.playerShapes[shapeB]
			if !okB {
				return true
			}
		}

		st := sys.playerStates[playerEntity]
		if st == nil {
			st = &playerContactState{}
			sys.playerStates[playerEntity] = st
		}

		// Normal points from the player into the solid. Y grows upward.
		n := arb.Normal()
		if !playerIsA {
			n = n.Neg()
		}
		if n.Y < -0.5 {
			st.grounded = true
		}
		if n.X < -0.5 {
			st.wall = component.WallLeft
		} else if n.X > 0.5 {
			st.wall = component.WallRight
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())

		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		gravityScale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gravityScale = gs.Scale
		}

		info := ps.createBodyInfo(transform, bodyComp, gravityScale, isPlayer)
		if info == nil {
			return
		}
		ps.entities[e] = info
		if isPlayer {
			ps.playerShapes[info.shape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, gravityScale float64, isPlayer bool) *bodyInfo {
	hw, hh := bodyComp.HalfW, bodyComp.HalfH
	if hw <= 0 || hh <= 0 {
		return nil
	}

	if bodyComp.Static {
		bb := cp.BB{L: transform.X - hw, B: transform.Y - hh, R: transform.X + hw, T: transform.Y + hh}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, hw*2, hh*2)
	if bodyComp.RotationLocked {
		moment = cp.INFINITY
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocityUpdateFunc(velocityFunc(gravityScale, bodyComp.LinearDamping))

	shape := cp.NewBox(body, hw*2, hh*2, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// velocityFunc integrates gravity scaled per body and applies linear damping
// as v / (1 + dt*damping).
func velocityFunc(gravityScale, linearDamping float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		if linearDamping > 0 {
			damping *= 1.0 / (1.0 + dt*linearDamping)
		}
		cp.BodyUpdateVelocity(body, gravity.Mult(gravityScale), damping, dt)
	}
}

func (ps *PhysicsSystem) resetPlayerContacts(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{})
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, _ *component.PlayerCollision) {
		seen[e] = struct{}{}
		st := ps.playerStates[e]
		if st == nil {
			st = &playerContactState{}
			ps.playerStates[e] = st
		}
		st.grounded = false
		st.wall = component.WallNone
	})

	for e := range ps.playerStates {
		if _, ok := seen[e]; !ok {
			delete(ps.playerStates, e)
		}
	}
}

// settlePlayers zeroes the residual vertical speed of grounded players so the
// controller reads them as standing.
func (ps *PhysicsSystem) settlePlayers() {
	for e, st := range ps.playerStates {
		if !st.grounded {
			continue
		}
		info := ps.entities[e]
		if info == nil || info.static {
			continue
		}
		vel := info.body.Velocity()
		if math.Abs(vel.Y) < groundedEpsilon {
			info.body.SetVelocity(vel.X, 0)
		}
	}
}

// flushPlayerContacts copies contact state into components and queues an
// event for every change.
func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	for e, st := range ps.playerStates {
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			continue
		}
		if st.grounded != pc.Grounded {
			kind := ecs.ContactLeftGround
			if st.grounded {
				kind = ecs.ContactLanded
			}
			w.Events().Push(ecs.ContactEvent{Entity: e, Kind: kind})
		}
		if st.wall != component.WallNone && st.wall != pc.Wall {
			w.Events().Push(ecs.ContactEvent{Entity: e, Kind: ecs.ContactWall})
		}
		pc.Grounded = st.grounded
		pc.Wall = st.wall
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.playerShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.playerStates, e)
	}
}
