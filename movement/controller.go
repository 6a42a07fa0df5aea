// Package movement turns pressed keys and the current velocity into the
// per-tick velocity impulse applied to the player.
package movement

// Horizontal is the horizontal controller state for one tick.
type Horizontal int

const (
	Idle Horizontal = iota
	MovingLeft
	MovingRight
	SprintingLeft
	SprintingRight
)

func (h Horizontal) String() string {
	switch h {
	case MovingLeft:
		return "moving-left"
	case MovingRight:
		return "moving-right"
	case SprintingLeft:
		return "sprinting-left"
	case SprintingRight:
		return "sprinting-right"
	default:
		return "idle"
	}
}

// Vertical is grounded while vertical velocity is exactly zero.
type Vertical int

const (
	Grounded Vertical = iota
	Airborne
)

func (v Vertical) String() string {
	if v == Airborne {
		return "airborne"
	}
	return "grounded"
}

// Keys is the key state sampled for one tick. Left, Right, Sprint and Jump
// are held states; JumpPressed is true only on the tick the jump key went down.
type Keys struct {
	Left        bool
	Right       bool
	Sprint      bool
	Jump        bool
	JumpPressed bool
}

type Velocity struct {
	X float64
	Y float64
}

func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{X: v.X + o.X, Y: v.Y + o.Y}
}

// Tuning holds the controller constants.
type Tuning struct {
	Speed            float64
	SprintFactor     float64
	JumpImpulse      float64
	PowerJumpImpulse float64
}

// DefaultTuning matches the shipped game.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:            3,
		SprintFactor:     1.5,
		JumpImpulse:      50,
		PowerJumpImpulse: 65,
	}
}

// Result is the outcome of one controller tick.
type Result struct {
	Horizontal Horizontal
	Vertical   Vertical
	Delta      Velocity
}

// Step computes the impulse for one tick. The delta is meant to be added to
// the current velocity, so holding a direction keeps accelerating the body.
//
// A direction is honoured while grounded, or while airborne if the body is
// already moving that way. Right is evaluated after left and wins when both
// are held. A jump needs a fresh press while grounded.
func Step(vel Velocity, keys Keys, t Tuning) Result {
	res := Result{Vertical: Airborne}
	grounded := vel.Y == 0
	if grounded {
		res.Vertical = Grounded
	}

	direction := 0.0
	if grounded || vel.X < 0 {
		if keys.Left && keys.Sprint {
			direction = -t.SprintFactor
			res.Horizontal = SprintingLeft
		} else if keys.Left {
			direction = -1
			res.Horizontal = MovingLeft
		}
	}
	if grounded || vel.X > 0 {
		if keys.Right && keys.Sprint {
			direction = t.SprintFactor
			res.Horizontal = SprintingRight
		} else if keys.Right {
			direction = 1
			res.Horizontal = MovingRight
		}
	}

	jump := 0.0
	if grounded && keys.JumpPressed {
		if keys.Sprint {
			jump = t.PowerJumpImpulse
		} else {
			jump = t.JumpImpulse
		}
	}

	res.Delta = Velocity{X: direction * t.Speed, Y: jump * t.Speed}
	return res
}
