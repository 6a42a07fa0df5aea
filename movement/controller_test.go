package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepHorizontal(t *testing.T) {
	tune := DefaultTuning()
	cases := []struct {
		name  string
		vel   Velocity
		keys  Keys
		state Horizontal
		dx    float64
	}{
		{"idle", Velocity{}, Keys{}, Idle, 0},
		{"left_grounded", Velocity{}, Keys{Left: true}, MovingLeft, -3},
		{"sprint_left_grounded", Velocity{}, Keys{Left: true, Sprint: true}, SprintingLeft, -4.5},
		{"right_grounded", Velocity{X: -2}, Keys{Right: true}, MovingRight, 3},
		{"sprint_right_grounded", Velocity{}, Keys{Right: true, Sprint: true}, SprintingRight, 4.5},
		{"both_held_right_wins", Velocity{}, Keys{Left: true, Right: true}, MovingRight, 3},
		{"airborne_keeps_momentum", Velocity{X: -1, Y: 4}, Keys{Left: true}, MovingLeft, -3},
		{"airborne_cannot_reverse", Velocity{X: -1, Y: 4}, Keys{Right: true}, Idle, 0},
		{"airborne_from_standstill", Velocity{X: 0, Y: -2}, Keys{Left: true}, Idle, 0},
		{"airborne_right_momentum", Velocity{X: 5, Y: -2}, Keys{Right: true, Sprint: true}, SprintingRight, 4.5},
		{"sprint_alone", Velocity{}, Keys{Sprint: true}, Idle, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Step(c.vel, c.keys, tune)
			assert.Equal(t, c.state, res.Horizontal)
			assert.InDelta(t, c.dx, res.Delta.X, 1e-9)
		})
	}
}

func TestStepJump(t *testing.T) {
	tune := DefaultTuning()
	cases := []struct {
		name string
		vel  Velocity
		keys Keys
		dy   float64
	}{
		{"fresh_press", Velocity{}, Keys{Jump: true, JumpPressed: true}, 150},
		{"power_jump", Velocity{}, Keys{Jump: true, JumpPressed: true, Sprint: true}, 195},
		{"held_without_press", Velocity{}, Keys{Jump: true}, 0},
		{"airborne_press", Velocity{Y: 0.5}, Keys{Jump: true, JumpPressed: true}, 0},
		{"falling_press", Velocity{Y: -3}, Keys{Jump: true, JumpPressed: true}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.dy, Step(c.vel, c.keys, tune).Delta.Y, 1e-9)
		})
	}
}

func TestStepVertical(t *testing.T) {
	tune := DefaultTuning()
	assert.Equal(t, Grounded, Step(Velocity{X: 3}, Keys{}, tune).Vertical)
	assert.Equal(t, Airborne, Step(Velocity{Y: 1e-6}, Keys{}, tune).Vertical)
}

func TestHeldKeyKeepsAccelerating(t *testing.T) {
	tune := DefaultTuning()
	vel := Velocity{}
	for i := 0; i < 5; i++ {
		vel = vel.Add(Step(vel, Keys{Left: true}, tune).Delta)
	}
	assert.InDelta(t, -15, vel.X, 1e-9)
}

func TestJumpAppliedOncePerPress(t *testing.T) {
	tune := DefaultTuning()
	var latch Latch
	jumps := 0
	// the key is held for several ticks, then released and pressed again;
	// vertical velocity is reset to grounded every tick to isolate the edge
	for _, down := range []bool{true, true, true, false, true, true} {
		keys := Keys{Jump: down, JumpPressed: latch.Sample(down)}
		if Step(Velocity{}, keys, tune).Delta.Y > 0 {
			jumps++
		}
	}
	assert.Equal(t, 2, jumps)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "sprinting-left", SprintingLeft.String())
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "airborne", Airborne.String())
}
