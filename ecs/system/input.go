package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
)

// Action is one of the logical keys the player controller reads.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionSprint
	ActionJump
)

// KeySource answers level and edge queries for logical keys.
type KeySource interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
}

// KeyBindings maps logical keys to ebiten keys.
type KeyBindings map[Action]ebiten.Key

// ParseKeyBindings resolves ebiten key names such as "A", "ShiftLeft" or
// "Space".
func ParseKeyBindings(left, right, sprint, jump string) (KeyBindings, error) {
	names := map[Action]string{
		ActionLeft:   left,
		ActionRight:  right,
		ActionSprint: sprint,
		ActionJump:   jump,
	}
	bindings := make(KeyBindings, len(names))
	for action, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("input: key %q: %w", name, err)
		}
		bindings[action] = key
	}
	return bindings, nil
}

// EbitenKeys polls the keyboard through ebiten.
type EbitenKeys struct {
	Bindings KeyBindings
}

func (k EbitenKeys) Pressed(a Action) bool {
	key, ok := k.Bindings[a]
	return ok && ebiten.IsKeyPressed(key)
}

func (k EbitenKeys) JustPressed(a Action) bool {
	key, ok := k.Bindings[a]
	return ok && inpututil.IsKeyJustPressed(key)
}

// LevelKeys reports held state only.
type LevelKeys interface {
	Pressed(a Action) bool
}

// LatchedKeys derives edge queries from a level-only source. JustPressed must
// be asked at most once per action per tick.
type LatchedKeys struct {
	src     LevelKeys
	latches map[Action]*movement.Latch
}

func NewLatchedKeys(src LevelKeys) *LatchedKeys {
	return &LatchedKeys{src: src, latches: make(map[Action]*movement.Latch)}
}

func (k *LatchedKeys) Pressed(a Action) bool {
	return k.src.Pressed(a)
}

func (k *LatchedKeys) JustPressed(a Action) bool {
	l := k.latches[a]
	if l == nil {
		l = &movement.Latch{}
		k.latches[a] = l
	}
	return l.Sample(k.src.Pressed(a))
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.keys == nil || w == nil {
		return
	}

	left := i.keys.Pressed(ActionLeft)
	right := i.keys.Pressed(ActionRight)
	sprint := i.keys.Pressed(ActionSprint)
	jump := i.keys.Pressed(ActionJump)
	jumpPressed := i.keys.JustPressed(ActionJump)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Sprint = sprint
		input.Jump = jump
		input.JumpPressed = jumpPressed
	})
}
