package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
	"github.com/stretchr/testify/require"
)

// floorGrid is the default level: only the bottom row is solid.
func floorGrid(t *testing.T) tilemap.Grid {
	t.Helper()
	rows := make([][]int, 12)
	for r := range rows {
		rows[r] = make([]int, 12)
	}
	for c := range rows[11] {
		rows[11][c] = 1
	}
	g, err := tilemap.NewGrid(rows)
	require.NoError(t, err)
	return g
}

type testWorld struct {
	w       *ecs.World
	spec    prefabs.GameSpec
	player  ecs.Entity
	physics *PhysicsSystem
	layout  tilemap.Layout
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	spec, err := prefabs.LoadGameSpec("")
	require.NoError(t, err)

	asm, err := tilemap.NewAssembler(spec.Viewport(), spec.Physics.Scale)
	require.NoError(t, err)

	w := ecs.NewWorld()
	layout, err := entity.LoadMapToWorld(w, asm, floorGrid(t), spec.Map.TileColor.NRGBA)
	require.NoError(t, err)

	halfW, _ := asm.HalfExtents()
	player, err := entity.NewPlayer(w, spec.Player, spec.Tuning(), halfW)
	require.NoError(t, err)

	_, err = entity.NewCamera(w, spec.Viewport(), spec.Physics.Scale)
	require.NoError(t, err)

	ps := NewPhysicsSystem(PhysicsConfig{
		Gravity:    spec.Physics.Gravity,
		Iterations: spec.Physics.Iterations,
		Timestep:   spec.Timestep(),
	})
	ps.Sync(w)

	return &testWorld{w: w, spec: spec, player: player, physics: ps, layout: layout}
}

func (tw *testWorld) playerBody(t *testing.T) *component.PhysicsBody {
	t.Helper()
	body, ok := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, body.Body)
	return body
}

func (tw *testWorld) playerTransform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

// fakeKeys is a level-only key source for tests.
type fakeKeys map[Action]bool

func (k fakeKeys) Pressed(a Action) bool {
	return k[a]
}
