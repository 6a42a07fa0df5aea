package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

type Game struct {
	spec   prefabs.GameSpec
	world  *ecs.World
	layout tilemap.Layout

	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	debug        bool
	drawPhysics  bool
	clipboardErr error
	clipboardOK  bool
}

// NewGame builds the world once: static map colliders, the player and the
// camera. The map is never reassembled while the game runs.
func NewGame(spec prefabs.GameSpec, grid tilemap.Grid, debug bool) (*Game, error) {
	asm, err := tilemap.NewAssembler(spec.Viewport(), spec.Physics.Scale)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	asm = asm.WithWallThickness(spec.Map.WallThickness)

	world := ecs.NewWorld()
	layout, err := entity.LoadMapToWorld(world, asm, grid, spec.Map.TileColor.NRGBA)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	halfW, _ := asm.HalfExtents()
	if _, err := entity.NewPlayer(world, spec.Player, spec.Tuning(), halfW); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCamera(world, spec.Viewport(), spec.Physics.Scale); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	bindings, err := system.ParseKeyBindings(spec.Keys.Left, spec.Keys.Right, spec.Keys.Sprint, spec.Keys.Jump)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	physics := system.NewPhysicsSystem(system.PhysicsConfig{
		Gravity:    spec.Physics.Gravity,
		Iterations: spec.Physics.Iterations,
		Timestep:   spec.Timestep(),
	})
	physics.Sync(world)

	return &Game{
		spec:   spec,
		world:  world,
		layout: layout,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(system.EbitenKeys{Bindings: bindings}),
			system.NewPlayerControllerSystem(),
			physics,
		),
		physics:     physics,
		render:      system.NewRenderSystem(),
		debug:       debug,
		drawPhysics: debug,
	}, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.togglePause()
	}
	if g.paused {
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.drawPhysics = !g.drawPhysics
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyLayout()
	}

	g.scheduler.Update(g.world)
	for _, evt := range g.world.Events().Drain() {
		log.Debug("contact", "entity", evt.Entity, "kind", evt.Kind)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.Window.ClearColor.NRGBA)

	renderers := []ecs.Renderer{g.render}
	if g.drawPhysics {
		renderers = append(renderers,
			ecs.RendererFunc(func(w *ecs.World, screen *ebiten.Image) {
				system.DrawPhysicsDebug(g.physics.Space(), w, screen)
			}),
			ecs.RendererFunc(system.DrawPlayerStateDebug),
		)
	}
	ecs.Draw(g.world, screen, renderers...)

	if g.debug {
		bounds := screen.Bounds()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, bounds.Dy()-20)
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Window.Width), float64(g.spec.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused && g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
}

// copyLayout puts the assembled collider layout on the clipboard as YAML.
func (g *Game) copyLayout() {
	if !g.clipboardOK && g.clipboardErr == nil {
		g.clipboardErr = clipboard.Init()
		g.clipboardOK = g.clipboardErr == nil
	}
	if !g.clipboardOK {
		log.Warn("clipboard unavailable", "err", g.clipboardErr)
		return
	}
	data, err := layoutYAML(g.layout)
	if err != nil {
		log.Error("encode layout", "err", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Info("layout copied", "tiles", len(g.layout.Tiles), "bytes", len(data))
}

func layoutYAML(layout tilemap.Layout) ([]byte, error) {
	return yaml.Marshal(layout)
}
