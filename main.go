package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func main() {
	configFile := flag.String("config", prefabs.GameSpecFile, "game config in prefabs/ (or an absolute path)")
	levelName := flag.String("level", "", "level in levels/ (.yaml, .tengo or .tmx); overrides map.level")
	debug := flag.Bool("debug", false, "enable debug logging and the physics overlay")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.SetReportTimestamp(true)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	spec, err := prefabs.LoadGameSpec(*configFile)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if *levelName != "" {
		spec.Map.Level = *levelName
	}
	if *fullscreen {
		spec.Window.Fullscreen = true
	}

	grid, err := levels.Load(spec.Map.Level)
	if err != nil {
		log.Fatal("load level", "level", spec.Map.Level, "err", err)
	}

	if *baseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)
	ebiten.SetFullscreen(spec.Window.Fullscreen)
	ebiten.SetVsyncEnabled(spec.Window.VSync)
	ebiten.SetTPS(spec.Physics.TPS)

	game, err := NewGame(spec, grid, *debug)
	if err != nil {
		log.Fatal("build game", "err", err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run game", "err", err)
		os.Exit(1)
	}
}
