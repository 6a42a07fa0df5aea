// Command mapcheck assembles a level the way the game does and prints the
// resulting collider layout as YAML. With -watch it reprints whenever a level
// file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
	"gopkg.in/yaml.v3"
)

type options struct {
	level  string
	width  float64
	height float64
	scale  float64
	wall   float64
}

// report is the printed document.
type report struct {
	Level  string         `yaml:"level"`
	Rows   int            `yaml:"rows"`
	Cols   int            `yaml:"cols"`
	Spans  []tilemap.Span `yaml:"spans"`
	Layout tilemap.Layout `yaml:"layout"`
}

func main() {
	configFile := flag.String("config", prefabs.GameSpecFile, "game config supplying defaults")
	level := flag.String("level", "", "level to assemble (defaults to map.level)")
	width := flag.Float64("width", 0, "viewport width in pixels (defaults to window.width)")
	height := flag.Float64("height", 0, "viewport height in pixels (defaults to window.height)")
	scale := flag.Float64("scale", 0, "pixels per world unit (defaults to physics.scale)")
	watch := flag.Bool("watch", false, "reprint when files in ./levels change")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	spec, err := prefabs.LoadGameSpec(*configFile)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	opts := options{
		level:  spec.Map.Level,
		width:  float64(spec.Window.Width),
		height: float64(spec.Window.Height),
		scale:  spec.Physics.Scale,
		wall:   spec.Map.WallThickness,
	}
	if *level != "" {
		opts.level = *level
	}
	if *width > 0 {
		opts.width = *width
	}
	if *height > 0 {
		opts.height = *height
	}
	if *scale > 0 {
		opts.scale = *scale
	}

	if err := printLayout(os.Stdout, opts); err != nil {
		log.Fatal("assemble", "level", opts.level, "err", err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watchLevels(ctx, os.Stdout, opts); err != nil {
		log.Fatal("watch", "err", err)
	}
}

func build(opts options) (report, error) {
	grid, err := levels.Load(opts.level)
	if err != nil {
		return report{}, err
	}
	asm, err := tilemap.NewAssembler(tilemap.Viewport{Width: opts.width, Height: opts.height}, opts.scale)
	if err != nil {
		return report{}, err
	}
	asm = asm.WithWallThickness(opts.wall)

	r := report{
		Level:  opts.level,
		Rows:   grid.Rows(),
		Cols:   grid.Cols(),
		Layout: asm.Assemble(grid),
	}
	for i, row := range grid {
		r.Spans = append(r.Spans, tilemap.CompactRow(row, i)...)
	}
	return r, nil
}

func printLayout(out io.Writer, opts options) error {
	r, err := build(opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("mapcheck: encode: %w", err)
	}
	return enc.Close()
}

// watchLevels reprints the layout when the selected level changes on disk.
// Assembly errors are logged and the watch continues.
func watchLevels(ctx context.Context, out io.Writer, opts options) error {
	w, err := prefabs.NewWatcher(levels.Extensions, levels.DiskDir)
	if err != nil {
		return fmt.Errorf("mapcheck: watch %s: %w", levels.DiskDir, err)
	}
	defer w.Close()

	log.Info("watching", "dir", levels.DiskDir, "level", opts.level)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(path) != filepath.Base(opts.level) {
				log.Debug("ignoring change", "path", path)
				continue
			}
			log.Info("level changed", "path", path)
			if err := printLayout(out, opts); err != nil {
				log.Error("assemble", "level", opts.level, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher", "err", err)
		}
	}
}
