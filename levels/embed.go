// Package levels loads tile grids from YAML literals, tengo generator
// scripts and Tiled maps.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/platformer/tilemap"
)

//go:embed *.yaml *.tengo *.tmx
var LevelsFS embed.FS

// DiskDir is checked before the embedded levels.
const DiskDir = "levels"

var ErrUnknownFormat = errors.New("levels: unknown level format")

// Extensions lists the file types Load understands.
var Extensions = []string{".yaml", ".yml", ".tengo", ".tmx"}

type decoder func(fsys fs.FS, name string) ([][]int, error)

var decoders = map[string]decoder{
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
	".tengo": decodeScript,
	".tmx":   decodeTMX,
}

// Load resolves name against ./levels on disk, then the embedded levels, and
// returns the validated grid. An absolute path is read as is.
func Load(name string) (tilemap.Grid, error) {
	fsys, file := resolve(name)
	return LoadFS(fsys, file)
}

// LoadFS decodes file from fsys by extension.
func LoadFS(fsys fs.FS, file string) (tilemap.Grid, error) {
	ext := strings.ToLower(path.Ext(file))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, file)
	}
	rows, err := decode(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	grid, err := tilemap.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	return grid, nil
}

// Names lists the embedded levels.
func Names() []string {
	var names []string
	entries, _ := fs.ReadDir(LevelsFS, ".")
	for _, e := range entries {
		if _, ok := decoders[strings.ToLower(path.Ext(e.Name()))]; ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func resolve(name string) (fs.FS, string) {
	if filepath.IsAbs(name) {
		return os.DirFS(filepath.Dir(name)), filepath.Base(name)
	}
	clean := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(clean, DiskDir+"/"); ok {
		clean = after
	}
	if _, err := os.Stat(filepath.Join(DiskDir, filepath.FromSlash(clean))); err == nil {
		return os.DirFS(DiskDir), clean
	}
	return LevelsFS, clean
}
