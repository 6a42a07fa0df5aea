package levels

import (
	"errors"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// SolidLayer is the tile layer read from Tiled maps. Maps without it use
// their first tile layer.
const SolidLayer = "solid"

var errNoTileLayer = errors.New("map has no tile layers")

// decodeTMX turns the solid layer into codes: empty tiles are 0, others carry
// their global tile id.
func decodeTMX(fsys fs.FS, name string) ([][]int, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, err
	}
	if len(m.Layers) == 0 {
		return nil, errNoTileLayer
	}

	layer := m.Layers[0]
	for _, l := range m.Layers {
		if l.Name == SolidLayer {
			layer = l
			break
		}
	}

	rows := make([][]int, m.Height)
	for y := 0; y < m.Height; y++ {
		rows[y] = make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			gid := int(tile.ID) + 1
			if tile.Tileset != nil {
				gid = int(tile.Tileset.FirstGID) + int(tile.ID)
			}
			rows[y][x] = gid
		}
	}
	return rows, nil
}
