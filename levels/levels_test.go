package levels

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/milk9111/platformer/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	names := Names()
	require.Equal(t, []string{"arena.tmx", "default.yaml", "meadow.yaml", "stairs.tengo"}, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			g, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, 12, g.Rows())
			assert.Positive(t, g.Solid())
		})
	}
}

func TestDefaultLevelIsFloorOnly(t *testing.T) {
	g, err := Load("default.yaml")
	require.NoError(t, err)
	require.Equal(t, 12, g.Cols())
	for r := 0; r < 11; r++ {
		assert.Empty(t, tilemap.CompactRow(g[r], r), "row %d", r)
	}
	assert.Equal(t, []tilemap.Span{{Row: 11, Start: 0, Len: 12}}, tilemap.CompactRow(g[11], 11))
}

func TestMeadowLevel(t *testing.T) {
	g, err := Load("meadow.yaml")
	require.NoError(t, err)
	assert.Equal(t, 24, g.Cols())
	assert.Equal(t, []tilemap.Span{{Row: 11, Start: 9, Len: 15}}, tilemap.CompactRow(g[11], 11))
}

func TestStairsScript(t *testing.T) {
	g, err := Load("stairs.tengo")
	require.NoError(t, err)
	assert.Equal(t, 24, g.Cols())
	assert.Equal(t, []tilemap.Span{{Row: 10, Start: 0, Len: 3}}, tilemap.CompactRow(g[10], 10))
	assert.Equal(t, []tilemap.Span{{Row: 5, Start: 15, Len: 3}}, tilemap.CompactRow(g[5], 5))
	assert.Empty(t, tilemap.CompactRow(g[4], 4))
}

func TestArenaMapUsesSolidLayer(t *testing.T) {
	g, err := Load("arena.tmx")
	require.NoError(t, err)
	assert.Equal(t, 24, g.Cols())
	assert.Equal(t, []tilemap.Span{{Row: 4, Start: 0, Len: 2}, {Row: 4, Start: 22, Len: 2}}, tilemap.CompactRow(g[4], 4))
	assert.Equal(t, []tilemap.Span{{Row: 11, Start: 0, Len: 8}, {Row: 11, Start: 16, Len: 8}}, tilemap.CompactRow(g[11], 11))
	assert.Equal(t, 1, g[11][0])
}

func TestLoadFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"odd.yaml":      {Data: []byte("grid:\n  - [1, 1, 1]\n  - [0, 0, 0]\n")},
		"ragged.yaml":   {Data: []byte("grid:\n  - [1, 1]\n  - [0]\n")},
		"nogrid.tengo":  {Data: []byte("x := 1\n")},
		"badcell.tengo": {Data: []byte(`grid := [[1, "a"], [0, 0]]`)},
		"broken.tengo":  {Data: []byte("grid := [\n")},
		"level.txt":     {Data: []byte("")},
	}
	cases := []struct {
		file   string
		target error
	}{
		{"odd.yaml", tilemap.ErrOddDimension},
		{"ragged.yaml", tilemap.ErrRaggedGrid},
		{"nogrid.tengo", errNoScriptGrid},
		{"badcell.tengo", nil},
		{"broken.tengo", nil},
		{"level.txt", ErrUnknownFormat},
		{"missing.yaml", nil},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			_, err := LoadFS(fsys, c.file)
			require.Error(t, err)
			if c.target != nil {
				assert.ErrorIs(t, err, c.target)
			}
		})
	}
}

func TestScriptBooleanCells(t *testing.T) {
	fsys := fstest.MapFS{
		"bools.tengo": {Data: []byte(`grid := [[false, true], [true, true]]`)},
	}
	g, err := LoadFS(fsys, "bools.tengo")
	require.NoError(t, err)
	assert.Equal(t, tilemap.Grid{{0, 1}, {1, 1}}, g)
}

func TestLoadAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  - [0, 0]\n  - [1, 1]\n"), 0o644))
	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tilemap.Grid{{0, 0}, {1, 1}}, g)
}
