package selection

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/tiledexport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTiles = `{
  "tiles": [
    {"x": 100, "y": 50, "z": 7, "ground": 4526},
    {"x": 101, "y": 50, "z": 7, "items": [{"id": 4600, "border": true}, {"id": 1987}], "blocking": true}
  ]
}`

func TestRead(t *testing.T) {
	tiles, err := Read(strings.NewReader(twoTiles))
	require.NoError(t, err)
	require.Len(t, tiles, 2)

	assert.Equal(t, tiledexport.Position{X: 100, Y: 50, Z: 7}, tiles[0].Position())
	id, ok := tiles[0].Ground()
	assert.True(t, ok)
	assert.Equal(t, uint32(4526), id)
	assert.Empty(t, tiles[0].Items())
	assert.False(t, tiles[0].IsBlocking())

	_, ok = tiles[1].Ground()
	assert.False(t, ok)
	assert.Equal(t, []tiledexport.Item{{ClientID: 4600, Border: true}, {ClientID: 1987}}, tiles[1].Items())
	assert.True(t, tiles[1].IsBlocking())
}

func TestReadInvalid(t *testing.T) {
	tables := []struct {
		name  string
		input string
	}{
		{"malformed", `{"tiles": [`},
		{"unknown field", `{"tiles": [{"x": 1, "colour": 3}]}`},
		{"null tile", `{"tiles": [null]}`},
		{"zero ground", `{"tiles": [{"x": 1, "ground": 0}]}`},
		{"zero item", `{"tiles": [{"x": 1, "items": [{"id": 0}]}]}`},
		{"negative id", `{"tiles": [{"x": 1, "ground": -4}]}`},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(table.input))
			assert.Error(t, err)
		})
	}
}

func TestOpenAndExport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "selection.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(twoTiles), 0644))

	tiles, err := Open(file)
	require.NoError(t, err)

	b, err := tiledexport.Analyze(tiles)
	require.NoError(t, err)
	p, err := tiledexport.BuildPalette(tiles, b, tiledexport.PaletteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{4526, 1987}, p.Refs())

	l := tiledexport.Rasterize(tiles, b, p)
	assert.Equal(t, []int{1, 2}, l.Visual)
	assert.Equal(t, []int{0, 1}, l.Collision)

	_, err = Open(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
