/*
Package tiled implements the subset of the Tiled JSON map format written by
the exporter.

A map always has exactly two tile layers, "tiles" followed by "collision", and
a single embedded tileset backed by the spritesheet image. Struct fields are
declared in alphabetical key order so encoding the same map always produces the
same bytes.
*/
package tiled

import (
	"strconv"

	"github.com/bodgit/tiledexport/atlas"
)

const (
	// Version is written to both the version and tiledversion keys
	Version = "1.10"

	firstGID = 1
)

// Opacity is a layer opacity. It always encodes with a decimal point.
type Opacity float64

// MarshalJSON implements the json.Marshaler interface.
func (o Opacity) MarshalJSON() ([]byte, error) {
	b := strconv.AppendFloat(nil, float64(o), 'f', -1, 64)
	for _, c := range b {
		if c == '.' {
			return b, nil
		}
	}
	return append(b, '.', '0'), nil
}

// Property is a custom property attached to a tileset tile.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value bool   `json:"value"`
}

// Tile holds per-tile metadata within a tileset.
type Tile struct {
	ID         int        `json:"id"`
	Properties []Property `json:"properties"`
}

// Tileset is an embedded, image-backed tileset.
type Tileset struct {
	Columns     int    `json:"columns"`
	FirstGID    int    `json:"firstgid"`
	Image       string `json:"image"`
	ImageHeight int    `json:"imageheight"`
	ImageWidth  int    `json:"imagewidth"`
	Margin      int    `json:"margin"`
	Name        string `json:"name"`
	Spacing     int    `json:"spacing"`
	TileCount   int    `json:"tilecount"`
	TileHeight  int    `json:"tileheight"`
	Tiles       []Tile `json:"tiles"`
	TileWidth   int    `json:"tilewidth"`
}

// Layer is a finite tile layer. Data is row-major.
type Layer struct {
	Data    []int   `json:"data"`
	Height  int     `json:"height"`
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Opacity Opacity `json:"opacity"`
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Width   int     `json:"width"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
}

// Map is the top level document.
type Map struct {
	CompressionLevel int       `json:"compressionlevel"`
	Height           int       `json:"height"`
	Infinite         bool      `json:"infinite"`
	Layers           []Layer   `json:"layers"`
	NextLayerID      int       `json:"nextlayerid"`
	NextObjectID     int       `json:"nextobjectid"`
	Orientation      string    `json:"orientation"`
	RenderOrder      string    `json:"renderorder"`
	TiledVersion     string    `json:"tiledversion"`
	TileHeight       int       `json:"tileheight"`
	Tilesets         []Tileset `json:"tilesets"`
	TileWidth        int       `json:"tilewidth"`
	Type             string    `json:"type"`
	Version          string    `json:"version"`
	Width            int       `json:"width"`
}

func tileLayer(id int, name string, opacity Opacity, width, height int, data []int) Layer {
	return Layer{
		Data:    data,
		Height:  height,
		ID:      id,
		Name:    name,
		Opacity: opacity,
		Type:    "tilelayer",
		Visible: true,
		Width:   width,
	}
}

// NewTileset returns the tileset for a spritesheet holding n sprites written
// for an export called name.
func NewTileset(name string, n int) Tileset {
	// The collision property is a placeholder, it is not derived from the
	// collision layer
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = Tile{
			ID: i,
			Properties: []Property{
				{Name: "collision", Type: "bool", Value: false},
			},
		}
	}

	size := atlas.Size(n)

	return Tileset{
		Columns:     atlas.Columns,
		FirstGID:    firstGID,
		Image:       atlas.Filename(name),
		ImageHeight: size.Dy(),
		ImageWidth:  size.Dx(),
		Name:        name,
		TileCount:   n,
		TileHeight:  atlas.TileSize,
		Tiles:       tiles,
		TileWidth:   atlas.TileSize,
	}
}

// NewMap returns a width by height map with the given tile and collision
// data, referencing a tileset of n sprites.
func NewMap(name string, width, height int, visual, collision []int, n int) *Map {
	return &Map{
		CompressionLevel: -1,
		Height:           height,
		Layers: []Layer{
			tileLayer(1, "tiles", 1.0, width, height, visual),
			tileLayer(2, "collision", 0.5, width, height, collision),
		},
		NextLayerID:  3,
		NextObjectID: 1,
		Orientation:  "orthogonal",
		RenderOrder:  "right-down",
		TiledVersion: Version,
		TileHeight:   atlas.TileSize,
		Tilesets:     []Tileset{NewTileset(name, n)},
		TileWidth:    atlas.TileSize,
		Type:         "map",
		Version:      Version,
		Width:        width,
	}
}

// Filename returns the basename of the document written for an export called
// name.
func Filename(name string) string {
	return name + ".json"
}
