/*
Package selection reads a map selection from a JSON file so it can be
exported without a running editor.

The file holds a single object with a "tiles" array. Each tile has integer
"x", "y" and "z" coordinates, an optional "ground" client ID, an optional
"items" array of {"id", "border"} objects ordered bottom first, and a
"blocking" flag.
*/
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bodgit/tiledexport"
)

var errZeroID = errors.New("client ID must be non-zero")

// Item is an item stacked on a Tile.
type Item struct {
	ID     uint32 `json:"id"`
	Border bool   `json:"border"`
}

// Tile is a tile read from a selection file. It implements the
// tiledexport.Tile interface.
type Tile struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Z        int     `json:"z"`
	GroundID *uint32 `json:"ground,omitempty"`
	ItemList []Item  `json:"items,omitempty"`
	Blocking bool    `json:"blocking"`
}

// Position implements the tiledexport.Tile interface.
func (t *Tile) Position() tiledexport.Position {
	return tiledexport.Position{X: t.X, Y: t.Y, Z: t.Z}
}

// Ground implements the tiledexport.Tile interface.
func (t *Tile) Ground() (uint32, bool) {
	if t.GroundID == nil {
		return 0, false
	}
	return *t.GroundID, true
}

// Items implements the tiledexport.Tile interface.
func (t *Tile) Items() []tiledexport.Item {
	items := make([]tiledexport.Item, len(t.ItemList))
	for i, item := range t.ItemList {
		items[i] = tiledexport.Item{ClientID: item.ID, Border: item.Border}
	}
	return items
}

// IsBlocking implements the tiledexport.Tile interface.
func (t *Tile) IsBlocking() bool {
	return t.Blocking
}

func (t *Tile) validate() error {
	if t.GroundID != nil && *t.GroundID == 0 {
		return errZeroID
	}
	for _, item := range t.ItemList {
		if item.ID == 0 {
			return errZeroID
		}
	}
	return nil
}

type document struct {
	Tiles []*Tile `json:"tiles"`
}

// Read decodes a selection from r.
func Read(r io.Reader) ([]tiledexport.Tile, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f document
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	tiles := make([]tiledexport.Tile, 0, len(f.Tiles))
	for i, t := range f.Tiles {
		if t == nil {
			return nil, fmt.Errorf("tile %d: null tile", i)
		}
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("tile %d at %d,%d,%d: %w", i, t.X, t.Y, t.Z, err)
		}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// Open reads a selection from file.
func Open(file string) ([]tiledexport.Tile, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
