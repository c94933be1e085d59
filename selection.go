package tiledexport

// Position is the location of a tile on the source map.
type Position struct {
	X, Y, Z int
}

// Item is a single item stacked on a tile.
type Item struct {
	ClientID uint32
	Border   bool
}

// Tile is a read-only handle onto one selected map tile. Implementations are
// owned by the caller and are never modified.
type Tile interface {
	Position() Position
	// Ground returns the client ID of the ground graphic, if any.
	Ground() (uint32, bool)
	// Items returns the items on the tile, bottom first.
	Items() []Item
	IsBlocking() bool
}

// representative returns the graphic used to draw t: the ground graphic if
// present, otherwise the first item that is not a border.
func representative(t Tile) (uint32, bool) {
	if id, ok := t.Ground(); ok {
		return id, true
	}
	return firstItem(t)
}

func firstItem(t Tile) (uint32, bool) {
	for _, item := range t.Items() {
		if !item.Border {
			return item.ClientID, true
		}
	}
	return 0, false
}
