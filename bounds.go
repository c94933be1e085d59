package tiledexport

// Bounds is the smallest rectangle enclosing every tile in a selection, all
// of which lie on Floor.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
	Floor      int
}

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Index returns the row-major offset of p relative to the top-left corner.
func (b Bounds) Index(p Position) int {
	return (p.Y-b.MinY)*b.Width() + (p.X - b.MinX)
}

// Analyze computes the bounds of tiles. The floor of the first tile is
// authoritative; any tile on another floor fails the whole selection.
func Analyze(tiles []Tile) (Bounds, error) {
	var b Bounds

	seen := false
	for _, t := range tiles {
		if t == nil {
			continue
		}

		p := t.Position()
		if !seen {
			b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, Floor: p.Z}
			seen = true
			continue
		}
		if p.Z != b.Floor {
			return Bounds{}, &Error{Kind: MultiFloorSelection}
		}

		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}

	if !seen {
		return Bounds{}, &Error{Kind: EmptySelection}
	}

	if b.Width() <= 0 || b.Height() <= 0 {
		return Bounds{}, &Error{Kind: DegenerateBounds}
	}

	return b, nil
}
