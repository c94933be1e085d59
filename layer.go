package tiledexport

// Layers holds the two row-major grids produced for a selection.
type Layers struct {
	// Visual holds a palette index per cell, 0 where there is nothing to draw
	Visual []int
	// Collision holds 1 for blocking cells and 0 for walkable ones
	Collision []int
}

// Rasterize fills the visual and collision grids for tiles within b. Cells
// with no tile are left empty and walkable.
func Rasterize(tiles []Tile, b Bounds, p *Palette) Layers {
	n := b.Width() * b.Height()
	l := Layers{
		Visual:    make([]int, n),
		Collision: make([]int, n),
	}

	for _, t := range tiles {
		if t == nil {
			continue
		}
		i := b.Index(t.Position())
		if i < 0 || i >= n {
			continue
		}

		if id, ok := representative(t); ok {
			if v, ok := p.Index(id); ok {
				l.Visual[i] = v
			}
		}

		if t.IsBlocking() {
			l.Collision[i] = 1
		} else {
			l.Collision[i] = 0
		}
	}

	return l
}
