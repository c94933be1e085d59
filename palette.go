package tiledexport

import (
	"sort"

	"github.com/bodgit/tiledexport/atlas"
)

// Palette assigns each distinct client ID a dense tile index starting at 1,
// in the order the IDs were first seen. Index 0 is reserved for empty cells.
type Palette struct {
	index map[uint32]int
	refs  []uint32
}

// Len returns the number of distinct graphics.
func (p *Palette) Len() int {
	return len(p.refs)
}

// Index returns the tile index assigned to id.
func (p *Palette) Index(id uint32) (int, bool) {
	i, ok := p.index[id]
	return i, ok
}

// Refs returns the client IDs in assignment order.
func (p *Palette) Refs() []uint32 {
	return append([]uint32(nil), p.refs...)
}

// Entries returns the palette sorted by tile index, which is the order atlas
// cells are laid out in. It is deliberately derived from the index map rather
// than from assignment order.
func (p *Palette) Entries() []atlas.Entry {
	entries := make([]atlas.Entry, 0, len(p.index))
	for id, i := range p.index {
		entries = append(entries, atlas.Entry{ClientID: id, Index: i})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
	return entries
}

func (p *Palette) add(id uint32) {
	if _, ok := p.index[id]; ok {
		return
	}
	p.refs = append(p.refs, id)
	p.index[id] = len(p.refs)
}

// PaletteOptions tweaks which graphics are collected.
type PaletteOptions struct {
	// IncludeItems also collects the first non-border item of tiles that
	// have a ground graphic. Those items never appear in the tile layer but
	// are packed into the atlas.
	IncludeItems bool
}

// scanOrder returns the non-nil tiles sorted row-major over b. Tiles sharing a
// position keep their relative order.
func scanOrder(tiles []Tile, b Bounds) []Tile {
	sorted := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t != nil {
			sorted = append(sorted, t)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return b.Index(sorted[i].Position()) < b.Index(sorted[j].Position())
	})
	return sorted
}

// BuildPalette collects the graphics used by tiles within b.
func BuildPalette(tiles []Tile, b Bounds, opts PaletteOptions) (*Palette, error) {
	p := &Palette{
		index: make(map[uint32]int),
	}

	for _, t := range scanOrder(tiles, b) {
		ground, hasGround := t.Ground()
		if hasGround {
			p.add(ground)
		}
		if !hasGround || opts.IncludeItems {
			if id, ok := firstItem(t); ok {
				p.add(id)
			}
		}
	}

	if p.Len() == 0 {
		return nil, &Error{Kind: EmptyPalette}
	}

	return p, nil
}
