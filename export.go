package tiledexport

import (
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/tiledexport/atlas"
	"github.com/bodgit/tiledexport/tiled"
)

// Result describes a successful export.
type Result struct {
	Bounds      Bounds
	Tiles       int      // Number of sprites in the tileset
	Missing     []uint32 // Client IDs left blank in the spritesheet
	Spritesheet string   // Path of the PNG file
	Document    string   // Path of the JSON file
}

func writeFile(path string, encode func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encode(f)
}

func (e *Exporter) writeSpritesheet(path string, m image.Image) error {
	if err := writeFile(path, func(f *os.File) error {
		if e.colors != 0 {
			return atlas.EncodePaletted(f, m, e.colors)
		}
		return atlas.Encode(f, m)
	}); err != nil {
		return &Error{Kind: AtlasWriteError, Path: path, Err: err}
	}
	return nil
}

func writeDocument(path string, m *tiled.Map) error {
	if err := writeFile(path, func(f *os.File) error {
		return tiled.Encode(f, m)
	}); err != nil {
		return &Error{Kind: DocumentWriteError, Path: path, Err: err}
	}
	return nil
}

// ExportSelection writes tiles to dir as name.json and
// name_spritesheet.png. The first failing step aborts the export; a
// spritesheet written before a later failure is left in place. An invalid
// WithColors count is rejected before anything is written.
func (e *Exporter) ExportSelection(dir, name string, tiles []Tile) (*Result, error) {
	if e.colors != 0 {
		if err := atlas.CheckColors(e.colors); err != nil {
			return nil, err
		}
	}

	b, err := Analyze(tiles)
	if err != nil {
		return nil, err
	}

	p, err := BuildPalette(tiles, b, e.palette)
	if err != nil {
		return nil, err
	}

	layers := Rasterize(tiles, b, p)

	sheet, missing := atlas.Compose(p.Entries(), e.renderer)
	for _, id := range missing {
		e.logger.Printf("No sprite for client ID %d, leaving cell blank\n", id)
	}

	r := &Result{
		Bounds:      b,
		Tiles:       p.Len(),
		Missing:     missing,
		Spritesheet: filepath.Join(dir, atlas.Filename(name)),
		Document:    filepath.Join(dir, tiled.Filename(name)),
	}

	if err := e.writeSpritesheet(r.Spritesheet, sheet); err != nil {
		return nil, err
	}
	e.logger.Printf("Wrote %d sprites to \"%s\"\n", r.Tiles, r.Spritesheet)

	m := tiled.NewMap(name, b.Width(), b.Height(), layers.Visual, layers.Collision, p.Len())
	if err := writeDocument(r.Document, m); err != nil {
		return nil, err
	}
	e.logger.Printf("Wrote %dx%d map to \"%s\"\n", b.Width(), b.Height(), r.Document)

	return r, nil
}
