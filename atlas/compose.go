package atlas

import (
	"image"
	"image/color"
)

// Renderer rasterizes the sprite for a client ID at the given size. It
// returns false if there is no sprite for id.
type Renderer interface {
	Render(id uint32, size int) (image.Image, bool)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(id uint32, size int) (image.Image, bool)

// Render calls f(id, size).
func (f RendererFunc) Render(id uint32, size int) (image.Image, bool) {
	return f(id, size)
}

var magenta = color.NRGBA{0xff, 0x00, 0xff, 0xff}

type rgbImage struct {
	image.Image
}

// RGB marks m as having no alpha channel, so any alpha it reports is ignored
// and magenta is used as the transparent color key instead. Decoders usually
// return RGBA images even for formats that have no alpha channel.
func RGB(m image.Image) image.Image {
	return rgbImage{m}
}

// hasAlpha reports whether m carries its own transparency information.
func hasAlpha(m image.Image) bool {
	if _, ok := m.(rgbImage); ok {
		return false
	}
	switch cm := m.ColorModel(); cm {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	default:
		if p, ok := cm.(color.Palette); ok {
			for _, c := range p {
				if _, _, _, a := c.RGBA(); a != 0xffff {
					return true
				}
			}
		}
		return false
	}
}

// blit copies src into the cell at dst, clipped to TileSize. Sources without
// an alpha channel use magenta as the transparent color key.
func blit(dst *image.NRGBA, cell image.Rectangle, src image.Image) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > TileSize {
		w = TileSize
	}
	if h > TileSize {
		h = TileSize
	}

	keyed := !hasAlpha(src)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if keyed {
				if c.R == magenta.R && c.G == magenta.G && c.B == magenta.B {
					c.A = 0x00
				} else {
					c.A = 0xff
				}
			}
			dst.SetNRGBA(cell.Min.X+x, cell.Min.Y+y, c)
		}
	}
}

// Compose draws every entry into a new sheet, placing each by its tile index.
// Any client ID the renderer has no sprite for is returned in missing and its
// cell stays transparent.
func Compose(entries []Entry, r Renderer) (m *image.NRGBA, missing []uint32) {
	n := len(entries)
	for _, e := range entries {
		if e.Index > n {
			n = e.Index
		}
	}

	m = image.NewNRGBA(Size(n))
	for _, e := range entries {
		src, ok := r.Render(e.ClientID, TileSize)
		if !ok || src == nil {
			missing = append(missing, e.ClientID)
			continue
		}
		blit(m, Cell(e.Index), src)
	}
	return m, missing
}
