package atlas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

var errBadColors = errors.New("atlas: color count must be between 2 and 256")

// CheckColors returns an error if n is not a usable color count for
// EncodePaletted.
func CheckColors(n int) error {
	if n < 2 || n > maxColors {
		return errBadColors
	}
	return nil
}

// Encode writes the sheet m to w as a 32-bit RGBA PNG.
func Encode(w io.Writer, m image.Image) error {
	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, m)
}

// Reduce the sheet to at most n colors. Index 0 is always fully transparent
// and every pixel with zero alpha maps to it.
func quantizeSheet(m image.Image, n int) *image.Paletted {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(append(make(color.Palette, 0, n), color.Transparent), m)

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Draw picks the nearest color which for dark, nearly transparent pixels
	// is not necessarily index 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a == 0 {
				pm.SetColorIndex(x, y, 0)
			}
		}
	}

	return pm
}

// EncodePaletted writes the sheet m to w as an indexed PNG with at most n
// colors, including the transparent color at index 0.
func EncodePaletted(w io.Writer, m image.Image, n int) error {
	if err := CheckColors(n); err != nil {
		return err
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > n {
		pm = quantizeSheet(m, n)
	}

	return Encode(w, pm)
}
