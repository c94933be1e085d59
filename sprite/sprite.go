/*
Package sprite provides sources of sprite images keyed by client ID, suitable
for drawing an exported spritesheet.

Sprites are looked up as files named after their decimal client ID, for example
"4526.png", either directly from a directory or from a SQLite database they
have been imported into.
*/
package sprite

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path"
	"strconv"
	"strings"

	"github.com/bodgit/tiledexport/atlas"
	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
)

var errBadName = errors.New("sprite: filename is not a client ID")

// ClientID parses the client ID from a sprite filename such as "4526.png".
func ClientID(name string) (uint32, error) {
	base := path.Base(name)
	id, err := strconv.ParseUint(strings.TrimSuffix(base, path.Ext(base)), 10, 32)
	if err != nil || id == 0 {
		return 0, errBadName
	}
	return uint32(id), nil
}

// Scale returns m resized to size by size pixels. Images already the right
// size are returned unchanged.
func Scale(m image.Image, size int) image.Image {
	b := m.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)
	return dst
}

type opaquer interface {
	Opaque() bool
}

// keyed reports whether m decoded from a format without an alpha channel.
// Truecolor PNG and BMP decode to RGBA, JPEG to YCbCr and grayscale formats
// to Gray, while formats with alpha decode to NRGBA or a palette holding a
// transparent entry.
func keyed(m image.Image) bool {
	switch cm := m.ColorModel(); cm {
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return false
	case color.RGBAModel, color.RGBA64Model:
		o, ok := m.(opaquer)
		return ok && o.Opaque()
	default:
		if p, ok := cm.(color.Palette); ok {
			for _, c := range p {
				if _, _, _, a := c.RGBA(); a != 0xffff {
					return false
				}
			}
		}
		return true
	}
}

// prepare scales m and marks it as color keyed if it has no alpha channel.
func prepare(m image.Image, size int) image.Image {
	rgb := keyed(m)
	m = Scale(m, size)
	if rgb {
		return atlas.RGB(m)
	}
	return m
}
