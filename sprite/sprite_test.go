package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/bodgit/tiledexport/atlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, m image.Image) []byte {
	t.Helper()
	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))
	return b.Bytes()
}

// An opaque sprite, half magenta
func magentaSprite(size int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{0xff, 0x00, 0xff, 0xff}
			if x >= size/2 {
				c = color.RGBA{0x30, 0x30, 0x30, 0xff}
			}
			m.SetRGBA(x, y, c)
		}
	}
	return m
}

func TestClientID(t *testing.T) {
	tables := []struct {
		name string
		id   uint32
		err  error
	}{
		{"4526.png", 4526, nil},
		{"sprites/100.bmp", 100, nil},
		{"0.png", 0, errBadName},
		{"grass.png", 0, errBadName},
		{"-1.png", 0, errBadName},
		{"99999999999.png", 0, errBadName},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			id, err := ClientID(table.name)
			assert.Equal(t, table.err, err)
			assert.Equal(t, table.id, id)
		})
	}
}

func TestScale(t *testing.T) {
	m := magentaSprite(64)
	assert.Same(t, image.Image(m), Scale(m, 64))

	s := Scale(m, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), s.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0xff, 0xff}, color.NRGBAModel.Convert(s.At(0, 0)))
	assert.Equal(t, color.NRGBA{0x30, 0x30, 0x30, 0xff}, color.NRGBAModel.Convert(s.At(31, 31)))
}

func TestDir(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	translucent.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0xff, 0x80})

	d := NewDir(fstest.MapFS{
		"100.png": {Data: encodePNG(t, magentaSprite(32))},
		"101.png": {Data: encodePNG(t, translucent)},
		"102.png": {Data: []byte("not a png")},
	}, nil)

	_, ok := d.Render(102, 32)
	assert.False(t, ok)

	_, ok = d.Render(103, 32)
	assert.False(t, ok)

	m, missing := atlas.Compose([]atlas.Entry{{ClientID: 100, Index: 1}, {ClientID: 101, Index: 2}, {ClientID: 103, Index: 3}}, d)
	assert.Equal(t, []uint32{103}, missing)

	// Opaque sprites are color keyed, translucent ones keep their alpha
	assert.Equal(t, uint8(0), m.NRGBAAt(0, 0).A)
	assert.Equal(t, color.NRGBA{0x30, 0x30, 0x30, 0xff}, m.NRGBAAt(31, 0))
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0xff, 0x80}, m.NRGBAAt(32, 0))
}

func TestPrepare(t *testing.T) {
	magenta := color.NRGBA{0xff, 0x00, 0xff, 0xff}

	withAlpha := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := 0; i < len(withAlpha.Pix); i += 4 {
		withAlpha.Pix[i], withAlpha.Pix[i+1], withAlpha.Pix[i+2], withAlpha.Pix[i+3] = 0xff, 0x00, 0xff, 0xff
	}

	translucent := image.NewRGBA(image.Rect(0, 0, 32, 32))
	translucent.SetRGBA(0, 0, color.RGBA{0x80, 0x00, 0x80, 0x80})
	translucent.SetRGBA(1, 0, color.RGBA{0xff, 0x00, 0xff, 0xff})

	opaquePalette := image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{magenta, color.Black})
	alphaPalette := image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{magenta, color.Transparent})

	tables := []struct {
		name  string
		m     image.Image
		keyed bool
	}{
		{"opaque NRGBA", withAlpha, false},
		{"opaque NRGBA scaled", Scale(withAlpha, 64), false},
		{"opaque RGBA", magentaSprite(32), true},
		{"opaque RGBA scaled", magentaSprite(64), true},
		{"translucent RGBA", translucent, false},
		{"opaque palette", opaquePalette, true},
		{"palette with transparency", alphaPalette, false},
		{"gray", image.NewGray(image.Rect(0, 0, 32, 32)), true},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.keyed, keyed(table.m))

			r := atlas.RendererFunc(func(id uint32, size int) (image.Image, bool) {
				return prepare(table.m, size), true
			})
			sheet, _ := atlas.Compose([]atlas.Entry{{ClientID: 1, Index: 1}}, r)
			if table.m.ColorModel() == color.GrayModel {
				return
			}
			// Every source above has magenta at 1,0
			if table.keyed {
				assert.Equal(t, uint8(0), sheet.NRGBAAt(1, 0).A)
			} else {
				assert.Equal(t, magenta, sheet.NRGBAAt(1, 0))
			}
		})
	}
}
