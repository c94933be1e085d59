/*
Package tiledexport is a library for exporting a single-floor selection of map
tiles as a Tiled JSON map together with a PNG spritesheet.
*/
package tiledexport

import (
	"io/ioutil"
	"log"

	"github.com/bodgit/tiledexport/atlas"
)

// Exporter writes map selections to disk. It holds no state between exports.
type Exporter struct {
	renderer atlas.Renderer
	logger   *log.Logger
	palette  PaletteOptions
	colors   int
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithItems packs the first non-border item of every tile into the
// spritesheet, even when the tile is drawn using its ground graphic.
func WithItems() Option {
	return func(e *Exporter) {
		e.palette.IncludeItems = true
	}
}

// WithColors writes an indexed spritesheet with at most n colors instead of a
// 32-bit one. n must be between 2 and 256; zero keeps the 32-bit sheet.
func WithColors(n int) Option {
	return func(e *Exporter) {
		e.colors = n
	}
}

// New returns an Exporter that draws sprites using r. A nil logger discards
// all output.
func New(r atlas.Renderer, logger *log.Logger, options ...Option) *Exporter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	e := &Exporter{
		renderer: r,
		logger:   logger,
	}
	for _, o := range options {
		o(e)
	}
	return e
}
