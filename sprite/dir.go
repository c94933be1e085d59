package sprite

import (
	"image"
	"io/fs"
	"io/ioutil"
	"log"
	"strconv"
)

// Dir serves sprites stored as "<client ID>.png" files in a filesystem.
type Dir struct {
	filesystem fs.FS
	logger     *log.Logger
}

// NewDir returns a Dir reading from filesystem.
func NewDir(filesystem fs.FS, logger *log.Logger) *Dir {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Dir{
		filesystem: filesystem,
		logger:     logger,
	}
}

// Image decodes the sprite for id.
func (d *Dir) Image(id uint32) (image.Image, error) {
	f, err := d.filesystem.Open(strconv.FormatUint(uint64(id), 10) + ".png")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Render implements the atlas.Renderer interface.
func (d *Dir) Render(id uint32, size int) (image.Image, bool) {
	m, err := d.Image(id)
	if err != nil {
		d.logger.Printf("Unable to load sprite %d: %v\n", id, err)
		return nil, false
	}
	return prepare(m, size), true
}
