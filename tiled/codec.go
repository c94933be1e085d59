package tiled

import (
	"encoding/json"
	"errors"
	"io"
)

var errLayerSize = errors.New("tiled: layer data does not match layer size")

// Encode writes m to w as indented JSON.
func Encode(w io.Writer, m *Map) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Decode reads a map from r, checking each layer holds width*height cells.
func Decode(r io.Reader) (*Map, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	for _, l := range m.Layers {
		if len(l.Data) != l.Width*l.Height {
			return nil, errLayerSize
		}
	}
	return &m, nil
}
