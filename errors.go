package tiledexport

import (
	"errors"
	"fmt"
)

// Kind classifies why an export failed.
type Kind int

// The failure kinds an export can report. Every kind is terminal for the
// export that produced it.
const (
	EmptySelection Kind = iota + 1
	MultiFloorSelection
	DegenerateBounds
	EmptyPalette
	AtlasWriteError
	DocumentWriteError
)

var kindNames = map[Kind]string{
	EmptySelection:      "selection is empty",
	MultiFloorSelection: "selection spans multiple floors",
	DegenerateBounds:    "invalid selection bounds",
	EmptyPalette:        "no sprites found in selection",
	AtlasWriteError:     "failed to save spritesheet",
	DocumentWriteError:  "failed to write map document",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is returned by every failing export step.
type Error struct {
	Kind Kind
	Path string // Output file, only set for write errors
	Err  error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Path != "" {
		s += ": " + e.Path
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
