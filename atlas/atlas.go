/*
Package atlas implements the spritesheet packed alongside an exported map.

The sheet is a fixed grid ten cells wide where each cell is 32 by 32 pixels.
Tile index t (1-based) occupies column (t-1) % 10 and row (t-1) / 10, so the
sheet is always 320 pixels wide and a multiple of 32 pixels high. Cells with no
sprite are left fully transparent.
*/
package atlas

import (
	"image"
)

const (
	// Columns is the number of cells in each row of the sheet
	Columns = 10
	// TileSize is the width and height of each cell in pixels
	TileSize = 32

	sheetWidth = Columns * TileSize
	suffix     = "_spritesheet.png"
)

// Entry places one sprite in the sheet.
type Entry struct {
	ClientID uint32
	Index    int // 1-based tile index
}

// Rows returns the number of rows needed to hold n sprites.
func Rows(n int) int {
	return (n + Columns - 1) / Columns
}

// Size returns the bounds of a sheet holding n sprites.
func Size(n int) image.Rectangle {
	return image.Rect(0, 0, sheetWidth, Rows(n)*TileSize)
}

// Cell returns the bounds of the cell for tile index i.
func Cell(i int) image.Rectangle {
	col := (i - 1) % Columns
	row := (i - 1) / Columns
	return image.Rect(col*TileSize, row*TileSize, col*TileSize+TileSize, row*TileSize+TileSize)
}

// Filename returns the basename of the sheet written for an export called
// name. The map document references the sheet by this name.
func Filename(name string) string {
	return name + suffix
}
