package well

import (
	"image"
	"image/color"
)

// Position is a cell coordinate. Y grows downward and may be negative for a
// piece that has not fully entered the well yet.
type Position struct {
	X, Y int
}

// Add returns p translated by (dx, dy) cells.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Block is a single occupied cell. Style is cosmetic and never consulted by
// collision logic.
type Block struct {
	Position
	Style color.RGBA
}

// Fall returns the block moved down by one cell.
func (b Block) Fall() Block {
	b.Y++
	return b
}

// Rect returns the block's pixel rectangle.
func (b Block) Rect() image.Rectangle {
	x := b.X * CellSize
	y := b.Y * CellSize
	return image.Rect(x, y, x+CellSize, y+CellSize)
}
