package ui

import "snake-arcade/game/types"

const (
	borderPadding = 10
	statsPanel    = 220
)

// Layout maps grid cells to window pixels. The grid origin sits at the
// centre of the board and Y grows upwards, so rows are flipped on screen.
type Layout struct {
	grid    types.Grid
	scale   float64 // Window pixels per play area pixel
	centerX int32
	centerY int32
	cell    int32
}

// NewLayout fits the board, walls included, into the left part of the window
func NewLayout(grid types.Grid, screenWidth, screenHeight int32) Layout {
	side := float64(2*grid.HalfWidth+1) * grid.CellSize
	availW := float64(screenWidth - statsPanel - 2*borderPadding)
	availH := float64(screenHeight - 2*borderPadding)

	scale := availW / side
	if h := availH / side; h < scale {
		scale = h
	}
	if scale <= 0 {
		scale = 1
	}

	cell := int32(grid.CellSize * scale)
	if cell < 1 {
		cell = 1
	}
	return Layout{
		grid:    grid,
		scale:   scale,
		centerX: borderPadding + int32(side*scale)/2,
		centerY: screenHeight / 2,
		cell:    cell,
	}
}

// CellRect returns the top-left window corner of p and the cell side
func (l Layout) CellRect(p types.Point) (x, y, size int32) {
	px, py := l.grid.ToPixel(p)
	half := l.cell / 2
	x = l.centerX + int32(px*l.scale) - half
	y = l.centerY - int32(py*l.scale) - half
	return x, y, l.cell
}

// Bounds returns the window rectangle covered by the board, walls included
func (l Layout) Bounds() (x, y, w, h int32) {
	hw := l.grid.HalfWidth
	x, y, _ = l.CellRect(types.Point{X: -hw, Y: hw})
	x2, y2, size := l.CellRect(types.Point{X: hw, Y: -hw})
	return x, y, x2 + size - x, y2 + size - y
}

// PanelX is where the stats panel starts
func (l Layout) PanelX() int32 {
	x, _, w, _ := l.Bounds()
	return x + w + borderPadding
}

// WindowSize is the initial window that fits the board and the stats panel
func WindowSize(grid types.Grid) (width, height int32) {
	side := int32(float64(2*grid.HalfWidth+1) * grid.CellSize)
	return side + statsPanel + 2*borderPadding, side + 2*borderPadding
}
