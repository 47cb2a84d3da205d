package types

import "math"

// Point is a grid cell. The origin is the centre of the play area and Y grows upwards.
type Point struct {
	X, Y int
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the play area geometry in cells
type Grid struct {
	HalfWidth int     // |x| or |y| equal to this is a wall
	CellSize  float64 // Pixels per cell
}

// NewGrid derives the grid from the play area size and cell size, both in pixels
func NewGrid(playArea, cellSize float64) Grid {
	return Grid{
		HalfWidth: int(math.Round(playArea / cellSize / 2)),
		CellSize:  cellSize,
	}
}

// IsWall reports whether p lies on the boundary
func (g Grid) IsWall(p Point) bool {
	return abs(p.X) == g.HalfWidth || abs(p.Y) == g.HalfWidth
}

// Contains reports whether p is strictly inside the walls
func (g Grid) Contains(p Point) bool {
	return abs(p.X) < g.HalfWidth && abs(p.Y) < g.HalfWidth
}

// SpawnSpan is the largest |coordinate| a spawned item may use
func (g Grid) SpawnSpan() int {
	return g.HalfWidth - 1
}

// Cells returns the number of cells inside the walls
func (g Grid) Cells() int {
	side := 2*g.SpawnSpan() + 1
	if side <= 0 {
		return 0
	}
	return side * side
}

// ToPixel converts a cell to the pixel offset of its centre from the play area centre.
// Y keeps the world convention (up is positive); screens flip it when drawing.
func (g Grid) ToPixel(p Point) (float64, float64) {
	return math.Floor(float64(p.X) * g.CellSize), math.Floor(float64(p.Y) * g.CellSize)
}

// Manhattan returns the taxicab distance between two cells
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
