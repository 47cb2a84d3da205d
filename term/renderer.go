package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Each grid cell is two terminal columns wide so the board looks square
const cellWidth = 2

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleTail  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFruit = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

var headGlyphs = map[types.Direction]rune{
	types.Up:    '▲',
	types.Down:  '▼',
	types.Left:  '◀',
	types.Right: '▶',
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellPos maps a grid cell to its terminal column and row. Y grows upwards on
// the grid and downwards on the terminal.
func CellPos(halfWidth int, p types.Point) (col, row int) {
	return (p.X + halfWidth) * cellWidth, halfWidth - p.Y
}

// Draw renders one frame. overlay is an optional status line such as "paused".
func (r *Renderer) Draw(snap game.Snapshot, overlay string) {
	r.screen.Clear()
	hw := snap.HalfWidth
	grid := types.Grid{HalfWidth: hw, CellSize: snap.CellSize}

	for x := -hw; x <= hw; x++ {
		for y := -hw; y <= hw; y++ {
			p := types.Point{X: x, Y: y}
			if grid.IsWall(p) {
				r.cell(hw, p, '█', '█', styleWall)
			}
		}
	}
	if snap.HasFruit {
		r.cell(hw, snap.Fruit, '●', ' ', styleFruit)
	}
	for _, p := range snap.Tail {
		r.cell(hw, p, '■', '■', styleTail)
	}
	if snap.HasSnake {
		r.cell(hw, snap.Head, headGlyphs[snap.Direction], ' ', styleHead)
	}

	panel := (2*hw+1)*cellWidth + 2
	row := 0
	r.text(panel, row, fmt.Sprintf("Score: %d", snap.Score), styleText)
	row += 2
	r.text(panel, row, "High Scores:", styleText)
	row++
	for i, s := range snap.RecentScores {
		r.text(panel+1, row, fmt.Sprintf("%d. %d", i+1, s), styleDim)
		row++
	}
	row++
	r.text(panel, row, fmt.Sprintf("Games: %d  Best: %d", snap.GamesPlayed, snap.BestScore), styleDim)
	row++
	r.text(panel, row, fmt.Sprintf("Avg: %.2f", snap.AverageScore), styleDim)
	row += 2
	r.text(panel, row, "arrows/wasd move  p pause", styleDim)
	row++
	r.text(panel, row, "tab autopilot  r restart  q quit", styleDim)

	mid := hw
	if !snap.Playing {
		r.centered(hw, mid, "GAME OVER", styleAlert)
	}
	if overlay != "" {
		r.centered(hw, mid+2, overlay, styleAlert)
	}
	r.screen.Show()
}

func (r *Renderer) cell(hw int, p types.Point, left, right rune, style tcell.Style) {
	col, row := CellPos(hw, p)
	r.screen.SetContent(col, row, left, nil, style)
	r.screen.SetContent(col+1, row, right, nil, style)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *Renderer) centered(hw, row int, s string, style tcell.Style) {
	width := (2*hw + 1) * cellWidth
	col := (width - len([]rune(s))) / 2
	if col < 0 {
		col = 0
	}
	r.text(col, row, s, style)
}
