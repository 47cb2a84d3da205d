package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

var (
	wallColor  = rl.DarkGray
	gridColor  = rl.Color{R: 40, G: 40, B: 40, A: 255}
	tailColor  = rl.Color{R: 0, G: 170, B: 60, A: 255}
	headColor  = rl.Color{R: 80, G: 230, B: 120, A: 255}
	fruitColor = rl.Red
	panelColor = rl.Color{R: 30, G: 30, B: 30, A: 255}
)

type Renderer struct {
	grid         types.Grid
	layout       Layout
	screenWidth  int32
	screenHeight int32
	started      time.Time
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{grid: grid, started: time.Now()}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the current window size
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = NewLayout(r.grid, r.screenWidth, r.screenHeight)
}

// Draw renders one frame. overlay is an optional status line such as "paused".
func (r *Renderer) Draw(snap game.Snapshot, overlay string) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, 20)
	lineHeight := fontSize + 6

	r.drawBoard(snap)
	r.drawStatsPanel(snap, fontSize, lineHeight)

	bx, by, bw, bh := r.layout.Bounds()
	if !snap.Playing {
		text := "Game Over! (Restarting...)"
		width := rl.MeasureText(text, fontSize*2)
		rl.DrawText(text, bx+(bw-width)/2, by+bh/2-fontSize, fontSize*2, rl.White)
	}
	if overlay != "" {
		width := rl.MeasureText(overlay, fontSize)
		rl.DrawText(overlay, bx+(bw-width)/2, by+bh/2+fontSize*2, fontSize, rl.Yellow)
	}
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	hw := snap.HalfWidth
	for x := -hw; x <= hw; x++ {
		for y := -hw; y <= hw; y++ {
			p := types.Point{X: x, Y: y}
			cx, cy, size := r.layout.CellRect(p)
			if r.grid.IsWall(p) {
				rl.DrawRectangle(cx, cy, size, size, wallColor)
				continue
			}
			rl.DrawRectangleLines(cx, cy, size, size, gridColor)
		}
	}

	if snap.HasFruit {
		cx, cy, size := r.layout.CellRect(snap.Fruit)
		rl.DrawRectangle(cx, cy, size, size, fruitColor)
	}

	for _, p := range snap.Tail {
		cx, cy, size := r.layout.CellRect(p)
		rl.DrawRectangle(cx+1, cy+1, size-2, size-2, tailColor)
	}

	if snap.HasSnake {
		cx, cy, size := r.layout.CellRect(snap.Head)
		rl.DrawRectangle(cx, cy, size, size, headColor)
		r.drawDirection(cx, cy, size, snap.Direction)
	}
}

// drawDirection puts a triangle on the head pointing where it moves
func (r *Renderer) drawDirection(headX, headY, cell int32, dir types.Direction) {
	half := cell / 2
	v := func(x, y int32) rl.Vector2 {
		return rl.Vector2{X: float32(x), Y: float32(y)}
	}
	// Vertices are counter-clockwise on screen
	switch dir {
	case types.Right:
		rl.DrawTriangle(v(headX+cell, headY+half), v(headX+half, headY), v(headX+half, headY+cell), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(headX, headY+half), v(headX+half, headY+cell), v(headX+half, headY), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(headX+half, headY+cell), v(headX+cell, headY+half), v(headX, headY+half), rl.Yellow)
	default:
		rl.DrawTriangle(v(headX+half, headY), v(headX, headY+half), v(headX+cell, headY+half), rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.layout.PanelX()
	statsY := int32(borderPadding)
	rl.DrawRectangle(statsX-5, 0, r.screenWidth-statsX+5, r.screenHeight, panelColor)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize+4, rl.White)
	statsY += lineHeight + 8

	rl.DrawText("High Scores:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for i, s := range snap.RecentScores {
		rl.DrawText(fmt.Sprintf("%d. %d", i+1, s), statsX+10, statsY, fontSize, rl.LightGray)
		statsY += lineHeight
	}

	statsY += lineHeight / 2
	rl.DrawText("Session:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", snap.GamesPlayed), statsX+10, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Best: %d", snap.BestScore), statsX+10, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.2f", snap.AverageScore), statsX+10, statsY, fontSize, rl.LightGray)
	statsY += lineHeight

	r.drawHistoryGraph(snap, statsX, fontSize)
}

func (r *Renderer) drawHistoryGraph(snap game.Snapshot, graphX, fontSize int32) {
	graphWidth := r.screenWidth - graphX - borderPadding
	graphHeight := r.screenHeight / 5
	graphY := r.screenHeight - graphHeight - fontSize*2
	if graphWidth <= 0 {
		return
	}

	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("History", graphX, graphY-fontSize-5, fontSize, rl.White)

	elapsed := time.Since(r.started)
	timeText := fmt.Sprintf("%02d:%02d:%02d", int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60)
	rl.DrawText(timeText, graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	scores := snap.History
	if len(scores) < 2 {
		return
	}
	maxScore := uint(1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	point := func(i int, s float64) (int32, int32) {
		x := graphX + int32(float32(graphWidth)*float32(i)/float32(len(scores)-1))
		y := graphY + graphHeight - int32(float32(graphHeight)*float32(s)/float32(maxScore))
		return x, y
	}
	for i := 1; i < len(scores); i++ {
		x1, y1 := point(i-1, float64(scores[i-1]))
		x2, y2 := point(i, float64(scores[i]))
		rl.DrawLine(x1, y1, x2, y2, tailColor)
	}

	// Dashed average
	_, avgY := point(0, snap.AverageScore)
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}
