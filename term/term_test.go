package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

func TestCellPos(t *testing.T) {
	tests := []struct {
		p        types.Point
		col, row int
	}{
		{types.Point{X: 0, Y: 0}, 22, 11},
		{types.Point{X: -11, Y: 11}, 0, 0},
		{types.Point{X: 11, Y: -11}, 44, 22},
		{types.Point{X: 1, Y: 1}, 24, 10},
	}
	for _, tt := range tests {
		col, row := CellPos(11, tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("CellPos(%v) = (%d,%d), want (%d,%d)", tt.p, col, row, tt.col, tt.row)
		}
	}
}

func TestDrainKeys(t *testing.T) {
	k := NewKeys(8)
	k.Push(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	k.Push(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	k.Push(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	k.Push(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))

	cmds := k.Drain()
	if len(cmds) != 2 || cmds[0] != CmdPause || cmds[1] != CmdAutopilot {
		t.Errorf("unexpected commands %v", cmds)
	}
	if !k.Pressed(types.Up) || !k.Pressed(types.Left) || k.Pressed(types.Down) {
		t.Error("pressed set does not match the drained keys")
	}

	// Terminals never report releases
	k.Drain()
	if k.Pressed(types.Up) || k.Pressed(types.Left) {
		t.Error("keys should be released on the next frame")
	}
}

func TestKeyCommands(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CmdQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CmdQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), CmdRestart},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), CmdPause},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.ev); got != tt.want {
				t.Errorf("keyCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPushDropsWhenFull(t *testing.T) {
	k := NewKeys(1)
	k.Push(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	k.Push(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if cmds := k.Drain(); len(cmds) != 1 || cmds[0] != CmdRestart {
		t.Errorf("expected only the first event, got %v", cmds)
	}
}

func TestDrainResize(t *testing.T) {
	k := NewKeys(4)
	k.Push(tcell.NewEventResize(80, 24))
	k.Drain()
	if !k.Resized() {
		t.Error("expected a resize")
	}
}

func readRow(screen tcell.Screen, row, width int) string {
	var b strings.Builder
	for col := 0; col < width; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRendererDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(100, 30)

	snap := game.Snapshot{
		Head:         types.Point{X: 0, Y: 0},
		Direction:    types.Right,
		Tail:         []types.Point{{X: -1, Y: 0}},
		Fruit:        types.Point{X: 2, Y: 0},
		HasFruit:     true,
		HasSnake:     true,
		Playing:      true,
		Score:        7,
		RecentScores: []uint{7, 3, 0},
		HalfWidth:    5,
		CellSize:     25,
	}
	NewRenderer(screen).Draw(snap, "")

	row := readRow(screen, 5, 22)
	if !strings.HasPrefix(row, "██") || !strings.HasSuffix(row, "██") {
		t.Errorf("expected walls at both ends of the row, got %q", row)
	}
	if !strings.Contains(row, "■■▶ ") || !strings.Contains(row, "●") {
		t.Errorf("expected tail, head and fruit in %q", row)
	}
	if panel := readRow(screen, 0, 40); !strings.Contains(panel, "Score: 7") {
		t.Errorf("expected the score in the panel, got %q", panel)
	}
}

func TestRendererGameOver(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(100, 30)

	snap := game.Snapshot{HalfWidth: 5, CellSize: 25}
	NewRenderer(screen).Draw(snap, "Paused")

	if row := readRow(screen, 5, 22); !strings.Contains(row, "GAME OVER") {
		t.Errorf("expected the game over banner, got %q", row)
	}
	if row := readRow(screen, 7, 22); !strings.Contains(row, "Paused") {
		t.Errorf("expected the overlay, got %q", row)
	}
}
