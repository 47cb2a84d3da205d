package types

import "testing"

func TestNewGridHalfWidth(t *testing.T) {
	tests := []struct {
		playArea, cellSize float64
		want               int
	}{
		{600, 25, 12},
		{550, 25, 11},
		{100, 10, 5},
		{30, 20, 1},
	}
	for _, tt := range tests {
		g := NewGrid(tt.playArea, tt.cellSize)
		if g.HalfWidth != tt.want {
			t.Errorf("NewGrid(%v, %v).HalfWidth = %d, expected %d", tt.playArea, tt.cellSize, g.HalfWidth, tt.want)
		}
	}
}

func TestGridWallAndContains(t *testing.T) {
	g := NewGrid(550, 25)

	tests := []struct {
		p        Point
		wall     bool
		contains bool
	}{
		{Point{0, 0}, false, true},
		{Point{10, -10}, false, true},
		{Point{11, 0}, true, false},
		{Point{0, -11}, true, false},
		{Point{-11, 11}, true, false},
		{Point{12, 0}, false, false},
	}
	for _, tt := range tests {
		if got := g.IsWall(tt.p); got != tt.wall {
			t.Errorf("IsWall(%v) = %v, expected %v", tt.p, got, tt.wall)
		}
		if got := g.Contains(tt.p); got != tt.contains {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.contains)
		}
	}
}

func TestGridCells(t *testing.T) {
	if got := NewGrid(600, 25).Cells(); got != 23*23 {
		t.Errorf("expected %d interior cells, got %d", 23*23, got)
	}
	if got := (Grid{HalfWidth: 0, CellSize: 1}).Cells(); got != 0 {
		t.Errorf("expected 0 cells for a degenerate grid, got %d", got)
	}
}

func TestToPixel(t *testing.T) {
	g := NewGrid(600, 25)
	x, y := g.ToPixel(Point{X: 3, Y: -6})
	if x != 75 || y != -150 {
		t.Errorf("expected (75, -150), got (%v, %v)", x, y)
	}
}

func TestDirectionTables(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		if !d.IsOpposite(d.Opposite()) {
			t.Errorf("%v: IsOpposite(%v) should be true", d, d.Opposite())
		}
		if d.IsOpposite(d) {
			t.Errorf("%v should not be opposite to itself", d)
		}
		sum := d.Offset().Add(d.Opposite().Offset())
		if sum != (Point{}) {
			t.Errorf("%v: offsets of opposites should cancel, got %v", d, sum)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right should return to start", d)
		}
		if parsed, ok := ParseDirection(d.String()); !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}

	if Up.Offset() != (Point{X: 0, Y: 1}) {
		t.Errorf("Up should move towards +Y, got %v", Up.Offset())
	}
	if Right.TurnLeft() != Up {
		t.Errorf("expected Right.TurnLeft() == Up, got %v", Right.TurnLeft())
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected unknown name to fail")
	}
}

func TestDirectionSet(t *testing.T) {
	s := SetOf(Up, Left)
	if !s.Has(Up) || !s.Has(Left) {
		t.Errorf("expected Up and Left in %08b", s)
	}
	if s.Has(Down) || s.Has(Right) {
		t.Errorf("unexpected members in %08b", s)
	}
	if s.With(Direction(9)) != s {
		t.Error("invalid directions must not change the set")
	}
}
