package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestSnakeReset(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: -6}, types.Right)

	if s.Position != (types.Point{X: 0, Y: -6}) {
		t.Errorf("expected start (0,-6), got %v", s.Position)
	}
	if s.LastPosition != (types.Point{X: -1, Y: -6}) {
		t.Errorf("expected last position (-1,-6), got %v", s.LastPosition)
	}
	if s.Direction != types.Right || s.Pending != types.Right {
		t.Errorf("expected Right/Right, got %v/%v", s.Direction, s.Pending)
	}
	if !s.Active || s.Locked {
		t.Errorf("expected active and unlocked, got active=%v locked=%v", s.Active, s.Locked)
	}
}

func TestSnakeAdvance(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: -6}, types.Right)
	s.Locked = true

	vacated := s.Advance()

	if vacated != (types.Point{X: 0, Y: -6}) {
		t.Errorf("expected vacated (0,-6), got %v", vacated)
	}
	if s.Position != (types.Point{X: 1, Y: -6}) {
		t.Errorf("expected (1,-6), got %v", s.Position)
	}
	if s.LastPosition != vacated {
		t.Errorf("LastPosition %v should equal vacated %v", s.LastPosition, vacated)
	}
	if s.Locked {
		t.Error("Advance should release the movement lock")
	}
}

func TestSnakeSteerRejectsReversal(t *testing.T) {
	tests := []struct {
		name      string
		committed types.Direction
		pressed   types.DirectionSet
		want      types.Direction
	}{
		{"reverse ignored", types.Right, types.SetOf(types.Left), types.Right},
		{"perpendicular accepted", types.Right, types.SetOf(types.Up), types.Up},
		{"same direction", types.Right, types.SetOf(types.Right), types.Right},
		{"reverse with perpendicular", types.Right, types.SetOf(types.Left, types.Down), types.Down},
		{"last in order wins", types.Right, types.SetOf(types.Up, types.Down), types.Down},
		{"vertical reverse ignored", types.Up, types.SetOf(types.Down), types.Up},
		{"all pressed", types.Up, types.SetOf(types.Up, types.Down, types.Left, types.Right), types.Right},
		{"nothing pressed", types.Left, 0, types.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(types.Point{}, tt.committed)
			s.Steer(tt.pressed)
			if s.Pending != tt.want {
				t.Errorf("expected pending %v, got %v", tt.want, s.Pending)
			}
		})
	}
}

func TestSnakeCommitOncePerTick(t *testing.T) {
	s := NewSnake(types.Point{}, types.Right)

	s.Steer(types.SetOf(types.Up))
	if !s.Commit() {
		t.Fatal("expected first commit to change direction")
	}
	if s.Direction != types.Up {
		t.Fatalf("expected Up, got %v", s.Direction)
	}

	// Left is not a reversal of Up, but the lock holds it until the next tick
	s.Steer(types.SetOf(types.Left))
	if s.Commit() {
		t.Error("second commit in the same tick should be refused")
	}
	if s.Direction != types.Up {
		t.Errorf("expected direction to stay Up, got %v", s.Direction)
	}
	if s.Pending != types.Left {
		t.Errorf("expected pending Left, got %v", s.Pending)
	}

	s.Advance()
	if !s.Commit() || s.Direction != types.Left {
		t.Errorf("expected Left after the next tick, got %v", s.Direction)
	}
}

func TestSnakeCannotReverseAcrossOneTick(t *testing.T) {
	s := NewSnake(types.Point{}, types.Right)
	s.Commit()

	// Up then Left inside the same tick: Left is checked against the committed Right
	s.Steer(types.SetOf(types.Up))
	s.Steer(types.SetOf(types.Left))
	if s.Pending != types.Up {
		t.Errorf("expected pending Up, got %v", s.Pending)
	}
}

func TestTailShift(t *testing.T) {
	tail := NewTail()
	tail.Segments = append(tail.Segments,
		types.Point{X: 2, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 0})

	tail.Shift(types.Point{X: 3, Y: 0})

	want := []types.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	for i, p := range tail.Segments {
		if p != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], p)
		}
	}
}

func TestTailGrowEmpty(t *testing.T) {
	tail := NewTail()
	anchor := types.Point{X: 0, Y: -6}

	tail.Shift(anchor)
	at := tail.Grow(anchor)

	if at != anchor || tail.Len() != 1 || tail.Segments[0] != anchor {
		t.Errorf("expected single segment at %v, got %v", anchor, tail.Segments)
	}
}

func TestTailGrowKeepsChainDistinct(t *testing.T) {
	tail := NewTail()
	head := types.Point{X: 0, Y: 0}

	for i := 0; i < 6; i++ {
		vacated := head
		head = head.Add(types.Right.Offset())
		tail.Shift(vacated)
		tail.Grow(vacated)

		seen := make(map[types.Point]bool)
		for _, p := range tail.Segments {
			if seen[p] {
				t.Fatalf("step %d: duplicate segment %v in %v", i, p, tail.Segments)
			}
			seen[p] = true
		}
		if tail.Len() != i+1 {
			t.Fatalf("step %d: expected %d segments, got %d", i, i+1, tail.Len())
		}
		if tail.Segments[0] != vacated {
			t.Fatalf("step %d: first segment should follow the head, got %v", i, tail.Segments[0])
		}
	}
}

func TestTailResetAndContains(t *testing.T) {
	tail := NewTail()
	tail.Grow(types.Point{X: 4, Y: 4})
	if !tail.Contains(types.Point{X: 4, Y: 4}) {
		t.Error("expected tail to contain (4,4)")
	}

	positions := tail.Positions()
	positions[0] = types.Point{X: 9, Y: 9}
	if tail.Segments[0] == positions[0] {
		t.Error("Positions should return a copy")
	}

	tail.Reset()
	if tail.Len() != 0 || tail.Contains(types.Point{X: 4, Y: 4}) {
		t.Error("expected empty tail after Reset")
	}
}

func TestFruitPlaceRemove(t *testing.T) {
	var f Fruit
	f.Place(types.Point{X: 1, Y: -6})
	if !f.Present || f.Position != (types.Point{X: 1, Y: -6}) {
		t.Errorf("unexpected fruit state %+v", f)
	}
	f.Remove()
	if f.Present {
		t.Error("expected fruit removed")
	}
}
