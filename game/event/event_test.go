package event

import (
	"testing"

	"snake-arcade/game/types"
)

// TestQueueFIFO verifies drain order and that a drained queue is empty
func TestQueueFIFO(t *testing.T) {
	var q Queue[MoveTail]
	q.Push(MoveTail{From: types.Point{X: 1}})
	q.Push(MoveTail{From: types.Point{X: 2}})
	q.Push(MoveTail{From: types.Point{X: 3}})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.From.X != i+1 {
			t.Errorf("Event %d out of order: got X=%d", i, ev.From.X)
		}
	}

	if again := q.Drain(); again != nil {
		t.Errorf("Expected nil on second drain, got %v", again)
	}
}

// TestQueueDrainIsolation verifies pushes after a drain do not alter the drained batch
func TestQueueDrainIsolation(t *testing.T) {
	var q Queue[GameOver]
	q.Push(GameOver{Cause: types.Solid})
	batch := q.Drain()

	q.Push(GameOver{Cause: types.TailSegment})
	if batch[0].Cause != types.Solid {
		t.Errorf("Drained batch was overwritten: got %v", batch[0].Cause)
	}
	if q.Len() != 1 {
		t.Errorf("Expected 1 pending event, got %d", q.Len())
	}
}

func TestBusReset(t *testing.T) {
	var b Bus
	b.MoveTail.Push(MoveTail{})
	b.GrowTail.Push(GrowTail{})
	b.GameOver.Push(GameOver{})
	b.Restart.Push(Restart{})

	b.Reset()

	if b.MoveTail.Len()+b.GrowTail.Len()+b.GameOver.Len()+b.Restart.Len() != 0 {
		t.Error("Expected every queue to be empty after Reset")
	}
}
