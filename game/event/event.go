// Package event carries simulation notifications between managers.
//
// Each event type has its own queue. Producers push during a frame and the
// simulation drains every queue exactly once, in a fixed order, so a consumer
// never feeds back into a queue that was already drained in the same frame.
package event

import "snake-arcade/game/types"

// MoveTail is emitted after the head moves
// Trigger: Snake tick | Consumer: Tail shift
type MoveTail struct {
	From types.Point // Cell the head vacated
}

// GrowTail is emitted when the head lands on the fruit
// Trigger: CollisionManager | Consumer: Tail growth
type GrowTail struct{}

// GameOver is emitted at most once per tick on a wall or self hit
// Trigger: CollisionManager | Consumer: StateManager
type GameOver struct {
	Cause types.ColliderKind
	At    types.Point
}

// Restart asks for a fresh round
// Trigger: StateManager after GameOver, or an explicit request | Consumer: StateManager
type Restart struct{}

// Queue is a FIFO of one event type, owned by the simulation goroutine
type Queue[T any] struct {
	items []T
}

// Push appends an event
func (q *Queue[T]) Push(ev T) {
	q.items = append(q.items, ev)
}

// Drain returns pending events in FIFO order and empties the queue
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the pending count
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops everything pending
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
}

// Bus groups the queues the simulation drains each frame
type Bus struct {
	MoveTail Queue[MoveTail]
	GrowTail Queue[GrowTail]
	GameOver Queue[GameOver]
	Restart  Queue[Restart]
}

// Reset clears every queue
func (b *Bus) Reset() {
	b.MoveTail.Clear()
	b.GrowTail.Clear()
	b.GameOver.Clear()
	b.Restart.Clear()
}
