package entity

import "snake-arcade/game/types"

// Tail is the ordered chain of segments behind the head, head-proximal first
type Tail struct {
	Segments []types.Point
	vacated  types.Point // Cell the chain end left on the last shift
	shifted  bool
}

// NewTail creates an empty tail
func NewTail() *Tail {
	return &Tail{Segments: make([]types.Point, 0, 16)}
}

// Len returns the number of segments
func (t *Tail) Len() int {
	return len(t.Segments)
}

// Shift moves every segment into the cell of the one ahead of it,
// the first segment taking from
func (t *Tail) Shift(from types.Point) {
	next := from
	for i := range t.Segments {
		next, t.Segments[i] = t.Segments[i], next
	}
	t.vacated = next
	t.shifted = true
}

// Grow appends one segment. An empty chain grows at anchor (the head's last
// position); otherwise the segment goes where the chain end just was.
func (t *Tail) Grow(anchor types.Point) types.Point {
	at := anchor
	if len(t.Segments) > 0 && t.shifted {
		at = t.vacated
	}
	t.Segments = append(t.Segments, at)
	t.shifted = false
	return at
}

// Contains reports whether any segment occupies p
func (t *Tail) Contains(p types.Point) bool {
	for _, s := range t.Segments {
		if s == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the segment cells
func (t *Tail) Positions() []types.Point {
	out := make([]types.Point, len(t.Segments))
	copy(out, t.Segments)
	return out
}

// Reset removes every segment
func (t *Tail) Reset() {
	t.Segments = t.Segments[:0]
	t.vacated = types.Point{}
	t.shifted = false
}
