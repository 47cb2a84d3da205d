package entity

import "snake-arcade/game/types"

// Snake is the player's head. The tail is kept separately in Tail.
type Snake struct {
	Position     types.Point
	LastPosition types.Point // Cell vacated on the most recent tick
	Direction    types.Direction
	Pending      types.Direction // Next direction, committed at most once per tick
	Locked       bool            // Set once Pending has been committed for this tick
	Active       bool
}

// NewSnake creates an active snake at start facing dir
func NewSnake(start types.Point, dir types.Direction) *Snake {
	s := &Snake{}
	s.Reset(start, dir)
	return s
}

// Reset puts the snake back at start facing dir, as if it had just stepped there
func (s *Snake) Reset(start types.Point, dir types.Direction) {
	s.Position = start
	s.LastPosition = start.Add(dir.Opposite().Offset())
	s.Direction = dir
	s.Pending = dir
	s.Locked = false
	s.Active = true
}

// Deactivate removes the snake from play without discarding it
func (s *Snake) Deactivate() {
	s.Active = false
	s.Locked = false
}

// Advance moves the head one cell along the committed direction and
// returns the vacated cell. It is the only writer of Position.
func (s *Snake) Advance() types.Point {
	s.LastPosition = s.Position
	s.Position = s.Position.Add(s.Direction.Offset())
	s.Locked = false
	return s.LastPosition
}

// Steer picks the pending direction from this frame's pressed set.
// Directions are visited in enumeration order so the last accepted one wins;
// a reversal of the committed direction is never accepted.
func (s *Snake) Steer(pressed types.DirectionSet) {
	for _, d := range types.Directions {
		if !pressed.Has(d) {
			continue
		}
		if s.Direction.IsOpposite(d) {
			continue
		}
		s.Pending = d
	}
}

// Commit applies Pending if nothing was committed since the last tick
func (s *Snake) Commit() bool {
	if s.Locked {
		return false
	}
	changed := s.Direction != s.Pending
	s.Direction = s.Pending
	s.Locked = true
	return changed
}

// NextPosition returns where the head would land on the next tick
func (s *Snake) NextPosition() types.Point {
	return s.Position.Add(s.Direction.Offset())
}
