package ai

import (
	"math"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Sensors looks at the board from where the head will be after the move
// already committed. Input sampled now only affects the move after that one.
type Sensors struct {
	Head     types.Point
	Heading  types.Direction
	Fruit    types.Point
	HasFruit bool

	grid types.Grid
	body map[types.Point]struct{}
	size int
}

// Sense builds sensors from a snapshot
func Sense(snap game.Snapshot) *Sensors {
	s := &Sensors{
		Head:     snap.Head.Add(snap.Direction.Offset()),
		Heading:  snap.Direction,
		Fruit:    snap.Fruit,
		HasFruit: snap.HasFruit,
		grid:     types.Grid{HalfWidth: snap.HalfWidth, CellSize: snap.CellSize},
		body:     make(map[types.Point]struct{}, len(snap.Tail)+1),
	}

	// The tail end moves away unless the next move eats
	keep := len(snap.Tail)
	if keep > 0 && !(snap.HasFruit && s.Head == snap.Fruit) {
		keep--
	}
	if snap.HasSnake {
		s.body[snap.Head] = struct{}{}
	}
	for _, p := range snap.Tail[:keep] {
		s.body[p] = struct{}{}
	}
	s.size = len(s.body)
	return s
}

// IsDanger checks wall and body collision for p
func (s *Sensors) IsDanger(p types.Point) bool {
	if !s.grid.Contains(p) {
		return true
	}
	_, hit := s.body[p]
	return hit
}

// Doomed reports whether the committed move already ends the round
func (s *Sensors) Doomed() bool {
	return s.IsDanger(s.Head)
}

// DangerDistance returns how many steps along dir until the first collision (1 = next cell)
func (s *Sensors) DangerDistance(dir types.Direction) int {
	p := s.Head
	for dist := 1; ; dist++ {
		p = p.Add(dir.Offset())
		if s.IsDanger(p) {
			return dist
		}
	}
}

// DirectionalInfo combines danger and food into one value in [-1, 1] for a move along dir
func (s *Sensors) DirectionalInfo(dir types.Direction) float64 {
	next := s.Head.Add(dir.Offset())

	dist := s.DangerDistance(dir)
	if dist == 1 {
		return -1.0
	}
	danger := -1.0 / float64(dist)

	if !s.HasFruit {
		return danger
	}
	if next == s.Fruit {
		return 1.0
	}

	foodDist := types.Manhattan(next, s.Fruit)
	currentDist := types.Manhattan(s.Head, s.Fruit)
	switch {
	case foodDist < currentDist:
		return math.Max(danger, 0.5)
	case foodDist > currentDist:
		return math.Min(danger, -0.3)
	default:
		return danger
	}
}

// StateInfo returns the combined values for the three moves that are not a reversal
func (s *Sensors) StateInfo() (left, front, right float64) {
	left = s.DirectionalInfo(s.Heading.TurnLeft())
	front = s.DirectionalInfo(s.Heading)
	right = s.DirectionalInfo(s.Heading.TurnRight())
	return
}

// FreeSpace counts the cells reachable from start, stopping at limit
func (s *Sensors) FreeSpace(start types.Point, limit int) int {
	if s.IsDanger(start) {
		return 0
	}
	seen := map[types.Point]struct{}{start: {}}
	queue := []types.Point{start}
	for len(queue) > 0 {
		if len(seen) >= limit {
			return limit
		}
		p := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			n := p.Add(d.Offset())
			if _, ok := seen[n]; ok || s.IsDanger(n) {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	if len(seen) > limit {
		return limit
	}
	return len(seen)
}

// BodySize returns the number of occupied cells after the committed move, head excluded
func (s *Sensors) BodySize() int {
	return s.size
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
