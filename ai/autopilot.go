package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Action is a move relative to the current heading
type Action int

const (
	TurnLeft Action = iota
	Forward
	TurnRight
)

// Actions lists every relative move; Forward comes first so it wins ties
var Actions = [3]Action{Forward, TurnLeft, TurnRight}

// Apply converts a relative action into an absolute direction
func (a Action) Apply(heading types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "left"
	case Forward:
		return "forward"
	case TurnRight:
		return "right"
	default:
		return "unknown"
	}
}

// Pilot steers from snapshots. Observe is called after every Step with the
// resulting snapshot and report; Pressed is sampled by the next Step.
type Pilot interface {
	game.Input
	Observe(snap game.Snapshot, r game.Report)
}

// Autopilot is a greedy pilot: it scores each move with the directional
// sensors and avoids moves that lead into a pocket smaller than its body.
type Autopilot struct {
	choice types.Direction
	action Action
	active bool
}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Observe picks the move for the tick after the committed one
func (a *Autopilot) Observe(snap game.Snapshot, _ game.Report) {
	if !snap.Playing || !snap.HasSnake {
		a.active = false
		return
	}
	s := Sense(snap)
	a.action = a.decide(s)
	a.choice = a.action.Apply(s.Heading)
	a.active = true
}

func (a *Autopilot) decide(s *Sensors) Action {
	best := Forward
	bestScore := -1e9
	need := s.BodySize() + 1
	for _, act := range Actions {
		dir := act.Apply(s.Heading)
		score := s.DirectionalInfo(dir)
		if score > -1 {
			next := s.Head.Add(dir.Offset())
			if s.FreeSpace(next, need) < need {
				score -= 1
			}
		}
		if score > bestScore {
			best, bestScore = act, score
		}
	}
	return best
}

func (a *Autopilot) Pressed(d types.Direction) bool {
	return a.active && d == a.choice
}

// Choice returns the last decision
func (a *Autopilot) Choice() (types.Direction, Action, bool) {
	return a.choice, a.action, a.active
}
