package ai

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// QTable maps a state key to one value per relative action
type QTable map[string][]float64

// Rewards handed to the learner after each observed tick
const (
	RewardFruit = 1.0
	RewardDeath = -1.0
	RewardStep  = -0.01
)

// Learner is a tabular Q-learning pilot. The table lives in memory for the
// duration of the process.
type Learner struct {
	QTable         QTable
	LearningRate   float64
	Discount       float64
	Epsilon        float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64
	Episode        int

	rng       *rand.Rand
	lastState string
	lastAct   Action
	hasLast   bool
	choice    types.Direction
	active    bool
}

func NewLearner(learningRate, discount float64, seed uint64) *Learner {
	return &Learner{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.05,
		EpsilonDecay:   0.995,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// StateKey encodes the sensors as danger on each side plus the food direction
// relative to the heading
func StateKey(s *Sensors) string {
	left := s.DangerDistance(s.Heading.TurnLeft()) == 1
	front := s.DangerDistance(s.Heading) == 1
	right := s.DangerDistance(s.Heading.TurnRight()) == 1

	ahead, side := 0, 0
	if s.HasFruit {
		d := types.Point{X: s.Fruit.X - s.Head.X, Y: s.Fruit.Y - s.Head.Y}
		fwd := s.Heading.Offset()
		rgt := s.Heading.TurnRight().Offset()
		ahead = sign(d.X*fwd.X + d.Y*fwd.Y)
		side = sign(d.X*rgt.X + d.Y*rgt.Y)
	}
	return fmt.Sprintf("%t:%t:%t|%d:%d", left, front, right, ahead, side)
}

// Observe learns from the last tick and picks the next move
func (l *Learner) Observe(snap game.Snapshot, r game.Report) {
	if r.Restarted {
		l.hasLast = false
	}
	if !r.Ticked && !r.GameOver && l.active {
		return
	}

	if r.GameOver {
		if l.hasLast {
			l.update(l.lastState, l.lastAct, RewardDeath, "", true)
		}
		l.hasLast = false
		l.active = false
		l.IncrementEpisode()
		return
	}
	if !snap.Playing || !snap.HasSnake {
		l.active = false
		return
	}

	s := Sense(snap)
	state := StateKey(s)
	if l.hasLast {
		reward := RewardStep
		if r.Ate {
			reward = RewardFruit
		}
		l.update(l.lastState, l.lastAct, reward, state, false)
	}

	act := l.GetAction(state)
	l.lastState, l.lastAct, l.hasLast = state, act, true
	l.choice = act.Apply(s.Heading)
	l.active = true
}

func (l *Learner) Pressed(d types.Direction) bool {
	return l.active && d == l.choice
}

// GetAction selects an action with an epsilon-greedy policy
func (l *Learner) GetAction(state string) Action {
	if l.rng.Float64() < l.Epsilon {
		return Actions[l.rng.Intn(len(Actions))]
	}
	return l.bestAction(state)
}

// IncrementEpisode decays exploration after a finished round
func (l *Learner) IncrementEpisode() {
	l.Episode++
	l.Epsilon = l.InitialEpsilon * math.Pow(l.EpsilonDecay, float64(l.Episode))
	if l.Epsilon < l.MinEpsilon {
		l.Epsilon = l.MinEpsilon
	}
}

// Q(s,a) = Q(s,a) + α [r + γ max_a' Q(s',a') - Q(s,a)]
func (l *Learner) update(state string, act Action, reward float64, next string, terminal bool) {
	q := l.values(state)
	target := reward
	if !terminal {
		target += l.Discount * l.maxValue(next)
	}
	q[act] += l.LearningRate * (target - q[act])
}

func (l *Learner) values(state string) []float64 {
	q, ok := l.QTable[state]
	if !ok {
		q = make([]float64, len(Actions))
		l.QTable[state] = q
	}
	return q
}

func (l *Learner) bestAction(state string) Action {
	q := l.values(state)
	best := Forward
	maxQ := math.Inf(-1)
	for _, act := range Actions {
		if q[act] > maxQ {
			maxQ = q[act]
			best = act
		}
	}
	return best
}

func (l *Learner) maxValue(state string) float64 {
	q, ok := l.QTable[state]
	if !ok {
		return 0
	}
	maxQ := math.Inf(-1)
	for _, v := range q {
		if v > maxQ {
			maxQ = v
		}
	}
	return maxQ
}
