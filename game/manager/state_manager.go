package manager

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"snake-arcade/game/event"
)

// DefaultRecentScores is the size of the high score table
const DefaultRecentScores = 3

// Phase is the round lifecycle state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseAwaitingRestart
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseAwaitingRestart:
		return "awaiting restart"
	default:
		return "unknown"
	}
}

// StateManager owns the score, the round lifecycle and the high score table
type StateManager struct {
	popManager   *PopulationManager
	foodManager  *FoodManager
	statsManager *StatsManager
	log          *zap.SugaredLogger

	score        uint
	playing      bool
	phase        Phase
	recentScores []uint
	roundID      string
	roundStart   time.Duration
}

func NewStateManager(popManager *PopulationManager, foodManager *FoodManager, statsManager *StatsManager, recentScores int, log *zap.SugaredLogger) *StateManager {
	if recentScores <= 0 {
		recentScores = DefaultRecentScores
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &StateManager{
		popManager:   popManager,
		foodManager:  foodManager,
		statsManager: statsManager,
		log:          log,
		phase:        PhaseAwaitingRestart,
		recentScores: make([]uint, recentScores),
	}
}

// StartRound spawns the snake at the canonical start and begins scoring
func (sm *StateManager) StartRound(now time.Duration) {
	sm.popManager.InitializePopulation()
	sm.foodManager.RemoveFood()
	sm.score = 0
	sm.playing = true
	sm.phase = PhasePlaying
	sm.roundID = uuid.NewString()
	sm.roundStart = now
	sm.log.Infow("round started", "round", sm.roundID, "at", now)
}

// AddPoint increments the score for a consumed fruit
func (sm *StateManager) AddPoint() uint {
	sm.score++
	sm.log.Debugw("fruit eaten", "round", sm.roundID, "score", sm.score)
	return sm.score
}

// HandleGameOver ends the round: ranks the score, clears the board and asks for a restart
func (sm *StateManager) HandleGameOver(ev event.GameOver, now time.Duration, bus *event.Bus) (RoundRecord, bool) {
	if !sm.playing {
		sm.log.Warnw("game over outside a round ignored", "cause", ev.Cause.String())
		return RoundRecord{}, false
	}
	sm.phase = PhaseGameOver

	record := RoundRecord{
		ID:       sm.roundID,
		Score:    sm.score,
		Start:    sm.roundStart,
		End:      now,
		Cause:    ev.Cause.String(),
		TailSize: sm.popManager.GetTail().Len(),
	}
	sm.recentScores = InsertRanked(sm.recentScores, sm.score, len(sm.recentScores))
	if sm.statsManager != nil {
		sm.statsManager.AddRound(record)
	}

	sm.log.Infow("game over",
		"round", sm.roundID,
		"cause", record.Cause,
		"at", ev.At,
		"score", record.Score,
		"recent", sm.recentScores,
	)

	sm.score = 0
	sm.playing = false
	sm.popManager.RemoveSnake()
	sm.foodManager.RemoveFood()

	bus.Restart.Push(event.Restart{})
	sm.phase = PhaseAwaitingRestart
	return record, true
}

// HandleRestart starts a new round. It is a no-op while a round is running.
func (sm *StateManager) HandleRestart(now time.Duration) bool {
	if sm.playing {
		sm.log.Debugw("restart ignored while playing", "round", sm.roundID)
		return false
	}
	sm.StartRound(now)
	return true
}

func (sm *StateManager) GetScore() uint {
	return sm.score
}

func (sm *StateManager) IsPlaying() bool {
	return sm.playing
}

func (sm *StateManager) GetPhase() Phase {
	return sm.phase
}

func (sm *StateManager) GetRoundID() string {
	return sm.roundID
}

// GetRecentScores returns a copy of the high score table, best first
func (sm *StateManager) GetRecentScores() []uint {
	out := make([]uint, len(sm.recentScores))
	copy(out, sm.recentScores)
	return out
}

// InsertRanked places score into a descending list and drops whatever falls
// past capacity. A score equal to an existing entry goes above it.
func InsertRanked(ranked []uint, score uint, capacity int) []uint {
	pos := len(ranked)
	for i, s := range ranked {
		if score >= s {
			pos = i
			break
		}
	}

	out := make([]uint, 0, len(ranked)+1)
	out = append(out, ranked[:pos]...)
	out = append(out, score)
	out = append(out, ranked[pos:]...)
	if capacity >= 0 && len(out) > capacity {
		out = out[:capacity]
	}
	return out
}
