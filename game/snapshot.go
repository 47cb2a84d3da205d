package game

import (
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Snapshot is a read-only copy of everything a frontend draws
type Snapshot struct {
	Head      types.Point
	Direction types.Direction
	Tail      []types.Point
	Fruit     types.Point
	HasFruit  bool
	HasSnake  bool

	Score        uint
	Playing      bool
	Phase        manager.Phase
	RecentScores []uint
	RoundID      string

	GamesPlayed  int
	BestScore    uint
	AverageScore float64
	History      []uint // Scores of the retained finished rounds, oldest first

	HalfWidth int
	CellSize  float64
	Tick      uint64
	Progress  float64 // Fraction of the current tick period already elapsed
	Now       time.Duration
}

// Snapshot copies the current state. Nothing in it aliases simulation memory.
func (s *Simulation) Snapshot() Snapshot {
	snake := s.popManager.GetSnake()
	fruit := s.foodManager.Fruit()
	return Snapshot{
		Head:      snake.Position,
		Direction: snake.Direction,
		Tail:      s.popManager.GetTail().Positions(),
		Fruit:     fruit.Position,
		HasFruit:  fruit.Present,
		HasSnake:  snake.Active,

		Score:        s.stateManager.GetScore(),
		Playing:      s.stateManager.IsPlaying(),
		Phase:        s.stateManager.GetPhase(),
		RecentScores: s.stateManager.GetRecentScores(),
		RoundID:      s.stateManager.GetRoundID(),

		GamesPlayed:  s.statsManager.GetGamesPlayed(),
		BestScore:    s.statsManager.GetMaxScore(),
		AverageScore: s.statsManager.GetAverageScore(),
		History:      s.history(),

		HalfWidth: s.grid.HalfWidth,
		CellSize:  s.grid.CellSize,
		Tick:      s.ticker.Ticks(),
		Progress:  s.ticker.Progress(),
		Now:       s.now,
	}
}

// Cells returns every occupied cell, head first, then tail, then fruit
func (sn Snapshot) Cells() []types.Point {
	cells := make([]types.Point, 0, len(sn.Tail)+2)
	if sn.HasSnake {
		cells = append(cells, sn.Head)
	}
	cells = append(cells, sn.Tail...)
	if sn.HasFruit {
		cells = append(cells, sn.Fruit)
	}
	return cells
}

func (s *Simulation) history() []uint {
	records := s.statsManager.GetRecords()
	scores := make([]uint, len(records))
	for i, r := range records {
		scores[i] = r.Score
	}
	return scores
}
