package game

import (
	"errors"
	"fmt"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

var (
	ErrInvalidPlayArea    = errors.New("play area must be positive")
	ErrInvalidCellSize    = errors.New("cell size must be positive")
	ErrGridTooSmall       = errors.New("grid leaves no room inside the walls")
	ErrInvalidTickPeriod  = errors.New("tick period must be positive")
	ErrInvalidScoreTable  = errors.New("recent scores capacity must be positive")
	ErrInvalidRestartWait = errors.New("restart delay cannot be negative")
)

// Config holds the simulation constants. They are fixed for the life of a Simulation.
type Config struct {
	PlayArea      float64
	CellSize      float64
	TickPeriod    time.Duration
	RecentScores  int
	SpawnAttempts int
	RestartDelay  time.Duration
	Seed          uint64 // 0 picks a time based seed
}

func DefaultConfig() Config {
	return Config{
		PlayArea:      600,
		CellSize:      25,
		TickPeriod:    250 * time.Millisecond,
		RecentScores:  manager.DefaultRecentScores,
		SpawnAttempts: manager.DefaultSpawnAttempts,
	}
}

// Grid returns the cell geometry derived from the play area
func (c Config) Grid() types.Grid {
	return types.NewGrid(c.PlayArea, c.CellSize)
}

// Validate checks the constants before any entity is created
func (c Config) Validate() error {
	if c.PlayArea <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPlayArea, c.PlayArea)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCellSize, c.CellSize)
	}
	if g := c.Grid(); !g.Contains(manager.StartPosition) {
		return fmt.Errorf("%w: half-width %d", ErrGridTooSmall, g.HalfWidth)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTickPeriod, c.TickPeriod)
	}
	if c.RecentScores <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScoreTable, c.RecentScores)
	}
	if c.RestartDelay < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRestartWait, c.RestartDelay)
	}
	return nil
}
