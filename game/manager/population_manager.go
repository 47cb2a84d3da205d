package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Canonical spawn for every round
var (
	StartPosition  = types.Point{X: 0, Y: -6}
	StartDirection = types.Right
)

// PopulationManager owns the one snake and its tail. Both are reset in place
// between rounds so other managers can keep their pointers.
type PopulationManager struct {
	start types.Point
	dir   types.Direction
	snake *entity.Snake
	tail  *entity.Tail
}

func NewPopulationManager(start types.Point, dir types.Direction) *PopulationManager {
	pm := &PopulationManager{
		start: start,
		dir:   dir,
		snake: &entity.Snake{},
		tail:  entity.NewTail(),
	}
	return pm
}

// InitializePopulation places the snake at the start cell with an empty tail
func (pm *PopulationManager) InitializePopulation() {
	pm.snake.Reset(pm.start, pm.dir)
	pm.tail.Reset()
}

// RemoveSnake takes the snake and its tail out of play
func (pm *PopulationManager) RemoveSnake() {
	pm.snake.Deactivate()
	pm.tail.Reset()
}

// IsAlive reports whether a snake is in play
func (pm *PopulationManager) IsAlive() bool {
	return pm.snake.Active
}

func (pm *PopulationManager) GetSnake() *entity.Snake {
	return pm.snake
}

func (pm *PopulationManager) GetTail() *entity.Tail {
	return pm.tail
}
