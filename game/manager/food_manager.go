package manager

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// ErrNoFreeCell is returned when no spawn position was found within the attempt limit
var ErrNoFreeCell = errors.New("no free cell for fruit")

// DefaultSpawnAttempts bounds the rejection sampling loop
const DefaultSpawnAttempts = 512

type FoodManager struct {
	grid         types.Grid
	fruit        entity.Fruit
	collisionMgr *CollisionManager
	rng          *rand.Rand
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64, maxAttempts int) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSpawnAttempts
	}
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
		maxAttempts:  maxAttempts,
	}
}

// Update places a fruit when none is on the board. It reports whether a fruit was spawned.
func (fm *FoodManager) Update(snake *entity.Snake, tail *entity.Tail) (bool, error) {
	if fm.fruit.Present {
		return false, nil
	}
	food, err := fm.GenerateFood(snake, tail)
	if err != nil {
		return false, err
	}
	fm.fruit.Place(food)
	return true, nil
}

// GenerateFood draws uniform cells inside the walls until one is clear of the snake
func (fm *FoodManager) GenerateFood(snake *entity.Snake, tail *entity.Tail) (types.Point, error) {
	occupied := 0
	if snake != nil && snake.Active {
		occupied++
	}
	if tail != nil {
		occupied += tail.Len()
	}
	if occupied >= fm.grid.Cells() {
		return types.Point{}, fmt.Errorf("%w: %d of %d cells occupied", ErrNoFreeCell, occupied, fm.grid.Cells())
	}

	span := fm.grid.SpawnSpan()
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food := types.Point{
			X: fm.rng.Intn(2*span+1) - span,
			Y: fm.rng.Intn(2*span+1) - span,
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake, tail) {
			return food, nil
		}
	}
	return types.Point{}, fmt.Errorf("%w after %d attempts", ErrNoFreeCell, fm.maxAttempts)
}

// Fruit returns the current fruit
func (fm *FoodManager) Fruit() entity.Fruit {
	return fm.fruit
}

// PlaceFood puts the fruit at a fixed cell, replacing any existing one
func (fm *FoodManager) PlaceFood(food types.Point) {
	fm.fruit.Place(food)
}

// RemoveFood takes the fruit off the board
func (fm *FoodManager) RemoveFood() {
	fm.fruit.Remove()
}
