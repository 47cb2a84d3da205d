package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Contact is the outcome of one collision pass
type Contact struct {
	Wall  bool
	Self  bool
	Fruit bool
}

// Fatal reports whether the pass ends the round
func (c Contact) Fatal() bool {
	return c.Wall || c.Self
}

// Cause names the collider responsible for a fatal contact
func (c Contact) Cause() types.ColliderKind {
	if c.Wall {
		return types.Solid
	}
	return types.TailSegment
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Colliders lists every body the head can touch this tick
func (cm *CollisionManager) Colliders(snake *entity.Snake, tail *entity.Tail, fruit entity.Fruit) []types.Collider {
	colliders := make([]types.Collider, 0, tail.Len()+2)
	colliders = append(colliders, types.Collider{Kind: types.SnakeHead, Position: snake.Position})
	for _, seg := range tail.Segments {
		colliders = append(colliders, types.Collider{Kind: types.TailSegment, Position: seg})
	}
	if fruit.Present {
		colliders = append(colliders, types.Collider{Kind: types.Fruit, Position: fruit.Position})
	}
	return colliders
}

// CheckCollision tests head against every collider. All checks run; the
// caller decides what a combined result means.
func (cm *CollisionManager) CheckCollision(head types.Point, colliders []types.Collider) Contact {
	var c Contact
	for _, col := range colliders {
		switch col.Kind {
		case types.SnakeHead:
			if cm.isWallCollision(col.Position) {
				c.Wall = true
			}
		case types.Solid:
			if head == col.Position {
				c.Wall = true
			}
		case types.TailSegment:
			if head == col.Position {
				c.Self = true
			}
		case types.Fruit:
			if cm.IsFoodCollision(head, col.Position) {
				c.Fruit = true
			}
		}
	}
	return c
}

// isWallCollision checks if a position is on the boundary
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return cm.grid.IsWall(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks that pos is inside the walls and clear of the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, tail *entity.Tail) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if snake != nil && snake.Active && snake.Position == pos {
		return false
	}
	return tail == nil || !tail.Contains(pos)
}
