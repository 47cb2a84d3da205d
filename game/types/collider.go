package types

// ColliderKind classifies a body for collision testing
type ColliderKind int

const (
	Solid ColliderKind = iota // Wall or obstacle cell
	SnakeHead
	TailSegment
	Fruit
)

func (k ColliderKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case SnakeHead:
		return "head"
	case TailSegment:
		return "tail"
	case Fruit:
		return "fruit"
	default:
		return "unknown"
	}
}

// Collider is a tagged cell the collision manager iterates over
type Collider struct {
	Kind     ColliderKind
	Position Point
}
