package types

// Direction is one of the four cardinal moves
type Direction int

// Declaration order is the input tie-break order: later entries win
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in enumeration order
var Directions = [4]Direction{Up, Down, Left, Right}

var (
	offsets   = [4]Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	opposites = [4]Direction{Down, Up, Right, Left}
	lefts     = [4]Direction{Left, Right, Down, Up}
	rights    = [4]Direction{Right, Left, Up, Down}
	names     = [4]string{"up", "down", "left", "right"}
)

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Offset returns the unit step for d
func (d Direction) Offset() Point {
	if !d.Valid() {
		return Point{}
	}
	return offsets[d]
}

// Opposite returns the 180° reversal of d
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

// IsOpposite reports whether o reverses d
func (d Direction) IsOpposite(o Direction) bool {
	return d.Valid() && opposites[d] == o
}

// TurnLeft returns the direction after a 90° counter-clockwise turn
func (d Direction) TurnLeft() Direction {
	if !d.Valid() {
		return d
	}
	return lefts[d]
}

// TurnRight returns the direction after a 90° clockwise turn
func (d Direction) TurnRight() Direction {
	if !d.Valid() {
		return d
	}
	return rights[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return names[d]
}

// ParseDirection maps a lowercase name back to a Direction
func ParseDirection(s string) (Direction, bool) {
	for i, n := range names {
		if n == s {
			return Direction(i), true
		}
	}
	return Up, false
}

// DirectionSet is the set of directions pressed during one frame
type DirectionSet uint8

// With returns the set with d added
func (s DirectionSet) With(d Direction) DirectionSet {
	if !d.Valid() {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set
func (s DirectionSet) Has(d Direction) bool {
	return d.Valid() && s&(1<<uint(d)) != 0
}

// SetOf builds a set from the given directions
func SetOf(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}
