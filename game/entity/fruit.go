package entity

import "snake-arcade/game/types"

// Fruit is the single food item; Present is false between consumption and respawn
type Fruit struct {
	Position types.Point
	Present  bool
}

// Place puts the fruit at p
func (f *Fruit) Place(p types.Point) {
	f.Position = p
	f.Present = true
}

// Remove takes the fruit off the board
func (f *Fruit) Remove() {
	f.Present = false
}
