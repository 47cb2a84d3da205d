package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/types"
)

var keys = map[types.Direction][]int32{
	types.Up:    {rl.KeyUp, rl.KeyW},
	types.Down:  {rl.KeyDown, rl.KeyS},
	types.Left:  {rl.KeyLeft, rl.KeyA},
	types.Right: {rl.KeyRight, rl.KeyD},
}

// Keyboard reports the arrow keys and WASD as logical directions
type Keyboard struct{}

func (Keyboard) Pressed(d types.Direction) bool {
	for _, k := range keys[d] {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}
