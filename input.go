package main

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var arrowKeys = map[int32]types.Point{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

// pollKeys queues a direction command for every bound key pressed since the
// last frame, in the order raylib received them.
func pollKeys(router *game.InputRouter, queue *game.Queue) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := router.Lookup(key); ok {
			queue.Push(game.Turn(dir))
		}
	}
}
