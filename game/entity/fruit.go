package entity

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Fruit is the single piece of food on the board. It may land on the snake.
type Fruit struct {
	Pos  types.Point
	grid types.Grid
	rng  *rand.Rand
}

// NewFruit places a fruit at a random cell drawn from rng.
func NewFruit(grid types.Grid, rng *rand.Rand) *Fruit {
	f := &Fruit{grid: grid, rng: rng}
	f.Randomize()
	return f
}

func (f *Fruit) Randomize() {
	x := f.rng.Intn(f.grid.Width)
	y := f.rng.Intn(f.grid.Height)
	f.Pos = types.Point{X: x, Y: y}
}
