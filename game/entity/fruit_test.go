package entity

import (
	"testing"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

func TestFruit_StaysOnBoard(t *testing.T) {
	f := NewFruit(types.DefaultGrid, rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		if !types.DefaultGrid.Contains(f.Pos) {
			t.Fatalf("fruit %v off the board", f.Pos)
		}
		f.Randomize()
	}
}

func TestFruit_SameSeedSamePositions(t *testing.T) {
	a := NewFruit(types.DefaultGrid, rand.New(rand.NewSource(42)))
	b := NewFruit(types.DefaultGrid, rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		if a.Pos != b.Pos {
			t.Fatalf("step %d: %v != %v", i, a.Pos, b.Pos)
		}
		a.Randomize()
		b.Randomize()
	}
}

func TestFruit_CoversBoard(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	f := NewFruit(grid, rand.New(rand.NewSource(1)))
	seen := make(map[types.Point]bool)
	for i := 0; i < 2000; i++ {
		seen[f.Pos] = true
		f.Randomize()
	}
	if len(seen) != 9 {
		t.Errorf("visited %d cells, want 9", len(seen))
	}
}
