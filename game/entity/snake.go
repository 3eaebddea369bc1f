package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player's body on the board. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	newBlock  bool
	grid      types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset puts the snake back on its starting cells, idle and without pending growth.
func (s *Snake) Reset() {
	s.Body = types.StartBody()
	s.Direction = types.None
	s.newBlock = false
}

// Move shifts the snake one cell along Direction. A pending growth keeps the
// tail in place. An idle snake still drops its tail and repeats the head cell.
func (s *Snake) Move() {
	newHead := s.GetHead().Add(s.Direction)
	var body []types.Point
	if s.newBlock {
		body = make([]types.Point, 0, len(s.Body)+1)
		body = append(body, newHead)
		body = append(body, s.Body...)
		s.newBlock = false
	} else {
		body = make([]types.Point, 0, len(s.Body))
		body = append(body, newHead)
		body = append(body, s.Body[:len(s.Body)-1]...)
	}
	s.Body = body
}

// Grow makes the next Move lengthen the snake by one cell.
func (s *Snake) Grow() {
	s.newBlock = true
}

func (s *Snake) GrowthPending() bool {
	return s.newBlock
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) SetDirection(dir types.Point) {
	s.Direction = dir
}

// Idle reports whether the snake has not been given a direction yet.
func (s *Snake) Idle() bool {
	return s.Direction == types.None
}

// OutOfBounds reports whether the head has left the board.
func (s *Snake) OutOfBounds() bool {
	return !s.grid.Contains(s.GetHead())
}

// HitsItself reports whether any segment behind the head shares its cell.
func (s *Snake) HitsItself() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

func (s *Snake) CheckSelfOrWallCollision() bool {
	return s.OutOfBounds() || s.HitsItself()
}

// Score is the number of cells grown since the last reset.
func (s *Snake) Score() int {
	return len(s.Body) - types.InitialLength
}
