package game

import (
	"log"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Effects plays the sounds triggered by the game state.
type Effects interface {
	PlayCrunch()
}

type silent struct{}

func (silent) PlayCrunch() {}

// Session owns the snake and the fruit for the lifetime of the program.
// A failed run resets the snake in place; the session itself never ends.
type Session struct {
	Grid       types.Grid
	snake      *entity.Snake
	fruit      *entity.Fruit
	collisions *manager.CollisionManager
	state      *manager.StateManager
	effects    Effects
}

// NewSession creates a session on grid. A nil effects plays nothing.
func NewSession(grid types.Grid, rng *rand.Rand, effects Effects) *Session {
	if effects == nil {
		effects = silent{}
	}
	return &Session{
		Grid:       grid,
		snake:      entity.NewSnake(grid),
		fruit:      entity.NewFruit(grid, rng),
		collisions: manager.NewCollisionManager(grid),
		state:      manager.NewStateManager(),
		effects:    effects,
	}
}

func (s *Session) GetSnake() *entity.Snake {
	return s.snake
}

func (s *Session) GetFruit() *entity.Fruit {
	return s.fruit
}

func (s *Session) GetStateManager() *manager.StateManager {
	return s.state
}

func (s *Session) Score() int {
	return s.snake.Score()
}

// SetDirection forwards an already accepted direction to the snake.
func (s *Session) SetDirection(dir types.Point) {
	s.snake.SetDirection(dir)
}

// Update advances the game by one tick: move, eat, then fail and reset.
func (s *Session) Update() {
	if !s.snake.Idle() {
		s.state.StartRun()
	}

	s.snake.Move()

	if s.collisions.IsFoodCollision(s.snake.GetHead(), s.fruit.Pos) {
		s.fruit.Randomize()
		s.snake.Grow()
		s.effects.PlayCrunch()
	}

	if cause := s.collisions.CheckCollision(s.snake); cause != manager.NoCollision {
		if rec, ok := s.state.EndRun(s.snake.Score(), cause); ok {
			log.Printf("run %s over: score=%d cause=%s after %s (best %d)",
				rec.ID, rec.Score, rec.Cause, rec.Duration().Round(time.Millisecond), s.state.GetHighScore())
		}
		s.snake.Reset()
	}
}
