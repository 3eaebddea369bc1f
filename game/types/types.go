package types

// Point is a cell on the board, or an offset between two cells.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset that leads from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Board constants
const (
	CellNumber    = 20 // cells per side
	CellSize      = 40 // pixels per cell
	InitialLength = 3
)

// DefaultGrid is the square board every session plays on.
var DefaultGrid = Grid{Width: CellNumber, Height: CellNumber}

// Direction vectors. None is the idle direction a fresh snake starts with.
var (
	None  = Point{X: 0, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// StartBody returns a fresh copy of the canonical starting body, head first.
func StartBody() []Point {
	return []Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
}
