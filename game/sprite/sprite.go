// Package sprite picks the snake artwork for each body segment from the
// offsets to its neighbours.
package sprite

import "snake-arcade/game/types"

// ID names one snake sprite. None means nothing is drawn for the segment.
type ID int

const (
	None ID = iota
	HeadUp
	HeadDown
	HeadLeft
	HeadRight
	TailUp
	TailDown
	TailLeft
	TailRight
	BodyVertical
	BodyHorizontal
	BodyTopLeft
	BodyTopRight
	BodyBottomLeft
	BodyBottomRight
)

// All lists every drawable sprite.
var All = []ID{
	HeadUp, HeadDown, HeadLeft, HeadRight,
	TailUp, TailDown, TailLeft, TailRight,
	BodyVertical, BodyHorizontal,
	BodyTopLeft, BodyTopRight, BodyBottomLeft, BodyBottomRight,
}

var names = map[ID]string{
	HeadUp:          "head_up",
	HeadDown:        "head_down",
	HeadLeft:        "head_left",
	HeadRight:       "head_right",
	TailUp:          "tail_up",
	TailDown:        "tail_down",
	TailLeft:        "tail_left",
	TailRight:       "tail_right",
	BodyVertical:    "body_vertical",
	BodyHorizontal:  "body_horizontal",
	BodyTopLeft:     "body_topleft",
	BodyTopRight:    "body_topright",
	BodyBottomLeft:  "body_bottomleft",
	BodyBottomRight: "body_bottomright",
}

// Name is the asset base name of the sprite, e.g. "head_up".
func (id ID) Name() string {
	if n, ok := names[id]; ok {
		return n
	}
	return "none"
}

func (id ID) String() string { return id.Name() }

// The head and tail face away from their neighbour: a neighbour to the right
// means the sprite points left.
var headByNeighbour = map[types.Point]ID{
	types.Right: HeadLeft,
	types.Left:  HeadRight,
	types.Down:  HeadUp,
	types.Up:    HeadDown,
}

var tailByNeighbour = map[types.Point]ID{
	types.Right: TailLeft,
	types.Left:  TailRight,
	types.Down:  TailUp,
	types.Up:    TailDown,
}

// corners is keyed by (offset to the segment behind, offset to the segment ahead).
var corners = map[[2]types.Point]ID{
	{types.Left, types.Up}:    BodyTopLeft,
	{types.Up, types.Left}:    BodyTopLeft,
	{types.Right, types.Up}:   BodyTopRight,
	{types.Up, types.Right}:   BodyTopRight,
	{types.Left, types.Down}:  BodyBottomLeft,
	{types.Down, types.Left}:  BodyBottomLeft,
	{types.Right, types.Down}: BodyBottomRight,
	{types.Down, types.Right}: BodyBottomRight,
}

// Head returns the head sprite for the offset from the head to the next segment.
func Head(rel types.Point) ID {
	return headByNeighbour[rel]
}

// Tail returns the tail sprite for the offset from the tail to the segment before it.
func Tail(rel types.Point) ID {
	return tailByNeighbour[rel]
}

// Segment returns the sprite for an interior segment given the offsets to the
// segment behind it (prev) and ahead of it (next).
func Segment(prev, next types.Point) ID {
	if prev.X == next.X {
		return BodyVertical
	}
	if prev.Y == next.Y {
		return BodyHorizontal
	}
	return corners[[2]types.Point{prev, next}]
}

// Selector remembers the last head and tail sprites so that a frame without a
// cardinal match, such as a repeated head cell while idle, keeps them.
type Selector struct {
	head ID
	tail ID
}

func NewSelector() *Selector {
	return &Selector{head: HeadRight, tail: TailLeft}
}

// Select returns one sprite per segment of body, head first.
func (s *Selector) Select(body []types.Point) []ID {
	if len(body) == 0 {
		return nil
	}
	ids := make([]ID, len(body))
	if len(body) == 1 {
		ids[0] = s.head
		return ids
	}

	if id := Head(body[1].Sub(body[0])); id != None {
		s.head = id
	}
	last := len(body) - 1
	if id := Tail(body[last-1].Sub(body[last])); id != None {
		s.tail = id
	}

	for i, block := range body {
		switch i {
		case 0:
			ids[i] = s.head
		case last:
			ids[i] = s.tail
		default:
			ids[i] = Segment(body[i+1].Sub(block), body[i-1].Sub(block))
		}
	}
	return ids
}
