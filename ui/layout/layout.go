// Package layout converts board cells and HUD elements to pixel rectangles.
package layout

import "snake-arcade/game/types"

type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Left() int32    { return r.X }
func (r Rect) Right() int32   { return r.X + r.W }
func (r Rect) CenterY() int32 { return r.Y + r.H/2 }

// CellRect is the on-screen square for cell p.
func CellRect(p types.Point, cellSize int32) Rect {
	return Rect{
		X: int32(p.X) * cellSize,
		Y: int32(p.Y) * cellSize,
		W: cellSize,
		H: cellSize,
	}
}

// centered returns a w×h rectangle whose centre is (cx, cy).
func centered(cx, cy, w, h int32) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

const (
	scoreOffsetX = 60
	scoreOffsetY = 40
	panelPadding = 6
)

// ScorePanel holds the rectangles of the score overlay.
type ScorePanel struct {
	Text       Rect
	Icon       Rect
	Background Rect
}

// NewScorePanel lays out the score text near the bottom-right corner of a
// square board of boardSize pixels, with the fruit icon on its left and a
// background panel behind both.
func NewScorePanel(boardSize, textW, textH, iconW, iconH int32) ScorePanel {
	text := centered(boardSize-scoreOffsetX, boardSize-scoreOffsetY, textW, textH)
	icon := Rect{
		X: text.Left() - iconW,
		Y: text.CenterY() - iconH/2,
		W: iconW,
		H: iconH,
	}
	bg := Rect{
		X: icon.X,
		Y: icon.Y,
		W: iconW + textW + panelPadding,
		H: iconH,
	}
	return ScorePanel{Text: text, Icon: icon, Background: bg}
}
