package ui

import (
	"strconv"

	"snake-arcade/game"
	"snake-arcade/game/sprite"
	"snake-arcade/game/types"
	"snake-arcade/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	BackgroundColor = rl.Color{R: 175, G: 215, B: 70, A: 255}
	panelColor      = rl.Color{R: 167, G: 209, B: 61, A: 255}
	inkColor        = rl.Color{R: 56, G: 74, B: 12, A: 255}
)

type Renderer struct {
	assets    *Assets
	cellSize  int32
	boardSize int32
	selector  *sprite.Selector
}

func NewRenderer(assets *Assets, grid types.Grid, cellSize int32) *Renderer {
	return &Renderer{
		assets:    assets,
		cellSize:  cellSize,
		boardSize: int32(grid.Width) * cellSize,
		selector:  sprite.NewSelector(),
	}
}

// Draw renders one frame: fruit, snake, then the score overlay.
func (r *Renderer) Draw(g *game.Session) {
	rl.BeginDrawing()
	rl.ClearBackground(BackgroundColor)

	r.drawFruit(g.GetFruit().Pos)
	r.drawSnake(g.GetSnake().Body)
	r.drawScore(g.Score())

	rl.EndDrawing()
}

func (r *Renderer) drawFruit(pos types.Point) {
	rect := layout.CellRect(pos, r.cellSize)
	rl.DrawTexture(r.assets.Apple, rect.X, rect.Y, rl.White)
}

func (r *Renderer) drawSnake(body []types.Point) {
	ids := r.selector.Select(body)
	for i, block := range body {
		if ids[i] == sprite.None {
			continue
		}
		rect := layout.CellRect(block, r.cellSize)
		rl.DrawTexture(r.assets.Sprites[ids[i]], rect.X, rect.Y, rl.White)
	}
}

func (r *Renderer) drawScore(score int) {
	text := strconv.Itoa(score)
	size := rl.MeasureTextEx(r.assets.Font, text, fontSize, 0)
	panel := layout.NewScorePanel(r.boardSize,
		int32(size.X), int32(size.Y),
		r.assets.Apple.Width, r.assets.Apple.Height)

	bg := panel.Background
	rl.DrawRectangle(bg.X, bg.Y, bg.W, bg.H, panelColor)
	rl.DrawTextEx(r.assets.Font, text,
		rl.Vector2{X: float32(panel.Text.X), Y: float32(panel.Text.Y)},
		fontSize, 0, inkColor)
	rl.DrawTexture(r.assets.Apple, panel.Icon.X, panel.Icon.Y, rl.White)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(bg.X), Y: float32(bg.Y), Width: float32(bg.W), Height: float32(bg.H)},
		2, inkColor)
}
