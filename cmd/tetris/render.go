package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

const (
	margin       = 20
	sidebarWidth = 160
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridColor       = color.RGBA{45, 45, 58, 255}
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.KindJ: {66, 103, 245, 255},
	tetris.KindT: {170, 80, 230, 255},
	tetris.KindL: {245, 150, 50, 255},
	tetris.KindS: {90, 210, 90, 255},
	tetris.KindI: {80, 215, 235, 255},
	tetris.KindO: {240, 215, 70, 255},
	tetris.KindZ: {235, 70, 80, 255},
}

// layout holds the pixel geometry of the well and sidebar.
type layout struct {
	cols, rows   int
	cell         float32
	wellX, wellY float32
	sideX        float32

	screenWidth, screenHeight int
}

func newLayout(cols, rows, cellSize int) layout {
	wellW := cols * cellSize
	wellH := rows * cellSize
	return layout{
		cols:         cols,
		rows:         rows,
		cell:         float32(cellSize),
		wellX:        margin,
		wellY:        margin,
		sideX:        float32(margin*2 + wellW),
		screenWidth:  margin*3 + wellW + sidebarWidth,
		screenHeight: margin*2 + wellH,
	}
}

// cellRect returns the top-left pixel of board cell (x, y).
func (l layout) cellRect(x, y int) (float32, float32) {
	return l.wellX + float32(x)*l.cell, l.wellY + float32(y)*l.cell
}

func tileColor(t engine.Tile) color.RGBA {
	c, ok := kindColors[t.Kind]
	if !ok {
		c = color.RGBA{200, 200, 200, 255}
	}
	if t.Layer == engine.LayerGhost {
		c.A = 70
		c.R, c.G, c.B = c.R/4, c.G/4, c.B/4
	}
	return c
}

func drawGame(screen *ebiten.Image, game *tetris.Game, l layout) {
	screen.Fill(backgroundColor)

	wellW := float32(l.cols) * l.cell
	wellH := float32(l.rows) * l.cell
	vector.DrawFilledRect(screen, l.wellX, l.wellY, wellW, wellH, wellColor, false)
	for x := 0; x <= l.cols; x++ {
		px := l.wellX + float32(x)*l.cell
		vector.StrokeLine(screen, px, l.wellY, px, l.wellY+wellH, 1, gridColor, false)
	}
	for y := 0; y <= l.rows; y++ {
		py := l.wellY + float32(y)*l.cell
		vector.StrokeLine(screen, l.wellX, py, l.wellX+wellW, py, 1, gridColor, false)
	}

	for _, t := range engine.Project(game) {
		x, y := l.cellRect(t.X, t.Y)
		drawCell(screen, x, y, l.cell, tileColor(t))
	}

	drawSidebar(screen, game, l)
}

func drawCell(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, c, false)
	if c.A == 255 {
		vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 1, color.RGBA{0, 0, 0, 120}, false)
	}
}

func drawSidebar(screen *ebiten.Image, game *tetris.Game, l layout) {
	x := int(l.sideX)
	y := int(l.wellY)

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	preview := l.cell * 0.75
	for _, t := range engine.PreviewTiles(game) {
		px := l.sideX + float32(t.X)*preview
		py := l.wellY + 20 + float32(t.Y)*preview
		drawCell(screen, px, py, preview, tileColor(t))
	}

	y += 20 + int(preview*5)
	stats := game.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", game.Score()), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", stats.Lines), x, y+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", stats.Pieces), x, y+32)

	y += 64
	switch game.State() {
	case tetris.StateNotStarted:
		ebitenutil.DebugPrintAt(screen, "Press ENTER\nto start", x, y)
	case tetris.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nENTER to restart", x, y)
	default:
		ebitenutil.DebugPrintAt(screen, "<- -> move\nUP/X Z rotate\nDOWN soft drop\nSPACE hard drop\nR reset", x, y)
	}
}
