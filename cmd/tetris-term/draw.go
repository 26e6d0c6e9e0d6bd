package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

const (
	boardX = 1 // left border column
	boardY = 0
)

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.KindJ: tcell.NewRGBColor(66, 103, 245),
	tetris.KindT: tcell.NewRGBColor(170, 80, 230),
	tetris.KindL: tcell.NewRGBColor(245, 150, 50),
	tetris.KindS: tcell.NewRGBColor(90, 210, 90),
	tetris.KindI: tcell.NewRGBColor(80, 215, 235),
	tetris.KindO: tcell.NewRGBColor(240, 215, 70),
	tetris.KindZ: tcell.NewRGBColor(235, 70, 80),
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func tileStyle(t engine.Tile) (tcell.Style, rune) {
	c, ok := kindColors[t.Kind]
	if !ok {
		c = tcell.ColorSilver
	}
	if t.Layer == engine.LayerGhost {
		return tcell.StyleDefault.Foreground(c), '░'
	}
	return tcell.StyleDefault.Foreground(c), '█'
}

// screenCell converts a board coordinate to the left of the two terminal
// columns that draw it.
func screenCell(x, y int) (int, int) {
	return boardX + 1 + x*2, boardY + y
}

func drawGame(screen tcell.Screen, game *tetris.Game) {
	screen.Clear()
	board := game.Board()
	w, h := board.Width(), board.Height()

	left, _ := screenCell(-1, 0)
	right, _ := screenCell(w, 0)
	for y := 0; y < h; y++ {
		screen.SetContent(left+1, boardY+y, '│', nil, borderStyle)
		screen.SetContent(right, boardY+y, '│', nil, borderStyle)
	}
	screen.SetContent(left+1, boardY+h, '└', nil, borderStyle)
	screen.SetContent(right, boardY+h, '┘', nil, borderStyle)
	for x := left + 2; x < right; x++ {
		screen.SetContent(x, boardY+h, '─', nil, borderStyle)
	}

	for _, t := range engine.Project(game) {
		style, r := tileStyle(t)
		sx, sy := screenCell(t.X, t.Y)
		screen.SetContent(sx, sy, r, nil, style)
		screen.SetContent(sx+1, sy, r, nil, style)
	}

	drawSidebar(screen, game, right+3)
	screen.Show()
}

func drawSidebar(screen tcell.Screen, game *tetris.Game, x int) {
	drawText(screen, x, boardY, textStyle, "NEXT")
	for _, t := range engine.PreviewTiles(game) {
		style, r := tileStyle(t)
		screen.SetContent(x+t.X*2, boardY+1+t.Y, r, nil, style)
		screen.SetContent(x+t.X*2+1, boardY+1+t.Y, r, nil, style)
	}

	stats := game.Stats()
	y := boardY + 6
	drawText(screen, x, y, textStyle, fmt.Sprintf("SCORE  %d", game.Score()))
	drawText(screen, x, y+1, textStyle, fmt.Sprintf("LINES  %d", stats.Lines))
	drawText(screen, x, y+2, textStyle, fmt.Sprintf("PIECES %d", stats.Pieces))

	y += 4
	switch game.State() {
	case tetris.StateNotStarted:
		drawText(screen, x, y, textStyle.Bold(true), "Press ENTER to start")
	case tetris.StateGameOver:
		drawText(screen, x, y, textStyle.Foreground(tcell.ColorRed).Bold(true), "GAME OVER")
		drawText(screen, x, y+1, textStyle, "ENTER to restart")
	default:
		for i, line := range []string{
			"←/→  move",
			"E/Q  rotate",
			"↓    soft drop",
			"SPC  hard drop",
			"R    reset",
			"ESC  quit",
		} {
			drawText(screen, x, y+i, borderStyle, line)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
