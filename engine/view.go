package engine

import "github.com/plus3/tetra/tetris"

// Layer orders tiles for drawing; later layers paint over earlier ones.
type Layer uint8

const (
	LayerBoard Layer = iota
	LayerGhost
	LayerActive
)

func (l Layer) String() string {
	switch l {
	case LayerBoard:
		return "board"
	case LayerGhost:
		return "ghost"
	case LayerActive:
		return "active"
	default:
		return "unknown"
	}
}

// Tile is one coloured cell in board coordinates.
type Tile struct {
	X, Y  int
	Kind  tetris.Kind
	Layer Layer
}

// Project flattens the game into drawable tiles: locked cells, then the ghost
// landing position, then the falling figure. Ghost tiles are omitted where the
// figure already sits.
func Project(game *tetris.Game) []Tile {
	board := game.Board()
	tiles := make([]Tile, 0, board.Occupied()+8)

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if c := board.Cell(x, y); !c.Empty() {
				tiles = append(tiles, Tile{X: x, Y: y, Kind: c.Kind, Layer: LayerBoard})
			}
		}
	}

	fig := game.Current()
	if fig == nil || game.State() != tetris.StateRunning {
		return tiles
	}

	active := make(map[tetris.Point]bool, 4)
	for p := range fig.Cells() {
		active[p] = true
	}

	if dy := game.GhostY() - fig.Y; dy > 0 {
		for p := range fig.Cells() {
			ghost := tetris.Point{X: p.X, Y: p.Y + dy}
			if !active[ghost] {
				tiles = append(tiles, Tile{X: ghost.X, Y: ghost.Y, Kind: fig.Kind(), Layer: LayerGhost})
			}
		}
	}

	for p := range fig.Cells() {
		if p.Y < 0 {
			continue
		}
		tiles = append(tiles, Tile{X: p.X, Y: p.Y, Kind: fig.Kind(), Layer: LayerActive})
	}
	return tiles
}

// PreviewTiles returns the next figure's cells relative to its own top-left corner.
func PreviewTiles(game *tetris.Game) []Tile {
	next := game.Next()
	if next == nil {
		return nil
	}
	var tiles []Tile
	for p := range next.Shape().Cells() {
		tiles = append(tiles, Tile{X: p.X, Y: p.Y, Kind: next.Kind(), Layer: LayerActive})
	}
	return tiles
}
