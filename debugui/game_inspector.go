package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/tetris"
)

// GameInspector shows the live state of a game: lifecycle, score, counters,
// the current and next figures and the active configuration.
type GameInspector struct {
	game *tetris.Game
}

func NewGameInspector(game *tetris.Game) *GameInspector {
	return &GameInspector{game: game}
}

func (gi *GameInspector) Item() Item {
	return Item{Name: "inspector", Render: gi.Render}
}

// Summary returns the inspector's headline rows without touching ImGui.
func (gi *GameInspector) Summary() []FieldLine {
	g := gi.game
	stats := g.Stats()
	lines := []FieldLine{
		{"State", g.State().String()},
		{"Score", fmt.Sprint(g.Score())},
		{"Lines", fmt.Sprint(stats.Lines)},
		{"Pieces", fmt.Sprint(stats.Pieces)},
		{"Occupied", fmt.Sprint(g.Board().Occupied())},
	}
	if cur := g.Current(); cur != nil {
		lines = append(lines,
			FieldLine{"Current", cur.Kind().String()},
			FieldLine{"Anchor", fmt.Sprintf("%d,%d", cur.X, cur.Y)},
			FieldLine{"Ghost Y", fmt.Sprint(g.GhostY())},
		)
	}
	if next := g.Next(); next != nil {
		lines = append(lines, FieldLine{"Next", next.Kind().String()})
	}
	return lines
}

func (gi *GameInspector) Render() {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range gi.Summary() {
		imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
	}

	if imgui.TreeNodeStr("Spawns") {
		stats := gi.game.Stats()
		for _, kind := range tetris.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, stats.Spawned(kind)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		stats := gi.game.Stats()
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Config") {
		for _, line := range Describe(gi.game.Config()) {
			imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
		}
		imgui.TreePop()
	}

	imgui.End()
}
