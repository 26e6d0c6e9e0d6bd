package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetra/engine"
)

// keyAction maps a terminal key press to a game action. Terminals report no
// key releases, so held keys rely on the terminal's own auto-repeat.
func keyAction(ev *tcell.EventKey) (engine.Action, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyLeft:
		if shift {
			return engine.ActionDownLeft, true
		}
		return engine.ActionLeft, true
	case tcell.KeyRight:
		if shift {
			return engine.ActionDownRight, true
		}
		return engine.ActionRight, true
	case tcell.KeyDown:
		return engine.ActionSoftDrop, true
	case tcell.KeyUp:
		return engine.ActionRotate, true
	case tcell.KeyEnter:
		return engine.ActionStart, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'e', 'E', 'x', 'X':
			return engine.ActionRotate, true
		case 'q', 'Q', 'z', 'Z':
			return engine.ActionRotateLeft, true
		case ' ':
			return engine.ActionHardDrop, true
		case 'r', 'R':
			return engine.ActionReset, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
