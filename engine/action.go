package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/tetra/tetris"
)

var ErrUnknownAction = errors.New("unknown action")

// Action is a player command independent of any input device.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionRotateLeft
	ActionSoftDrop
	ActionHardDrop
	ActionDownLeft
	ActionDownRight
	ActionStart
	ActionReset
)

var actionNames = [...]string{
	"left", "right", "rotate", "rotate-left", "soft-drop",
	"hard-drop", "down-left", "down-right", "start", "reset",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction maps a name such as "hard-drop" back to its Action.
// Matching ignores case and accepts underscores for dashes.
func ParseAction(name string) (Action, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range actionNames {
		if n == normalized {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Apply performs action on game. Moves that the board rejects leave the game
// untouched and return a zero Result. ActionStart starts a fresh game and
// restarts one that is over.
func Apply(game *tetris.Game, action Action) tetris.Result {
	res, _ := Perform(game, action)
	return res
}

// Perform is Apply that also reports whether the action changed the game.
func Perform(game *tetris.Game, action Action) (tetris.Result, bool) {
	switch action {
	case ActionLeft:
		return tetris.Result{}, game.Move(-1)
	case ActionRight:
		return tetris.Result{}, game.Move(1)
	case ActionRotate:
		return tetris.Result{}, game.Rotate()
	case ActionRotateLeft:
		return tetris.Result{}, game.RotateLeft()
	case ActionSoftDrop:
		return softDrop(game, game.SoftDrop())
	case ActionDownLeft:
		return softDrop(game, game.MoveDown(-1))
	case ActionDownRight:
		return softDrop(game, game.MoveDown(1))
	case ActionHardDrop:
		res := game.HardDrop()
		return res, res.Locked
	case ActionStart:
		switch game.State() {
		case tetris.StateNotStarted:
			return tetris.Result{}, game.Start()
		case tetris.StateGameOver:
			game.Reset()
			return tetris.Result{}, true
		}
	case ActionReset:
		game.Reset()
		return tetris.Result{}, true
	}
	return tetris.Result{}, false
}

func softDrop(game *tetris.Game, moved bool) (tetris.Result, bool) {
	if !moved {
		return tetris.Result{}, false
	}
	return tetris.Result{Rows: 1, Points: game.Config().SoftDropBonus}, true
}
