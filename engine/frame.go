package engine

import "github.com/plus3/tetra/tetris"

// Frame is passed to every system during a scheduler step.
type Frame struct {
	DeltaTime float64 // seconds since the previous frame
	Game      *tetris.Game
	Commands  *Commands

	// Events holds what the game emitted since the previous frame, including
	// anything raised by systems that already ran in this one.
	Events []tetris.Event

	// Actions lists the player actions that changed the game this frame.
	Actions []Action
}

func newFrame(dt float64, game *tetris.Game) *Frame {
	return &Frame{
		DeltaTime: dt,
		Game:      game,
		Commands:  newCommands(),
	}
}
