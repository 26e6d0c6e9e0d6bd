package engine

import "github.com/plus3/tetra/tetris"

// System is a behavior that runs once per frame. Systems keep their own
// state between frames in their struct fields.
type System interface {
	Execute(frame *Frame)
}

// Initializer is implemented by systems that need the game before the first
// frame. Scheduler.Register calls Init once.
type Initializer interface {
	Init(game *tetris.Game)
}
