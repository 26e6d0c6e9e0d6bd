package engine

import (
	"time"

	"github.com/plus3/tetra/tetris"
)

// InputSystem drains its source every frame and applies each action to the
// game immediately, in arrival order.
type InputSystem struct {
	Source InputSource

	// Last is the result of the most recent action that locked a figure.
	Last    tetris.Result
	Applied int64
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Source == nil {
		return
	}
	for {
		action, ok := s.Source.Poll()
		if !ok {
			return
		}
		res, ok := Perform(frame.Game, action)
		if res.Locked {
			s.Last = res
		}
		if ok {
			frame.Actions = append(frame.Actions, action)
		}
		s.Applied++
	}
}

// GravitySystem feeds the frame time into the game's fall timer.
type GravitySystem struct {
	Drops int64 // rows fallen under gravity
	Locks int64
}

func (s *GravitySystem) Execute(frame *Frame) {
	res := frame.Game.Tick(time.Duration(frame.DeltaTime * float64(time.Second)))
	s.Drops += int64(res.Rows)
	if res.Locked {
		s.Locks++
	}
}
