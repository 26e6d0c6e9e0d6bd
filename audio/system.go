package audio

import (
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

// System plays a sound for every accepted rotation or hard drop and for every
// lock, line clear and game over raised during a frame. Sounds are queued as
// frame commands so they start after the frame's game logic has finished.
type System struct {
	Sink  Sink
	Muted bool
}

func (s *System) Execute(frame *engine.Frame) {
	if s.Sink == nil || s.Muted {
		return
	}
	for _, a := range frame.Actions {
		if sound, ok := soundForAction(a); ok {
			s.play(frame, sound, 0)
		}
	}
	for _, e := range frame.Events {
		if sound, ok := soundFor(e); ok {
			s.play(frame, sound, e.Lines)
		}
	}
}

func (s *System) play(frame *engine.Frame, sound Sound, lines int) {
	frame.Commands.Defer(func() {
		s.Sink.Play(sound, lines)
	})
}

func soundForAction(a engine.Action) (Sound, bool) {
	switch a {
	case engine.ActionRotate, engine.ActionRotateLeft:
		return SoundRotate, true
	case engine.ActionHardDrop:
		return SoundHardDrop, true
	default:
		return 0, false
	}
}

func soundFor(e tetris.Event) (Sound, bool) {
	switch e.Type {
	case tetris.EventLock:
		// a clearing lock is covered by its line-clear event
		return SoundLock, e.Lines == 0
	case tetris.EventLineClear:
		return SoundLineClear, true
	case tetris.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}
