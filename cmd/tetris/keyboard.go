package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetra/debugui"
	"github.com/plus3/tetra/engine"
)

// keyState is one frame of keyboard input. Sideways and down keys report
// whether they are held; the rest report a fresh press.
type keyState struct {
	left, right, down bool

	rotate, rotateLeft, hardDrop bool
	start, reset                 bool
}

func pollKeys() keyState {
	return keyState{
		left:       ebiten.IsKeyPressed(ebiten.KeyLeft),
		right:      ebiten.IsKeyPressed(ebiten.KeyRight),
		down:       ebiten.IsKeyPressed(ebiten.KeyDown),
		rotate:     inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX),
		rotateLeft: inpututil.IsKeyJustPressed(ebiten.KeyZ),
		hardDrop:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		start:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		reset:      inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// keyboardSystem turns ebiten key state into queued actions ahead of the
// engine's input system.
type keyboardSystem struct {
	queue   *engine.ActionQueue
	overlay *debugui.Overlay

	left, right, down *engine.KeyRepeat
}

func (s *keyboardSystem) Execute(frame *engine.Frame) {
	if s.overlay != nil && s.overlay.Input.WantCaptureKeyboard {
		s.left.Reset()
		s.right.Reset()
		s.down.Reset()
		return
	}
	s.queue.Push(s.actions(pollKeys(), frame.DeltaTime)...)
}

// actions maps a key state to actions. Holding down while a sideways key
// fires moves diagonally instead of soft dropping.
func (s *keyboardSystem) actions(keys keyState, dt float64) []engine.Action {
	var out []engine.Action
	if keys.start {
		out = append(out, engine.ActionStart)
	}
	if keys.reset {
		out = append(out, engine.ActionReset)
	}

	diagonal := false
	for range s.left.Update(keys.left, dt) {
		if keys.down {
			out = append(out, engine.ActionDownLeft)
			diagonal = true
		} else {
			out = append(out, engine.ActionLeft)
		}
	}
	for range s.right.Update(keys.right, dt) {
		if keys.down {
			out = append(out, engine.ActionDownRight)
			diagonal = true
		} else {
			out = append(out, engine.ActionRight)
		}
	}
	drops := s.down.Update(keys.down, dt)
	if !diagonal {
		for range drops {
			out = append(out, engine.ActionSoftDrop)
		}
	}

	if keys.rotate {
		out = append(out, engine.ActionRotate)
	}
	if keys.rotateLeft {
		out = append(out, engine.ActionRotateLeft)
	}
	if keys.hardDrop {
		out = append(out, engine.ActionHardDrop)
	}
	return out
}
