// Package debugui renders Dear ImGui debug windows on top of a running game.
// Windows are registered as items on an Overlay and drawn through the engine's
// deferred frame commands.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/engine"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before treating key presses as game actions.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of debug windows drawn each frame.
type Overlay struct {
	items  []Item
	hidden map[string]bool
	Input  InputState
}

func NewOverlay() *Overlay {
	return &Overlay{hidden: make(map[string]bool)}
}

func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Toggle shows or hides the named item and reports whether it is now visible.
func (o *Overlay) Toggle(name string) bool {
	o.hidden[name] = !o.hidden[name]
	return !o.hidden[name]
}

// Items returns the visible items in registration order.
func (o *Overlay) Items() []Item {
	visible := make([]Item, 0, len(o.items))
	for _, item := range o.items {
		if !o.hidden[item.Name] {
			visible = append(visible, item)
		}
	}
	return visible
}

// System updates the overlay's input state and defers every visible item's
// render function until the frame is flushed.
type System struct {
	Overlay *Overlay

	// Capture reads the current input state. Nil uses Dear ImGui's IO, which
	// requires a live ImGui context.
	Capture func() InputState
}

func (s *System) Execute(frame *engine.Frame) {
	if s.Overlay == nil {
		return
	}
	capture := s.Capture
	if capture == nil {
		capture = imguiInputState
	}
	s.Overlay.Input = capture()

	for _, item := range s.Overlay.Items() {
		frame.Commands.Defer(item.Render)
	}
}

func imguiInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
