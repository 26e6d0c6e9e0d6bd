package tetris

import "iter"

// Figure is a falling piece: a private copy of a template's matrix anchored
// at (X, Y) in board space.
type Figure struct {
	X, Y  int
	kind  Kind
	shape Shape
}

// NewFigure creates a figure at the origin. Later changes to the figure never
// reach the template.
func NewFigure(t Template) *Figure {
	return &Figure{
		kind:  t.kind,
		shape: t.shape.Clone(),
	}
}

func (f *Figure) Kind() Kind {
	return f.kind
}

// Shape returns the figure's current matrix. Callers must not modify it.
func (f *Figure) Shape() Shape {
	return f.shape
}

func (f *Figure) Width() int {
	return f.shape.Width()
}

func (f *Figure) Height() int {
	return f.shape.Height()
}

// RotateRight returns the current matrix turned clockwise without changing the figure.
func (f *Figure) RotateRight() Shape {
	return f.shape.RotateRight()
}

// RotateLeft returns the current matrix turned counter-clockwise without changing the figure.
func (f *Figure) RotateLeft() Shape {
	return f.shape.RotateLeft()
}

// Cells yields the absolute board coordinates covered by the figure.
func (f *Figure) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p := range f.shape.Cells() {
			if !yield(Point{X: f.X + p.X, Y: f.Y + p.Y}) {
				return
			}
		}
	}
}

func (f *Figure) setShape(shape Shape) {
	f.shape = shape
}
