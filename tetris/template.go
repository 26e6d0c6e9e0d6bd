package tetris

import "iter"

// Kind identifies which template a figure or a locked cell came from.
// The zero value is KindNone and marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindJ
	KindT
	KindL
	KindS
	KindI
	KindO
	KindZ
)

// KindCount is the number of playable kinds.
const KindCount = 7

var kindNames = [...]string{"-", "J", "T", "L", "S", "I", "O", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Kinds returns the playable kinds in template order.
func Kinds() []Kind {
	return []Kind{KindJ, KindT, KindL, KindS, KindI, KindO, KindZ}
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Shape is a row-major occupancy matrix. Rows may be of any equal length,
// so a shape is not necessarily square.
type Shape [][]bool

// NewShape builds a shape from 0/1 rows.
func NewShape(rows ...[]int) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, v := range row {
			shape[y][x] = v != 0
		}
	}
	return shape
}

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = make([]bool, len(s[y]))
		copy(out[y], s[y])
	}
	return out
}

// RotateRight returns the shape turned 90° clockwise. A h×w shape becomes w×h.
func (s Shape) RotateRight() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[x][h-1-y] = s[y][x]
		}
	}
	return out
}

// RotateLeft returns the shape turned 90° counter-clockwise.
func (s Shape) RotateLeft() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[w-1-x][y] = s[y][x]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells yields the relative coordinates of every occupied cell.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range s {
			for x, occupied := range s[y] {
				if !occupied {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Template is an immutable piece definition.
type Template struct {
	kind  Kind
	shape Shape
}

func (t Template) Kind() Kind {
	return t.kind
}

// Shape returns a copy of the template's matrix.
func (t Template) Shape() Shape {
	return t.shape.Clone()
}

var templates = [KindCount]Template{
	{kind: KindJ, shape: NewShape([]int{0, 1, 0}, []int{0, 1, 0}, []int{1, 1, 0})},
	{kind: KindT, shape: NewShape([]int{0, 0, 0}, []int{1, 1, 1}, []int{0, 1, 0})},
	{kind: KindL, shape: NewShape([]int{0, 1, 0}, []int{0, 1, 0}, []int{0, 1, 1})},
	{kind: KindS, shape: NewShape([]int{0, 0, 0}, []int{0, 1, 1}, []int{1, 1, 0})},
	{kind: KindI, shape: NewShape([]int{1}, []int{1}, []int{1}, []int{1})},
	{kind: KindO, shape: NewShape([]int{1, 1}, []int{1, 1})},
	{kind: KindZ, shape: NewShape([]int{0, 0, 0}, []int{1, 1, 0}, []int{0, 1, 1})},
}

// Templates returns the seven canonical templates.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates[:])
	return out
}

// TemplateFor returns the template of a playable kind.
func TemplateFor(kind Kind) (Template, bool) {
	if kind == KindNone || int(kind) > KindCount {
		return Template{}, false
	}
	return templates[kind-1], true
}
