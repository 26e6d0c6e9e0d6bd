package tetris

// Cell is one square of the board. The zero value is empty; an occupied cell
// keeps the kind of the figure that was locked into it.
type Cell struct {
	Kind Kind
}

func (c Cell) Empty() bool {
	return c.Kind == KindNone
}

// Board is a fixed-size grid of cells with row 0 at the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board. Its dimensions never change.
func NewBoard(width, height int) *Board {
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}
	return &Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Cell returns the cell at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.inside(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

// SetCell overwrites a single cell and reports whether (x, y) was on the board.
func (b *Board) SetCell(x, y int, c Cell) bool {
	if !b.inside(x, y) {
		return false
	}
	b.rows[y][x] = c
	return true
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range b.rows {
		out[y] = make([]Cell, b.width)
		copy(out[y], b.rows[y])
	}
	return out
}

// Occupied counts non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsValid reports whether the figure, shifted by (dx, dy), fits on the board
// without leaving it or overlapping a locked cell. An optional override shape
// is tested in place of the figure's own matrix, which is how rotations are
// checked before being committed.
func (b *Board) IsValid(f *Figure, dx, dy int, override ...Shape) bool {
	shape := f.shape
	if len(override) > 0 {
		shape = override[0]
	}
	for p := range shape.Cells() {
		x := f.X + p.X + dx
		y := f.Y + p.Y + dy
		if !b.inside(x, y) {
			return false
		}
		if !b.rows[y][x].Empty() {
			return false
		}
	}
	return true
}

// Lock writes the figure's cells into the grid. Placement is not checked;
// cells that fall outside the board are dropped.
func (b *Board) Lock(f *Figure) {
	for p := range f.Cells() {
		if b.inside(p.X, p.Y) {
			b.rows[p.Y][p.X] = Cell{Kind: f.kind}
		}
	}
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.full(y) {
			continue
		}
		cleared++
		copy(b.rows[1:y+1], b.rows[:y])
		b.rows[0] = make([]Cell, b.width)
		// the row that slid into y has not been checked yet
		y++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for _, c := range b.rows[y] {
		if c.Empty() {
			return false
		}
	}
	return true
}
