package tetris

// Field dimensions. Column 0, column Width-1 and row Height-1 are walls.
const (
	Width  = 12
	Height = 20
)

// Cell is the content of one field cell: Empty, Wall or a block of a shape.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	blockBase // BlockOf(s) == blockBase + s
)

// BlockOf returns the cell for a settled or falling block of shape s.
func BlockOf(s Shape) Cell {
	return blockBase + Cell(s)
}

// IsBlock reports whether the cell holds a block.
func (c Cell) IsBlock() bool {
	return c >= blockBase
}

// Shape returns the shape of a block cell. ok is false for Empty and Wall.
func (c Cell) Shape() (s Shape, ok bool) {
	if !c.IsBlock() {
		return 0, false
	}
	return Shape(c - blockBase), true
}

// String returns "." for empty, "#" for wall and the shape letter for blocks.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Wall:
		return "#"
	}
	s, _ := c.Shape()
	return s.String()
}

// Matrix is a dense row-major grid of cells, indexed as m[y][x].
type Matrix [Height][Width]Cell

// newWalledMatrix returns an empty field with the permanent walls placed.
func newWalledMatrix() Matrix {
	var m Matrix
	for y := 0; y < Height; y++ {
		m[y][0] = Wall
		m[y][Width-1] = Wall
	}
	for x := 1; x < Width-1; x++ {
		m[Height-1][x] = Wall
	}
	return m
}

// rowFull reports whether every interior cell of row y is occupied.
func (m *Matrix) rowFull(y int) bool {
	for x := 1; x < Width-1; x++ {
		if m[y][x] == Empty {
			return false
		}
	}
	return true
}

// compact removes full interior rows and shifts everything above them down.
// It leaves the matrix unchanged when no row is full.
func (m *Matrix) compact() int {
	dst := Height - 2
	for src := Height - 2; src >= 0; src-- {
		if m.rowFull(src) {
			continue
		}
		if dst != src {
			copy(m[dst][1:Width-1], m[src][1:Width-1])
		}
		dst--
	}
	for y := 0; y <= dst; y++ {
		for x := 1; x < Width-1; x++ {
			m[y][x] = Empty
		}
	}
	return dst + 1
}

// String renders the matrix as text, one row per line.
func (m *Matrix) String() string {
	buf := make([]byte, 0, (Width+1)*Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			buf = append(buf, m[y][x].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
