package tetris

// Piece is the falling piece. It is a plain value: every transform returns
// a new candidate and leaves the receiver untouched, so the board can throw
// away an illegal candidate without undoing anything.
type Piece struct {
	Shape    Shape
	Rotation int // Index into the shape's rotation states, always in [0, RotationCount)
	X, Y     int // Reference position on the field
}

// Spawn returns a new piece of the given shape in spawn orientation at the
// top centre of the field.
func Spawn(s Shape) Piece {
	return Piece{Shape: s, X: Width / 2, Y: 0}
}

// Advance moves the piece one cell forward or backward relative to its
// current facing, not in a fixed screen direction.
//
//	rotation  forward  backward
//	0         +y       -y
//	1         +x       -x
//	2         -y       +y
//	3         -x       +x
//
// The renderer rotates the whole field with the piece, so "forward" keeps
// pointing the same way on screen while the field turns under it.
func (p Piece) Advance(forward bool) Piece {
	switch {
	case p.Rotation == 0 && forward, p.Rotation == 2 && !forward:
		p.Y++
	case p.Rotation == 1 && forward, p.Rotation == 3 && !forward:
		p.X++
	case p.Rotation == 2 && forward, p.Rotation == 0 && !forward:
		p.Y--
	case p.Rotation == 3 && forward, p.Rotation == 1 && !forward:
		p.X--
	default:
		panic("tetris: rotation index out of range")
	}
	return p
}

// Fall moves the piece one row down regardless of its facing.
func (p Piece) Fall() Piece {
	p.Y++
	return p
}

// Rotate turns the piece counter-clockwise (ccw) or clockwise.
func (p Piece) Rotate(ccw bool) Piece {
	if ccw {
		p.Rotation++
	} else {
		p.Rotation--
	}
	p.Rotation %= RotationCount
	if p.Rotation < 0 {
		p.Rotation += RotationCount
	}
	return p
}

// Base returns the render anchor offset of the current rotation state.
func (p Piece) Base() Point {
	return p.Shape.Rotation(p.Rotation).Base
}

// Cells returns the absolute field coordinates the piece occupies.
func (p Piece) Cells() [4]Point {
	pos := Point{X: p.X, Y: p.Y}
	cells := p.Shape.Rotation(p.Rotation).Points
	for i := range cells {
		cells[i] = pos.Add(cells[i])
	}
	return cells
}
