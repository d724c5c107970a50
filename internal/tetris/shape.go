// Package tetris implements the falling-block simulation core: the shape
// catalog, the active piece, the playing field and the board state machine.
// It has no dependency on the terminal or on the platform layer.
package tetris

// Shape identifies one of the seven tetrimino types.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapeT
)

// ShapeCount is the number of distinct shapes in the catalog.
const ShapeCount = 7

// RotationCount is the number of rotation states every shape has.
const RotationCount = 4

// String returns the one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	default:
		return "?"
	}
}

// ParseShape returns the shape with the given one-letter name.
func ParseShape(name string) (Shape, bool) {
	for _, s := range Shapes() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Shapes returns all shapes in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeS, ShapeZ, ShapeJ, ShapeL, ShapeT}
}

// Point is an (x, y) pair. Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotation is one rotation state of a shape.
// Points are the occupied cells relative to the piece position.
// Base is only used by renderers to centre the view on the piece.
type Rotation struct {
	Base   Point
	Points [4]Point
}

// Rotation returns rotation state i of the shape. i must be in [0, RotationCount).
func (s Shape) Rotation(i int) Rotation {
	return catalog[s][i]
}

// catalog holds the rotation states of every shape.
// Index 0 is the spawn orientation, 0 -> 1 is a counter-clockwise turn.
var catalog = [ShapeCount][RotationCount]Rotation{
	ShapeI: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
		{Base: Point{1, 1}, Points: [4]Point{{1, -1}, {1, 0}, {1, 1}, {1, 2}}},
		{Base: Point{1, 0}, Points: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
		{Base: Point{1, 0}, Points: [4]Point{{1, -1}, {1, 0}, {1, 1}, {1, 2}}},
	},
	ShapeO: {
		{Base: Point{0, 0}, Points: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{Base: Point{0, 1}, Points: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{Base: Point{1, 1}, Points: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{Base: Point{1, 0}, Points: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	},
	ShapeS: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}},
		{Base: Point{-1, 0}, Points: [4]Point{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}}},
		{Base: Point{0, 1}, Points: [4]Point{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}}},
	},
	ShapeZ: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {1, 0}, {1, -1}}},
		{Base: Point{0, 1}, Points: [4]Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
		{Base: Point{1, 0}, Points: [4]Point{{0, 1}, {0, 0}, {1, 0}, {1, -1}}},
	},
	ShapeJ: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {0, -1}, {1, -1}}},
		{Base: Point{0, 1}, Points: [4]Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}}},
		{Base: Point{0, 0}, Points: [4]Point{{-1, 1}, {0, 1}, {0, 0}, {0, -1}}},
	},
	ShapeL: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}},
		{Base: Point{0, 0}, Points: [4]Point{{1, 1}, {0, 1}, {0, 0}, {0, -1}}},
		{Base: Point{0, 1}, Points: [4]Point{{-1, 1}, {0, 1}, {1, 1}, {1, 0}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {0, -1}, {-1, -1}}},
	},
	ShapeT: {
		{Base: Point{0, 0}, Points: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {0, -1}, {1, 0}}},
		{Base: Point{0, 1}, Points: [4]Point{{-1, 1}, {0, 1}, {1, 1}, {0, 0}}},
		{Base: Point{0, 0}, Points: [4]Point{{0, 1}, {0, 0}, {0, -1}, {-1, 0}}},
	},
}
