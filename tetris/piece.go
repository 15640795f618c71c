package tetris

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypeCount is the number of distinct piece types.
const PieceTypeCount = 7

var pieceNames = [PieceTypeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (t PieceType) String() string {
	if t < 0 || int(t) >= PieceTypeCount {
		return "?"
	}
	return pieceNames[t]
}

// ShapeSize is the edge length of the local piece grid.
const ShapeSize = 4

// Shape is a 4x4 occupancy grid in piece-local coordinates, row-major (index y*4+x).
type Shape [ShapeSize * ShapeSize]bool

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

func shapeOf(rows [ShapeSize]string) Shape {
	var s Shape
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				s[y*ShapeSize+x] = true
			}
		}
	}
	return s
}

var shapeTemplates = [PieceTypeCount]Shape{
	PieceI: shapeOf([ShapeSize]string{
		"....",
		"####",
		"....",
		"....",
	}),
	PieceO: shapeOf([ShapeSize]string{
		"....",
		".##.",
		".##.",
		"....",
	}),
	PieceT: shapeOf([ShapeSize]string{
		"....",
		"###.",
		".#..",
		"....",
	}),
	PieceS: shapeOf([ShapeSize]string{
		"....",
		".##.",
		"##..",
		"....",
	}),
	PieceZ: shapeOf([ShapeSize]string{
		"....",
		"##..",
		".##.",
		"....",
	}),
	PieceJ: shapeOf([ShapeSize]string{
		"....",
		"###.",
		"..#.",
		"....",
	}),
	PieceL: shapeOf([ShapeSize]string{
		"....",
		"###.",
		"#...",
		"....",
	}),
}

// TemplateShape returns the spawn orientation of the given piece type.
func TemplateShape(t PieceType) Shape {
	return shapeTemplates[t]
}

// At reports whether the local cell (x, y) is set.
func (s Shape) At(x, y int) bool {
	if x < 0 || x >= ShapeSize || y < 0 || y >= ShapeSize {
		return false
	}
	return s[y*ShapeSize+x]
}

// RotateClockwise maps local cell (x, y) to (3-y, x) over the whole buffer.
func (s Shape) RotateClockwise() Shape {
	var rotated Shape
	for y := range ShapeSize {
		for x := range ShapeSize {
			if s[y*ShapeSize+x] {
				rotated[x*ShapeSize+(ShapeSize-1-y)] = true
			}
		}
	}
	return rotated
}

// LeftmostColumn returns the first column holding a set cell, or 0 for an empty shape.
func (s Shape) LeftmostColumn() int {
	for x := 0; x < ShapeSize; x++ {
		for y := 0; y < ShapeSize; y++ {
			if s[y*ShapeSize+x] {
				return x
			}
		}
	}
	return 0
}

// RightmostColumn returns the last column holding a set cell, or 3 for an empty shape.
func (s Shape) RightmostColumn() int {
	for x := ShapeSize - 1; x >= 0; x-- {
		for y := 0; y < ShapeSize; y++ {
			if s[y*ShapeSize+x] {
				return x
			}
		}
	}
	return ShapeSize - 1
}

// Tetromino is the active falling piece.
type Tetromino struct {
	Type     PieceType
	Shape    Shape
	Position Point
}

// NewTetromino creates a piece of the given type in its spawn orientation at (x, y).
func NewTetromino(t PieceType, x, y int) *Tetromino {
	return &Tetromino{
		Type:     t,
		Shape:    shapeTemplates[t],
		Position: Point{X: x, Y: y},
	}
}

// RotateClockwise rotates the piece in place without any collision check.
func (p *Tetromino) RotateClockwise() {
	p.Shape = p.Shape.RotateClockwise()
}

// Cells returns the absolute field coordinates of every set cell.
func (p *Tetromino) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y := range ShapeSize {
		for x := range ShapeSize {
			if p.Shape[y*ShapeSize+x] {
				cells = append(cells, Point{X: p.Position.X + x, Y: p.Position.Y + y})
			}
		}
	}
	return cells
}
