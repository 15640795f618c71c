package tetris

// kickOffsets are the horizontal shifts tried, in order, when rotating.
// Rows are never shifted.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// Rotate turns the piece clockwise, trying each kick offset in turn. The rotated
// pose is clamped to the side walls before every placement test. When no offset
// fits, the piece keeps its previous shape and column and Rotate returns false.
func Rotate(f *Field, p *Tetromino) bool {
	originalShape := p.Shape
	originalX := p.Position.X

	candidate := originalShape.RotateClockwise()
	leftmost := candidate.LeftmostColumn()
	rightmost := candidate.RightmostColumn()

	p.Shape = candidate
	for _, offset := range kickOffsets {
		x := originalX + offset
		if x+leftmost < 0 {
			x = -leftmost
		}
		if x+rightmost >= FieldWidth {
			x = FieldWidth - 1 - rightmost
		}

		p.Position.X = x
		if f.CanPlace(p, 0, 0) {
			return true
		}
	}

	p.Shape = originalShape
	p.Position.X = originalX
	return false
}

// Shift moves the piece by (dx, dy) if the destination is legal.
func Shift(f *Field, p *Tetromino, dx, dy int) bool {
	if !f.CanPlace(p, dx, dy) {
		return false
	}
	p.Position.X += dx
	p.Position.Y += dy
	return true
}

// Drop moves the piece down as far as it legally goes and returns the distance.
func Drop(f *Field, p *Tetromino) int {
	distance := 0
	for f.CanPlace(p, 0, 1) {
		p.Position.Y++
		distance++
	}
	return distance
}

// DropRow returns the row the piece would rest on if dropped, without moving it.
func DropRow(f *Field, p *Tetromino) int {
	ghost := *p
	Drop(f, &ghost)
	return ghost.Position.Y
}
