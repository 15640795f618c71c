package tetris

const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Grid is a row-major copy of the field occupancy, indexed [y][x].
type Grid [FieldHeight][FieldWidth]bool

// Field is the static occupancy grid. Cells only become occupied through Lock.
type Field struct {
	cells Grid
}

// IsOccupied reports whether (x, y) holds a locked cell. Out-of-range cells are free.
func (f *Field) IsOccupied(x, y int) bool {
	if x < 0 || x >= FieldWidth || y < 0 || y >= FieldHeight {
		return false
	}
	return f.cells[y][x]
}

// CanPlace reports whether the piece, shifted by (dx, dy), lies entirely inside the
// field without overlapping locked cells.
func (f *Field) CanPlace(p *Tetromino, dx, dy int) bool {
	for by := range ShapeSize {
		for bx := range ShapeSize {
			if !p.Shape[by*ShapeSize+bx] {
				continue
			}

			x := p.Position.X + bx + dx
			y := p.Position.Y + by + dy

			if x < 0 || x >= FieldWidth || y < 0 || y >= FieldHeight {
				return false
			}
			if f.IsOccupied(x, y) {
				return false
			}
		}
	}
	return true
}

// Lock merges the piece into the field. Cells outside the field are dropped.
func (f *Field) Lock(p *Tetromino) {
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < FieldWidth && c.Y >= 0 && c.Y < FieldHeight {
			f.cells[c.Y][c.X] = true
		}
	}
}

func (f *Field) rowFull(y int) bool {
	for x := range FieldWidth {
		if !f.cells[y][x] {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom to top.
func (f *Field) FullRows() []int {
	var rows []int
	for y := FieldHeight - 1; y >= 0; y-- {
		if f.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the listed rows and compacts everything above them toward
// the floor, keeping the order of the surviving rows. Indices that are out of
// range, repeated, or not full are ignored. It returns the number of rows removed.
func (f *Field) ClearRows(rows []int) int {
	var remove [FieldHeight]bool
	cleared := 0
	for _, y := range rows {
		if y < 0 || y >= FieldHeight || remove[y] || !f.rowFull(y) {
			continue
		}
		remove[y] = true
		cleared++
	}
	if cleared == 0 {
		return 0
	}

	dst := FieldHeight - 1
	for y := FieldHeight - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}
		f.cells[dst] = f.cells[y]
		dst--
	}
	for y := dst; y >= 0; y-- {
		f.cells[y] = [FieldWidth]bool{}
	}

	return cleared
}

// Cells returns a copy of the occupancy grid.
func (f *Field) Cells() Grid {
	return f.cells
}

// Count returns the number of occupied cells.
func (f *Field) Count() int {
	n := 0
	for y := range FieldHeight {
		for x := range FieldWidth {
			if f.cells[y][x] {
				n++
			}
		}
	}
	return n
}
