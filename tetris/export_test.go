package tetris

// Test hooks for setting up fields directly.

func SetCell(f *Field, x, y int) {
	f.cells[y][x] = true
}

// FillRow occupies every cell of row y except the listed columns.
func FillRow(f *Field, y int, except ...int) {
	for x := range FieldWidth {
		f.cells[y][x] = true
	}
	for _, x := range except {
		f.cells[y][x] = false
	}
}

func SessionField(s *Session) *Field {
	return &s.field
}

func SetScore(s *Session, score int) {
	s.score = score
}
