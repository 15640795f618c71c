package tetris

// ActivePiece is the render view of the falling piece.
type ActivePiece struct {
	Type  PieceType
	Cells []Point
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Tick   uint64
	State  State
	Board  Grid
	Active *ActivePiece
	Next   PieceType
	Score  int
	Lines  int

	// ClearRows holds the rows removed by the lock in this tick, bottom to top.
	// It is empty on every other tick.
	ClearRows []int

	Events []Event
}

// Occupied reports whether (x, y) is filled by the board or the active piece.
func (s Snapshot) Occupied(x, y int) bool {
	if x < 0 || x >= FieldWidth || y < 0 || y >= FieldHeight {
		return false
	}
	if s.Board[y][x] {
		return true
	}
	if s.Active != nil {
		for _, c := range s.Active.Cells {
			if c.X == x && c.Y == y {
				return true
			}
		}
	}
	return false
}

// Has reports whether an event of the given kind occurred in the snapshot's tick.
func (s Snapshot) Has(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
