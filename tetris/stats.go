package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates per-session counters.
type Stats struct {
	pieces *intmap.Map[PieceType, int]
	clears *intmap.Map[int, int]

	Locks            int
	Lines            int
	HardDropDistance int
}

func newStats() *Stats {
	return &Stats{
		pieces: intmap.New[PieceType, int](PieceTypeCount),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(t PieceType) {
	n, _ := s.pieces.Get(t)
	s.pieces.Put(t, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.Locks++
	if cleared == 0 {
		return
	}
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
	s.Lines += cleared
}

// Pieces returns how many pieces of type t have spawned.
func (s *Stats) Pieces(t PieceType) int {
	n, _ := s.pieces.Get(t)
	return n
}

// TotalPieces returns the number of pieces spawned.
func (s *Stats) TotalPieces() int {
	total := 0
	for t := range PieceType(PieceTypeCount) {
		total += s.Pieces(t)
	}
	return total
}

// Clears returns how many locks cleared exactly rows rows at once.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
