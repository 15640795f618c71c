package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRNG always draws the same piece type.
type fixedRNG tetris.PieceType

func (r fixedRNG) IntN(n int) int { return int(r) % n }

var hardDrop = tetris.NewActionSet(tetris.ActionHardDrop)

func TestSpawn(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceT))
	assert.Equal(t, tetris.StateSpawning, s.State())
	assert.Nil(t, s.Active())

	snap, changed := s.Tick(none)
	require.True(t, changed)
	assert.True(t, snap.Has(tetris.EventSpawned))
	assert.Equal(t, tetris.StateFalling, snap.State)

	active := s.Active()
	require.NotNil(t, active)
	assert.Equal(t, tetris.PieceT, active.Type)
	assert.Equal(t, tetris.Point{X: tetris.SpawnColumn, Y: 0}, active.Position)
	assert.Equal(t, 3, tetris.SpawnColumn)

	require.NotNil(t, snap.Active)
	assert.Equal(t, tetris.PieceT, snap.Active.Type)
	assert.ElementsMatch(t, active.Cells(), snap.Active.Cells)
	assert.Equal(t, tetris.PieceT, snap.Next)
}

func TestNothingChangedWithoutInput(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceO))
	s.Tick(none)

	snap, changed := s.Tick(none)
	assert.False(t, changed)
	assert.Empty(t, snap.Events)
	assert.Equal(t, uint64(2), snap.Tick)
}

func TestHardDropFreshIPiece(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceI))
	s.Tick(none)

	snap, changed := s.Tick(hardDrop)
	require.True(t, changed)

	var dropped *tetris.Event
	for i := range snap.Events {
		if snap.Events[i].Kind == tetris.EventHardDropped {
			dropped = &snap.Events[i]
		}
	}
	require.NotNil(t, dropped)
	assert.Equal(t, tetris.FieldHeight-1-1, dropped.Value)
	assert.True(t, snap.Has(tetris.EventLocked))

	for x := range tetris.FieldWidth {
		assert.Equal(t, x >= 3 && x <= 6, snap.Board[19][x], "x=%d", x)
	}
	assert.Equal(t, tetris.StateSpawning, snap.State)
	assert.Nil(t, snap.Active)
	assert.Equal(t, 18, s.Stats().HardDropDistance)
}

func TestHardDropLocksEvenWithoutDistance(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceI))
	tetris.SetCell(tetris.SessionField(s), 3, 2)
	s.Tick(none)

	snap, _ := s.Tick(hardDrop)
	assert.True(t, snap.Has(tetris.EventHardDropped))
	assert.True(t, snap.Has(tetris.EventLocked))
	assert.True(t, snap.Board[1][3])
	assert.True(t, snap.Board[1][6])
	assert.Equal(t, 0, s.Stats().HardDropDistance)
}

func TestLineClearScoring(t *testing.T) {
	for rows := 1; rows <= 4; rows++ {
		t.Run(string(rune('0'+rows)), func(t *testing.T) {
			s := tetris.NewSession(fixedRNG(tetris.PieceI))
			f := tetris.SessionField(s)
			for y := tetris.FieldHeight - rows; y < tetris.FieldHeight; y++ {
				tetris.FillRow(f, y, 5)
			}

			// Spawn and stand the I upright in column 5, then drop it into the well.
			s.Tick(spin)
			snap, _ := s.Tick(hardDrop)

			assert.Equal(t, tetris.LineClearScore(rows), snap.Score)
			assert.Equal(t, rows*rows*100, snap.Score)
			assert.Len(t, snap.ClearRows, rows)
			assert.Equal(t, rows, snap.Lines)
			assert.Equal(t, 1, s.Stats().Clears(rows))

			// Whatever is left of the I sits at the bottom of column 5.
			remaining := 4 - rows
			for y := range tetris.FieldHeight {
				want := y >= tetris.FieldHeight-remaining
				assert.Equal(t, want, snap.Board[y][5], "y=%d", y)
			}

			next, _ := s.Tick(none)
			assert.Empty(t, next.ClearRows)
		})
	}

	assert.Equal(t, 100, tetris.LineClearScore(1))
	assert.Equal(t, 400, tetris.LineClearScore(2))
	assert.Equal(t, 900, tetris.LineClearScore(3))
	assert.Equal(t, 1600, tetris.LineClearScore(4))
}

func TestGravityInterval(t *testing.T) {
	assert.Equal(t, 1000, tetris.GravityInterval(0))
	assert.Equal(t, 1000, tetris.GravityInterval(4999))
	assert.Equal(t, 999, tetris.GravityInterval(5000))
	assert.Equal(t, 1, tetris.GravityInterval(999*5000))
	assert.Equal(t, 1, tetris.GravityInterval(999000*5))
	assert.Equal(t, 1, tetris.GravityInterval(1<<40))
}

func TestGravityStep(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceO))

	for range tetris.GravityInterval(0) - 1 {
		s.Tick(none)
	}
	assert.Equal(t, 0, s.Active().Position.Y)

	snap, changed := s.Tick(none)
	assert.True(t, changed)
	assert.True(t, snap.Has(tetris.EventGravityStep))
	assert.Equal(t, 1, s.Active().Position.Y)
}

func TestGravityLocksAtFloor(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceO))
	tetris.SetScore(s, 999*5000)

	// Gravity already acts on the spawn tick at this score.
	s.Tick(none)
	assert.Equal(t, 1, s.Active().Position.Y)
	for range 16 {
		s.Tick(none)
	}
	assert.Equal(t, 17, s.Active().Position.Y)

	snap, _ := s.Tick(none)
	assert.True(t, snap.Has(tetris.EventLocked))
	assert.True(t, snap.Board[19][4])
	assert.True(t, snap.Board[18][5])
}

func TestSoftDropLocksOnFailure(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceO))
	s.Tick(none)

	locked := false
	for range 200 {
		snap, _ := s.Tick(down)
		if snap.Has(tetris.EventLocked) {
			locked = true
			break
		}
	}
	assert.True(t, locked)
	f := s.Field()
	assert.True(t, f.IsOccupied(4, 19))
}

func TestMovementAndRotation(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceT))
	s.Tick(none)

	snap, _ := s.Tick(left)
	assert.True(t, snap.Has(tetris.EventMoved))
	assert.Equal(t, 2, s.Active().Position.X)

	s.Tick(none)
	snap, _ = s.Tick(spin)
	assert.True(t, snap.Has(tetris.EventRotated))
	assert.Equal(t, tetris.TemplateShape(tetris.PieceT).RotateClockwise(), s.Active().Shape)

	// Pushing into the wall is a silent no-op.
	for range 10 {
		s.Tick(none)
		s.Tick(left)
	}
	x := s.Active().Position.X
	s.Tick(none)
	snap, changed := s.Tick(left)
	assert.False(t, changed)
	assert.False(t, snap.Has(tetris.EventMoved))
	assert.Equal(t, x, s.Active().Position.X)
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceI))
	tetris.SetCell(tetris.SessionField(s), 4, 1)

	snap, changed := s.Tick(none)
	assert.True(t, changed)
	assert.True(t, snap.Has(tetris.EventGameOver))
	assert.Equal(t, tetris.StateGameOver, s.State())

	snap, changed = s.Tick(hardDrop)
	assert.False(t, changed)
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, tetris.StateGameOver, snap.State)
}

func TestQuit(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceL))
	s.Tick(none)

	snap, changed := s.Tick(tetris.NewActionSet(tetris.ActionQuit, tetris.ActionMoveLeft))
	assert.True(t, changed)
	assert.True(t, snap.Has(tetris.EventQuit))
	assert.False(t, snap.Has(tetris.EventMoved))
	assert.True(t, s.Quit())
	assert.Equal(t, tetris.StateGameOver, s.State())
}

// seqRNG draws piece types in a fixed cycle.
type seqRNG struct {
	types []tetris.PieceType
	i     int
}

func (r *seqRNG) IntN(n int) int {
	t := r.types[r.i%len(r.types)]
	r.i++
	return int(t) % n
}

func TestQuitReportsActivePiece(t *testing.T) {
	s := tetris.NewSession(&seqRNG{types: []tetris.PieceType{tetris.PieceI, tetris.PieceO}})
	s.Tick(none)
	require.Equal(t, tetris.PieceI, s.Active().Type)
	require.Equal(t, tetris.PieceO, s.Next())

	snap, _ := s.Tick(tetris.NewActionSet(tetris.ActionQuit))
	require.Len(t, snap.Events, 1)
	assert.Equal(t, tetris.Event{Kind: tetris.EventQuit, Piece: tetris.PieceI}, snap.Events[0])
}

func TestSameSeedSameGame(t *testing.T) {
	script := []tetris.ActionSet{none, left, none, spin, right, right, down, hardDrop}

	play := func() []tetris.Snapshot {
		s := tetris.NewSession(tetris.NewRNG(42))
		var out []tetris.Snapshot
		for i := range 400 {
			snap, _ := s.Tick(script[i%len(script)])
			out = append(out, snap)
		}
		return out
	}

	assert.Equal(t, play(), play())
}

func TestStatsCountSpawns(t *testing.T) {
	s := tetris.NewSession(tetris.NewRNG(7))
	for range 5 {
		s.Tick(none)
		s.Tick(hardDrop)
	}

	stats := s.Stats()
	assert.Equal(t, 5, stats.TotalPieces())
	assert.Equal(t, 5, stats.Locks)

	perType := 0
	for _, pt := range allTypes {
		perType += stats.Pieces(pt)
	}
	assert.Equal(t, 5, perType)
}

func TestGhostY(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceI))
	_, ok := s.GhostY()
	assert.False(t, ok)

	s.Tick(none)
	y, ok := s.GhostY()
	assert.True(t, ok)
	assert.Equal(t, 18, y)
	assert.Equal(t, 0, s.Active().Position.Y)
}

func TestWithReleaseMode(t *testing.T) {
	s := tetris.NewSession(fixedRNG(tetris.PieceT), tetris.WithReleaseMode(tetris.ReleasePerKey))
	s.Tick(left)
	assert.True(t, s.KeyState(tetris.DirLeft).Held)

	s.Tick(spin)
	assert.False(t, s.KeyState(tetris.DirLeft).Held)
	assert.True(t, s.KeyState(tetris.DirRotate).Held)
}
