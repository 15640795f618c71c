package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

// verticalI returns an I piece already turned upright, occupying absolute column
// x+2 and rows y..y+3.
func verticalI(x, y int) *tetris.Tetromino {
	p := tetris.NewTetromino(tetris.PieceI, x, y)
	p.RotateClockwise()
	return p
}

func TestRotateWithoutKick(t *testing.T) {
	var f tetris.Field
	p := tetris.NewTetromino(tetris.PieceI, 3, 5)

	assert.True(t, tetris.Rotate(&f, p))
	assert.Equal(t, 3, p.Position.X)
	assert.Equal(t, tetris.TemplateShape(tetris.PieceI).RotateClockwise(), p.Shape)
}

func TestRotateKickOrder(t *testing.T) {
	// An upright I at x=2 rotates into row 7, columns x..x+3. Offsets are tried
	// in the order 0, -1, +1, -2, +2.
	tests := []struct {
		name    string
		blocked []tetris.Point
		wantX   int
	}{
		{"direct", nil, 2},
		{"kick left one", []tetris.Point{{5, 7}}, 1},
		{"kick right one", []tetris.Point{{2, 7}}, 3},
		{"kick left two before right two", []tetris.Point{{4, 7}}, 0},
		{"kick right two", []tetris.Point{{3, 7}, {0, 6}, {0, 7}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f tetris.Field
			for _, c := range tt.blocked {
				tetris.SetCell(&f, c.X, c.Y)
			}

			p := verticalI(2, 5)
			assert.True(t, tetris.Rotate(&f, p))
			assert.Equal(t, tt.wantX, p.Position.X)
			assert.Equal(t, 5, p.Position.Y)
			assert.Equal(t, tetris.TemplateShape(tetris.PieceI).RotateClockwise().RotateClockwise(), p.Shape)
		})
	}
}

func TestRotateAllKicksFail(t *testing.T) {
	var f tetris.Field
	tetris.SetCell(&f, 2, 7)
	tetris.SetCell(&f, 6, 7)

	p := verticalI(2, 5)
	before := *p

	assert.False(t, tetris.Rotate(&f, p))
	assert.Equal(t, before, *p)
}

func TestRotateAgainstLeftWall(t *testing.T) {
	t.Run("clamped into the field", func(t *testing.T) {
		var f tetris.Field
		p := verticalI(-2, 5)

		assert.True(t, tetris.Rotate(&f, p))
		assert.Equal(t, 0, p.Position.X)
	})

	t.Run("blocked leaves piece unchanged", func(t *testing.T) {
		var f tetris.Field
		tetris.SetCell(&f, 3, 7)

		p := verticalI(-2, 5)
		before := *p

		assert.False(t, tetris.Rotate(&f, p))
		assert.Equal(t, before, *p)
	})
}

func TestRotateAgainstRightWall(t *testing.T) {
	var f tetris.Field
	p := verticalI(7, 5)

	assert.True(t, tetris.Rotate(&f, p))
	assert.Equal(t, 6, p.Position.X)
}

func TestShiftAndDrop(t *testing.T) {
	var f tetris.Field
	p := tetris.NewTetromino(tetris.PieceO, 0, 0)

	assert.True(t, tetris.Shift(&f, p, -1, 0))
	assert.False(t, tetris.Shift(&f, p, -1, 0))
	assert.Equal(t, -1, p.Position.X)

	assert.Equal(t, 17, tetris.DropRow(&f, p))
	assert.Equal(t, 0, p.Position.Y)

	assert.Equal(t, 17, tetris.Drop(&f, p))
	assert.Equal(t, 17, p.Position.Y)
	assert.Equal(t, 0, tetris.Drop(&f, p))
}
