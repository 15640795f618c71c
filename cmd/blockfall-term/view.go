package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Each field cell is two terminal columns wide so the well looks square.
	cellWidth = 2
	boardLeft = 2
	boardTop  = 1
	hudLeft   = boardLeft + tetris.FieldWidth*cellWidth + 4
	flashTime = 150 * time.Millisecond
)

var (
	frameStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	lockedStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	flashStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var pieceColors = [tetris.PieceTypeCount]tcell.Color{
	tetris.PieceI: tcell.ColorAqua,
	tetris.PieceO: tcell.ColorYellow,
	tetris.PieceT: tcell.ColorPurple,
	tetris.PieceS: tcell.ColorGreen,
	tetris.PieceZ: tcell.ColorRed,
	tetris.PieceJ: tcell.ColorBlue,
	tetris.PieceL: tcell.ColorOrange,
}

// view draws snapshots onto a tcell screen.
type view struct {
	screen  tcell.Screen
	session *tetris.Session
	player  *sound.Player
	now     func() time.Time

	flashRows  []int
	flashUntil time.Time
}

func newView(screen tcell.Screen, session *tetris.Session) *view {
	return &view{screen: screen, session: session, now: time.Now}
}

// Render implements tetris.Sink.
func (v *view) Render(s tetris.Snapshot) {
	if len(s.ClearRows) > 0 {
		v.flashRows = s.ClearRows
		v.flashUntil = v.now().Add(flashTime)
	}
	if v.player != nil {
		v.player.Play(s.Events)
	}

	v.screen.Clear()
	v.drawWell(s)
	v.drawActive(s)
	v.drawHUD(s)
	v.screen.Show()
}

func (v *view) setCell(col, row int, ch rune, style tcell.Style) {
	x := boardLeft + col*cellWidth
	y := boardTop + row
	for i := range cellWidth {
		v.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (v *view) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *view) drawWell(s tetris.Snapshot) {
	right := boardLeft + tetris.FieldWidth*cellWidth
	bottom := boardTop + tetris.FieldHeight

	for y := boardTop; y < bottom; y++ {
		v.screen.SetContent(boardLeft-1, y, '│', nil, frameStyle)
		v.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	v.screen.SetContent(boardLeft-1, bottom, '└', nil, frameStyle)
	v.screen.SetContent(right, bottom, '┘', nil, frameStyle)
	for x := boardLeft; x < right; x++ {
		v.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}

	for y := range tetris.FieldHeight {
		for x := range tetris.FieldWidth {
			if s.Board[y][x] {
				v.setCell(x, y, ' ', lockedStyle)
			}
		}
	}

	if v.now().Before(v.flashUntil) {
		for _, row := range v.flashRows {
			for x := range tetris.FieldWidth {
				v.setCell(x, row, ' ', flashStyle)
			}
		}
	}
}

func (v *view) drawActive(s tetris.Snapshot) {
	if s.Active == nil {
		return
	}

	if piece := v.session.Active(); piece != nil {
		if ghostY, ok := v.session.GhostY(); ok {
			dy := ghostY - piece.Position.Y
			for _, c := range s.Active.Cells {
				if !s.Occupied(c.X, c.Y+dy) {
					v.setCell(c.X, c.Y+dy, '░', ghostStyle)
				}
			}
		}
	}

	style := tcell.StyleDefault.Background(pieceColors[s.Active.Type])
	for _, c := range s.Active.Cells {
		v.setCell(c.X, c.Y, ' ', style)
	}
}

func (v *view) drawHUD(s tetris.Snapshot) {
	v.drawText(hudLeft, boardTop, textStyle, fmt.Sprintf("SCORE %d", s.Score))
	v.drawText(hudLeft, boardTop+1, textStyle, fmt.Sprintf("LINES %d", s.Lines))
	v.drawText(hudLeft, boardTop+2, textStyle, fmt.Sprintf("SPEED %d", tetris.GravityInterval(s.Score)))

	v.drawText(hudLeft, boardTop+4, textStyle, "NEXT")
	shape := tetris.TemplateShape(s.Next)
	style := tcell.StyleDefault.Background(pieceColors[s.Next])
	for y := range tetris.ShapeSize {
		for x := range tetris.ShapeSize {
			if shape.At(x, y) {
				for i := range cellWidth {
					v.screen.SetContent(hudLeft+x*cellWidth+i, boardTop+5+y, ' ', nil, style)
				}
			}
		}
	}

	v.drawText(hudLeft, boardTop+11, frameStyle, "←→/hl move  ↑/k rotate")
	v.drawText(hudLeft, boardTop+12, frameStyle, "↓/j soft  SPACE drop")
	v.drawText(hudLeft, boardTop+13, frameStyle, "ESC/q quit")

	if s.State == tetris.StateGameOver {
		v.drawText(hudLeft, boardTop+15, alertStyle, "GAME OVER")
		v.drawText(hudLeft, boardTop+16, textStyle, "any key to exit")
	}
}
