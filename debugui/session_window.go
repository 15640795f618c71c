package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

var directions = []tetris.Direction{tetris.DirLeft, tetris.DirRight, tetris.DirDown, tetris.DirRotate}

// SessionWindow shows the engine state and lets the game be paused and stepped.
type SessionWindow struct {
	Paused bool
	step   bool
}

// TakeStep reports whether a single step was requested while paused, and clears
// the request.
func (w *SessionWindow) TakeStep() bool {
	step := w.step
	w.step = false
	return step
}

func (w *SessionWindow) Render(s *tetris.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 380), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	label := "Pause"
	if w.Paused {
		label = "Resume"
	}
	if imgui.Button(label) {
		w.Paused = !w.Paused
	}
	if w.Paused {
		imgui.SameLine()
		if imgui.Button("Step") {
			w.step = true
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Tick: %d", s.Ticks()))
	imgui.Text(fmt.Sprintf("Score: %d", s.Score()))
	imgui.Text(fmt.Sprintf("Gravity: every %d ticks", tetris.GravityInterval(s.Score())))
	imgui.Text(fmt.Sprintf("Next: %s", s.Next()))
	if p := s.Active(); p != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d,%d)", p.Type, p.Position.X, p.Position.Y))
	}

	if imgui.TreeNodeStr("Input Timer") {
		for _, d := range directions {
			key := s.KeyState(d)
			if key.Held {
				imgui.BulletText(fmt.Sprintf("%s: held, countdown %d", d, key.Countdown))
			} else {
				imgui.BulletText(fmt.Sprintf("%s: idle", d))
			}
		}
		imgui.TreePop()
	}

	stats := s.Stats()
	if imgui.TreeNodeStr("Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for t := range tetris.PieceType(tetris.PieceTypeCount) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(t.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Pieces(t)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		imgui.Text(fmt.Sprintf("Lines: %d  Locks: %d", stats.Lines, stats.Locks))
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d row: %d", rows, stats.Clears(rows)))
		}
		imgui.Text(fmt.Sprintf("Hard drop distance: %d", stats.HardDropDistance))
		imgui.TreePop()
	}

	imgui.End()
}
