package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardX      = 380
	boardY      = 40
	hudX        = boardX + tetris.FieldWidth*CellSize + 30
	flashFrames = 45
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{12, 12, 16, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	lockedColor     = color.RGBA{130, 130, 140, 255}
	ghostColor      = color.RGBA{255, 255, 255, 90}
	flashColor      = color.RGBA{255, 255, 255, 140}
)

var pieceColors = [tetris.PieceTypeCount]color.RGBA{
	tetris.PieceI: {102, 191, 255, 255},
	tetris.PieceO: {255, 203, 0, 255},
	tetris.PieceT: {135, 60, 190, 255},
	tetris.PieceS: {0, 158, 47, 255},
	tetris.PieceZ: {255, 109, 194, 255},
	tetris.PieceJ: {0, 121, 241, 255},
	tetris.PieceL: {255, 161, 0, 255},
}

type keyBinding struct {
	keys   []ebiten.Key
	action tetris.Action
	// held bindings report the action on every frame the key is down; the rest
	// only on the frame it goes down.
	held bool
}

var keyBindings = []keyBinding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, tetris.ActionMoveLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, tetris.ActionMoveRight, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, tetris.ActionSoftDrop, true},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ, ebiten.KeyX}, tetris.ActionRotate, true},
	{[]ebiten.Key{ebiten.KeySpace}, tetris.ActionHardDrop, false},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, tetris.ActionQuit, false},
}

// Game implements ebiten.Game around a single session.
type Game struct {
	Session *tetris.Session
	Player  *sound.Player

	seed     uint64
	mode     tetris.ReleaseMode
	snapshot tetris.Snapshot

	flashRows   []int
	flashFrames int

	imguiBackend  *debugui_ebiten.ImguiBackend
	perf          *debugui.PerformanceStats
	sessionWindow *debugui.SessionWindow
	frameTimer    *debugui.FrameTimer
}

func NewGame(seed uint64, mode tetris.ReleaseMode) *Game {
	g := &Game{seed: seed, mode: mode}
	g.restart()
	return g
}

func (g *Game) restart() {
	g.Session = tetris.NewSession(tetris.NewRNG(g.seed), tetris.WithReleaseMode(g.mode))
	g.snapshot = g.Session.Snapshot()
	g.flashRows = nil
	g.flashFrames = 0
}

// EnableDebug creates the window through the Dear ImGui backend and registers the
// debug windows. It must be called before ebiten.RunGame.
func (g *Game) EnableDebug() {
	overlay := &debugui.Overlay{}
	g.imguiBackend = debugui_ebiten.NewImguiBackend(overlay)
	g.imguiBackend.CreateWindow(windowTitle, ScreenWidth, ScreenHeight)
	debugui_ebiten.DisableIniFile()

	g.perf = debugui.NewPerformanceStats(120)
	g.frameTimer = debugui.NewFrameTimer()
	g.sessionWindow = &debugui.SessionWindow{}

	overlay.Add(func() {
		g.perf.Render(g.Session.SchedulerStats(), g.frameTimer.GetDeltaTime())
	})
	overlay.Add(func() {
		g.sessionWindow.Render(g.Session)
	})
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.Frame()
	}

	if g.flashFrames > 0 {
		g.flashFrames--
	}

	if g.Session.State() == tetris.StateGameOver {
		if g.Session.Quit() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.seed++
			g.restart()
		}
		return nil
	}

	if g.sessionWindow != nil && g.sessionWindow.Paused && !g.sessionWindow.TakeStep() {
		return nil
	}

	snapshot, changed := g.Session.Tick(g.readInput())
	if changed {
		g.apply(snapshot)
	}

	if g.Session.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) readInput() tetris.ActionSet {
	var input tetris.ActionSet
	if g.imguiBackend != nil && g.imguiBackend.Overlay.WantCaptureKeyboard {
		return input
	}

	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if (binding.held && ebiten.IsKeyPressed(key)) || inpututil.IsKeyJustPressed(key) {
				input = input.With(binding.action)
				break
			}
		}
	}
	return input
}

func (g *Game) apply(snapshot tetris.Snapshot) {
	g.snapshot = snapshot
	if len(snapshot.ClearRows) > 0 {
		g.flashRows = snapshot.ClearRows
		g.flashFrames = flashFrames
	}
	if g.Player != nil {
		g.Player.Play(snapshot.Events)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawWell(screen)
	g.drawPieces(screen)
	g.drawHUD(screen)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func drawCell(screen *ebiten.Image, x, y float32, c color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c, false)
}

func cellOrigin(col, row int) (float32, float32) {
	return float32(boardX + col*CellSize), float32(boardY + row*CellSize)
}

func (g *Game) drawWell(screen *ebiten.Image) {
	const w = tetris.FieldWidth * CellSize
	const h = tetris.FieldHeight * CellSize

	vector.DrawFilledRect(screen, boardX, boardY, w, h, wellColor, false)
	for y := range tetris.FieldHeight {
		for x := range tetris.FieldWidth {
			sx, sy := cellOrigin(x, y)
			vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridColor, false)
			if g.snapshot.Board[y][x] {
				drawCell(screen, sx, sy, lockedColor)
			}
		}
	}
	vector.StrokeRect(screen, boardX-2, boardY-2, w+4, h+4, 2, lockedColor, false)

	if g.flashFrames > 0 {
		for _, row := range g.flashRows {
			_, sy := cellOrigin(0, row)
			vector.DrawFilledRect(screen, boardX, sy, w, CellSize, flashColor, false)
		}
	}
}

func (g *Game) drawPieces(screen *ebiten.Image) {
	active := g.snapshot.Active
	if active == nil {
		return
	}

	if piece := g.Session.Active(); piece != nil {
		if ghostY, ok := g.Session.GhostY(); ok {
			dy := ghostY - piece.Position.Y
			for _, c := range active.Cells {
				sx, sy := cellOrigin(c.X, c.Y+dy)
				vector.StrokeRect(screen, sx+2, sy+2, CellSize-4, CellSize-4, 2, ghostColor, false)
			}
		}
	}

	for _, c := range active.Cells {
		sx, sy := cellOrigin(c.X, c.Y)
		drawCell(screen, sx, sy, pieceColors[active.Type])
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.snapshot

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.Score), hudX, boardY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", s.Lines), hudX, boardY+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED %d", tetris.GravityInterval(s.Score)), hudX, boardY+40)

	ebitenutil.DebugPrintAt(screen, "NEXT", hudX, boardY+80)
	shape := tetris.TemplateShape(s.Next)
	for y := range tetris.ShapeSize {
		for x := range tetris.ShapeSize {
			if shape.At(x, y) {
				sx := float32(hudX + x*CellSize)
				sy := float32(boardY + 90 + y*CellSize)
				drawCell(screen, sx, sy, pieceColors[s.Next])
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, "ARROWS/WASD move  UP/Z rotate", hudX, boardY+240)
	ebitenutil.DebugPrintAt(screen, "SPACE drop  ESC quit", hudX, boardY+260)

	if s.State == tetris.StateGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardX+110, boardY+280)
		ebitenutil.DebugPrintAt(screen, "ENTER to play again", boardX+80, boardY+300)
	}
}
