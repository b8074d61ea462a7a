// Package board provides the windowed Galton board scene.
package board

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/galton/internal/application/scene"
	"github.com/younwookim/galton/internal/application/sim"
	"github.com/younwookim/galton/internal/application/state"
	"github.com/younwookim/galton/internal/application/system"
	"github.com/younwookim/galton/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGrid      = color.RGBA{45, 45, 70, 255}
	colorWall      = color.RGBA{200, 50, 50, 255}
	colorPeg       = color.RGBA{200, 200, 220, 255}
	colorSlab      = color.RGBA{80, 80, 100, 255}
	colorBall      = color.RGBA{100, 200, 100, 255}
	colorSettling  = color.RGBA{255, 215, 0, 255}
	colorHistogram = color.RGBA{100, 100, 200, 128}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

// histogramHeight is the tallest bar in pixels.
const histogramHeight = 120

// Board renders a running simulation and handles keyboard commands.
type Board struct {
	sim         *sim.Simulation
	input       *InputSystem
	state       state.RunState
	showWalls   bool
	showGrid    bool
	gridSpacing float64
	screenW     int
	screenH     int
}

// New creates the scene for s. Debug toggles start from the config.
func New(s *sim.Simulation) *Board {
	cfg := s.Config()
	return &Board{
		sim:         s,
		input:       NewInputSystem(),
		state:       state.StateRunning,
		showWalls:   cfg.Debug.ShowWalls,
		showGrid:    cfg.Debug.ShowGrid,
		gridSpacing: cfg.Debug.GridSpacing,
		screenW:     cfg.Display.ScreenWidth,
		screenH:     cfg.Display.ScreenHeight,
	}
}

// Update handles input and steps the simulation (implements scene.Scene)
func (b *Board) Update(dt float64) (scene.Scene, error) {
	for _, cmd := range b.input.GetInput().Commands() {
		if err := b.Apply(cmd); err != nil {
			return nil, err
		}
	}
	return nil, b.advance(dt)
}

// Apply executes a single command. CmdQuit returns ebiten.Termination.
func (b *Board) Apply(cmd system.Command) error {
	switch cmd {
	case system.CmdTogglePause:
		b.state = b.state.Toggle()
	case system.CmdReset:
		b.sim.Reset()
		b.state = state.StateRunning
		log.Printf("Board reset: %d balls", b.sim.NumBalls())
	case system.CmdToggleWalls:
		b.showWalls = !b.showWalls
	case system.CmdToggleGrid:
		b.showGrid = !b.showGrid
	case system.CmdQuit:
		return ebiten.Termination
	}
	return nil
}

func (b *Board) advance(dt float64) error {
	if !b.state.Advancing() {
		return nil
	}
	if err := b.sim.Step(dt); err != nil {
		return err
	}
	if b.sim.Done() {
		b.state = state.StateFinished
		t := b.sim.Tally()
		log.Printf("All balls settled after %d frames (mean bin %.2f)", b.sim.Stats().Frame, t.Mean())
	}
	return nil
}

// State returns the current run state.
func (b *Board) State() state.RunState {
	return b.state
}

// ShowWalls reports whether the wall markers are drawn.
func (b *Board) ShowWalls() bool {
	return b.showWalls
}

// ShowGrid reports whether the background grid is drawn.
func (b *Board) ShowGrid() bool {
	return b.showGrid
}

// Draw renders the board (implements scene.Scene)
func (b *Board) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	board := b.sim.Board()
	if b.showGrid {
		b.drawGrid(screen)
	}
	b.drawHistogram(screen, board)
	b.drawObstacles(screen, board)
	b.drawBalls(screen)
	if b.showWalls {
		b.drawWalls(screen, board)
	}
	b.drawUI(screen)

	if b.state == state.StatePaused {
		b.drawPauseOverlay(screen)
	}
}

func (b *Board) drawGrid(screen *ebiten.Image) {
	if b.gridSpacing <= 0 {
		return
	}
	w, h := float32(b.screenW), float32(b.screenH)
	for x := b.gridSpacing; x < float64(b.screenW); x += b.gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, colorGrid, false)
	}
	for y := b.gridSpacing; y < float64(b.screenH); y += b.gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 1, colorGrid, false)
	}
}

func (b *Board) drawHistogram(screen *ebiten.Image, board *entity.Board) {
	for _, bar := range HistogramBars(board, b.sim.Tally(), float64(b.screenH), histogramHeight) {
		if bar.H <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(bar.X)+1, float32(bar.Y), float32(bar.W)-2, float32(bar.H), colorHistogram, false)
	}
}

func (b *Board) drawObstacles(screen *ebiten.Image, board *entity.Board) {
	for _, peg := range board.Pegs() {
		vector.DrawFilledCircle(screen, float32(peg.X()), float32(peg.Y()), float32(peg.Radius()), colorPeg, true)
	}
	for _, s := range board.Slabs() {
		vector.DrawFilledRect(screen, float32(s.Left), float32(s.Top), float32(s.Width()), float32(s.Bottom-s.Top), colorSlab, false)
	}
}

func (b *Board) drawBalls(screen *ebiten.Image) {
	for _, ball := range b.sim.Balls() {
		c := colorBall
		if ball.Phase >= entity.PhaseSettling {
			c = colorSettling
		}
		vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.R), c, true)
	}
}

func (b *Board) drawWalls(screen *ebiten.Image, board *entity.Board) {
	h := float32(b.screenH)
	lx, rx := float32(board.LeftWallX()), float32(board.RightWallX())
	vector.StrokeLine(screen, lx, 0, lx, h, 1, colorWall, false)
	vector.StrokeLine(screen, rx, 0, rx, h, 1, colorWall, false)
	ly := float32(board.LastRowY())
	vector.StrokeLine(screen, lx, ly, rx, ly, 1, colorWall, false)
}

func (b *Board) drawUI(screen *ebiten.Image) {
	st := b.sim.Stats()
	t := b.sim.Tally()
	text := fmt.Sprintf("%s  balls: %d  settled: %d  mean bin: %.2f\npeg hits: %d  bucket hits: %d  frame: %d",
		b.state, b.sim.NumBalls(), t.Total(), t.Mean(), st.PegHits, st.BucketHits, st.Frame)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
	ebitenutil.DebugPrintAt(screen, "SPACE pause  R reset  TAB walls  G grid  ESC quit", 10, 40)
}

func (b *Board) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(b.screenW), float32(b.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", b.screenW/2-20, b.screenH/2-8)
}

// OnEnter is called when entering this scene
func (b *Board) OnEnter() {
	log.Printf("Board: %d pegs, %d bins, %d balls", b.sim.Board().NumPegs(), b.sim.Board().NumBuckets(), b.sim.NumBalls())
}

// OnExit is called when leaving this scene
func (b *Board) OnExit() {
	t := b.sim.Tally()
	log.Printf("Settled %d balls: %v", t.Total(), t.Counts())
}
