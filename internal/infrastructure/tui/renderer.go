// Package tui renders a Galton board simulation into a terminal using tcell.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/galton/internal/application/sim"
	"github.com/younwookim/galton/internal/application/state"
	"github.com/younwookim/galton/internal/domain/entity"
)

const (
	runePeg       = '·'
	runeSlab      = '|'
	runeWall      = '#'
	runeBall      = 'o'
	runeHistogram = '▒'
	statusLines   = 2
)

var (
	stylePeg       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSlab      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBall      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSettling  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHistogram = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer maps board coordinates onto terminal cells.
type Renderer struct {
	screen    tcell.Screen
	sim       *sim.Simulation
	ShowWalls bool
}

// NewRenderer creates a renderer drawing s onto screen.
func NewRenderer(screen tcell.Screen, s *sim.Simulation) *Renderer {
	return &Renderer{
		screen:    screen,
		sim:       s,
		ShowWalls: s.Config().Debug.ShowWalls,
	}
}

// Cell converts a board position to a terminal cell. The bottom statusLines
// rows are reserved for the status bar.
func (r *Renderer) Cell(x, y float64) (int, int) {
	cols, rows := r.area()
	b := r.sim.Board()
	cx := int(x / b.ScreenW() * float64(cols))
	cy := int(y / b.ScreenH() * float64(rows))
	return cx, cy
}

func (r *Renderer) area() (int, int) {
	w, h := r.screen.Size()
	return w, max(h-statusLines, 1)
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.area()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(st state.RunState) {
	r.screen.Clear()
	b := r.sim.Board()

	r.drawHistogram(b)
	for _, p := range b.Pegs() {
		x, y := r.Cell(p.X(), p.Y())
		r.set(x, y, runePeg, stylePeg)
	}
	for _, s := range b.Slabs() {
		x, top := r.Cell(s.CenterX(), s.Top)
		_, bottom := r.Cell(s.CenterX(), s.Bottom)
		for y := top; y <= bottom; y++ {
			r.set(x, y, runeSlab, styleSlab)
		}
	}
	if r.ShowWalls {
		_, rows := r.area()
		lx, _ := r.Cell(b.LeftWallX(), 0)
		rx, _ := r.Cell(b.RightWallX(), 0)
		for y := 0; y < rows; y++ {
			r.set(lx, y, runeWall, styleWall)
			r.set(rx, y, runeWall, styleWall)
		}
	}
	for _, ball := range r.sim.Balls() {
		x, y := r.Cell(ball.X, ball.Y)
		style := styleBall
		if ball.Phase >= entity.PhaseSettling {
			style = styleSettling
		}
		r.set(x, y, runeBall, style)
	}

	r.drawStatus(st)
	r.screen.Show()
}

// drawHistogram fills each bin from the bottom up; the fullest bin takes a
// quarter of the board height.
func (r *Renderer) drawHistogram(b *entity.Board) {
	_, rows := r.area()
	maxRows := float64(max(rows/4, 1))
	t := r.sim.Tally()

	left := b.LeftWallX()
	for i, n := range t.Normalized() {
		right := b.RightWallX()
		if i < b.NumSlabs() {
			right = b.SlabAt(i).CenterX()
		}
		x0, _ := r.Cell(left, 0)
		x1, _ := r.Cell(right, 0)
		h := int(math.Round(n * maxRows))
		for x := x0 + 1; x < x1; x++ {
			for y := rows - h; y < rows; y++ {
				r.set(x, y, runeHistogram, styleHistogram)
			}
		}
		left = right
	}
}

func (r *Renderer) drawStatus(st state.RunState) {
	_, h := r.screen.Size()
	stats := r.sim.Stats()
	t := r.sim.Tally()
	r.drawText(0, h-2, fmt.Sprintf("%s  balls:%d  settled:%d  mean bin:%.2f  frame:%d",
		st, r.sim.NumBalls(), t.Total(), t.Mean(), stats.Frame))
	r.drawText(0, h-1, "[space] pause  [r] reset  [tab] walls  [q] quit")
}

func (r *Renderer) drawText(x, y int, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, styleStatus)
		x++
	}
}
