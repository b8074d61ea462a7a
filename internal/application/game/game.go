// Package game provides the ebiten loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/galton/internal/application/scene"
)

// Options configures the logical screen and the fixed update rate.
type Options struct {
	ScreenW   int
	ScreenH   int
	Framerate int
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// A non-positive framerate falls back to 60.
func New(initialScene scene.Scene, opts Options) *Game {
	fps := opts.Framerate
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: opts.ScreenW,
		screenH: opts.ScreenH,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions; ebiten scales them to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close calls OnExit on the current scene. Call it once after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the fixed time step handed to scenes.
func (g *Game) DT() float64 {
	return g.dt
}

// Frames returns the number of completed updates.
func (g *Game) Frames() int {
	return g.frames
}
