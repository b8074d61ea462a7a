// Package scene defines the Scene interface for windowed screens.
//
// A screen implements Scene to handle its own input, stepping and
// rendering. The board view is currently the only one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error (ebiten.Termination to quit cleanly) to stop the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
