// Package scene defines the screens the game loop switches between.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game normally
var ErrQuit = errors.New("quit")

// Scene is one game screen. The loop calls Update and Draw in strict
// alternation; a scene never sees them concurrently.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game stops.
	OnExit()
}
