package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spellsword/internal/application/system"
)

// InputSource yields one frame of decoded input. ok is false once the
// source is exhausted; live input never runs out.
type InputSource interface {
	GetInput() (in system.InputState, ok bool)
}

// LiveInput reads the keyboard and mouse every frame
type LiveInput struct {
	sys *system.InputSystem
}

// NewLiveInput creates a live input source
func NewLiveInput() *LiveInput {
	return &LiveInput{sys: system.NewInputSystem()}
}

// GetInput implements InputSource
func (l *LiveInput) GetInput() (system.InputState, bool) {
	return l.sys.GetInput(), true
}

// MenuInput holds the character-menu keys pressed this frame
type MenuInput struct {
	PrevTab, NextTab       bool // Q / E
	PrevFilter, NextFilter bool // A / D
	Up, Down               bool // W / S
	Equip                  bool // Enter
}

// readMenuInput reads menu navigation keys. Menu input is not recorded:
// the world is frozen while the menu is open.
func readMenuInput() MenuInput {
	return MenuInput{
		PrevTab:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		NextTab:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		PrevFilter: inpututil.IsKeyJustPressed(ebiten.KeyA),
		NextFilter: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Up:         inpututil.IsKeyJustPressed(ebiten.KeyW),
		Down:       inpututil.IsKeyJustPressed(ebiten.KeyS),
		Equip:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
