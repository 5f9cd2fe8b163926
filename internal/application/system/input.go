package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spellsword/internal/domain/geom"
)

// NoAbility marks a frame without an ability request
const NoAbility = -1

var abilityKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// InputState holds the raw device state for one frame
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	AbilitySlot int // 1-9 number key pressed this frame, 0 when none
	MouseX      int
	MouseY      int
	MouseClick  bool
	Interact    bool
	Menu        bool
	Pause       bool
}

// InputCommand is the per-frame intent the world consumes.
// Build it with IdleCommand or InputState.Command: the zero value requests ability 0.
type InputCommand struct {
	MoveLeft   bool
	MoveRight  bool
	MoveUp     bool
	MoveDown   bool
	UseAbility int         // NoAbility for none
	TargetAt   *geom.Point // screen space click, nil when none
	Interact   bool
	ToggleMenu bool
}

// IdleCommand returns a command that does nothing
func IdleCommand() InputCommand {
	return InputCommand{UseAbility: NoAbility}
}

// Command converts raw input into a world command
func (in InputState) Command() InputCommand {
	cmd := InputCommand{
		MoveLeft:   in.Left,
		MoveRight:  in.Right,
		MoveUp:     in.Up,
		MoveDown:   in.Down,
		UseAbility: in.AbilitySlot - 1,
		Interact:   in.Interact,
		ToggleMenu: in.Menu,
	}
	if in.MouseClick {
		cmd.TargetAt = &geom.Point{X: float64(in.MouseX), Y: float64(in.MouseY)}
	}
	return cmd
}

// InputSystem reads player input from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS),
		AbilitySlot: s.abilityPressed(),
		MouseX:      mx,
		MouseY:      my,
		MouseClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Interact:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		Menu:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (s *InputSystem) abilityPressed() int {
	for i, k := range abilityKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}

// Axis returns the movement direction of a command, each component in {-1, 0, 1}.
// Opposite keys cancel out.
func (c InputCommand) Axis() geom.Vec {
	var v geom.Vec
	if c.MoveLeft {
		v.X--
	}
	if c.MoveRight {
		v.X++
	}
	if c.MoveUp {
		v.Y--
	}
	if c.MoveDown {
		v.Y++
	}
	return v
}
