package state

// GameState represents the current state of a session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCharacterMenu
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCharacterMenu:
		return "CharacterMenu"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state.
// The character menu freezes the world like pause does.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Event is something that can move a session between states
type Event int

const (
	EventPause Event = iota
	EventToggleMenu
	EventPlayerDied
	EventRestart
)

// Next returns the state after ev. Events that do not apply leave s unchanged.
func (s GameState) Next(ev Event) GameState {
	switch ev {
	case EventPlayerDied:
		return StateGameOver
	case EventRestart:
		if s == StateGameOver {
			return StatePlaying
		}
	case EventPause:
		switch s {
		case StatePlaying, StateCharacterMenu:
			return StatePaused
		case StatePaused:
			return StatePlaying
		}
	case EventToggleMenu:
		switch s {
		case StatePlaying:
			return StateCharacterMenu
		case StateCharacterMenu:
			return StatePlaying
		}
	}
	return s
}
