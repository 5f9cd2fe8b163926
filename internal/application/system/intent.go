package system

import (
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
)

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// TargetIntent selects whatever lies under a screen point
type TargetIntent struct {
	EntityID entity.EntityID
	Screen   geom.Point
}

func (TargetIntent) isIntent() {}

// InteractIntent opens doors within reach
type InteractIntent struct {
	EntityID entity.EntityID
}

func (InteractIntent) isIntent() {}

// CastIntent requests the ability at Index
type CastIntent struct {
	EntityID entity.EntityID
	Index    int
}

func (CastIntent) isIntent() {}

// MoveIntent represents a movement intention
type MoveIntent struct {
	EntityID entity.EntityID
	DX, DY   float64 // Pixels to move
}

func (MoveIntent) isIntent() {}

// Intents expands a command into the player's intents for this frame,
// in the order the world applies them.
func Intents(cmd InputCommand, player *entity.Player, dt float64) []Intent {
	intents := make([]Intent, 0, 4)
	if cmd.TargetAt != nil {
		intents = append(intents, TargetIntent{EntityID: player.ID, Screen: *cmd.TargetAt})
	}
	if cmd.Interact {
		intents = append(intents, InteractIntent{EntityID: player.ID})
	}
	if cmd.UseAbility != NoAbility {
		intents = append(intents, CastIntent{EntityID: player.ID, Index: cmd.UseAbility})
	}
	if axis := cmd.Axis(); axis.X != 0 || axis.Y != 0 {
		step := player.Speed * dt
		intents = append(intents, MoveIntent{EntityID: player.ID, DX: axis.X * step, DY: axis.Y * step})
	}
	return intents
}
