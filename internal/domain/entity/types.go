package entity

import "github.com/younwookim/spellsword/internal/domain/geom"

// EntityID is a unique identifier for an entity. Zero means "no entity".
type EntityID uint32

// NoEntity is the zero EntityID, used for an empty target.
const NoEntity EntityID = 0

// TileKind represents the kind of a map tile
type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
	TileDoor
)

func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// Tile is a single map tile. Walls and closed doors block movement and
// line of sight; floors only render.
type Tile struct {
	ID    EntityID
	Kind  TileKind
	Rect  geom.Rect
	Image string
	Open  bool
}

// Bounds returns the tile rect
func (t *Tile) Bounds() geom.Rect {
	return t.Rect
}

// Solid reports whether the tile takes part in collision
func (t *Tile) Solid() bool {
	switch t.Kind {
	case TileWall:
		return true
	case TileDoor:
		return !t.Open
	default:
		return false
	}
}

// Collidable is anything with a world-space rect
type Collidable interface {
	Bounds() geom.Rect
}

// Movable exposes the physical body the movement resolver mutates
type Movable interface {
	Collidable
	Physical() *Body
}

// Targetable is an entity abilities can land on
type Targetable interface {
	Collidable
	Stats() *Resources
}

// Castable is an entity that owns abilities and a cast state
type Castable interface {
	Targetable
	CasterState() *Caster
}

// Actor is a live participant of the world: it moves, casts and can be targeted.
type Actor interface {
	Movable
	Castable
}
