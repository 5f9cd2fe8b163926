package system

import (
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
)

// Camera keeps the focus rect centered on screen
type Camera struct {
	ScreenW float64
	ScreenH float64
}

// NewCamera creates a camera for the given logical screen size
func NewCamera(screenW, screenH int) Camera {
	return Camera{ScreenW: float64(screenW), ScreenH: float64(screenH)}
}

// Offset returns the world position of the screen's top-left corner
func (c Camera) Offset(focus geom.Rect) geom.Vec {
	center := focus.Center()
	return geom.Vec{X: center.X - c.ScreenW/2, Y: center.Y - c.ScreenH/2}
}

// ToWorld converts a screen point to world space
func (c Camera) ToWorld(screen geom.Point, focus geom.Rect) geom.Point {
	return screen.Add(c.Offset(focus))
}

// ToScreen converts a world rect to screen space
func (c Camera) ToScreen(world geom.Rect, focus geom.Rect) geom.Rect {
	off := c.Offset(focus)
	return world.Translate(-off.X, -off.Y)
}

// PickTarget returns the first enemy whose rect contains p, or NoEntity.
func PickTarget(p geom.Point, enemies []*entity.Enemy) entity.EntityID {
	for _, e := range enemies {
		if e.Rect.ContainsPoint(p) {
			return e.ID
		}
	}
	return entity.NoEntity
}
