package world

import (
	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
)

// ActorView is a read-only copy of a player or enemy for drawing
type ActorView struct {
	ID           entity.EntityID
	Rect         geom.Rect
	Image        string
	Stats        entity.Resources
	Casting      string  // ability name, empty when idle
	CastProgress float64 // [0, 1]
	State        entity.AIState
	Targeted     bool
}

// AbilityView describes one hotbar slot
type AbilityView struct {
	Name              string
	Icon              string
	CooldownRemaining float64
	Ready             bool
}

// Snapshot is everything a render sink needs for one frame.
// It shares no mutable state with the Map.
type Snapshot struct {
	Now         float64
	Tiles       []entity.Tile
	Player      ActorView
	PlayerAlive bool
	Portrait    string
	Enemies     []ActorView
	Projectiles []entity.Projectile
	Abilities   []AbilityView
	Damage      []entity.DamageEntry
	Inventory   []entity.ItemID
	Equipped    map[string]entity.ItemID
	SlotNames   []string
}

// Snapshot copies the renderable state of the map
func (m *Map) Snapshot() Snapshot {
	s := Snapshot{Now: m.now}

	s.Tiles = make([]entity.Tile, len(m.tiles))
	for i, t := range m.tiles {
		s.Tiles[i] = *t
	}

	var target entity.EntityID
	if p := m.player; p != nil {
		target = p.Target
		s.Player = m.actorView(&p.Body, &p.Resources, &p.Caster)
		s.PlayerAlive = p.Alive()
		s.Portrait = p.Portrait
		s.Damage = append([]entity.DamageEntry(nil), p.DamageLog...)
		for _, a := range p.Abilities {
			s.Abilities = append(s.Abilities, AbilityView{
				Name:              a.Name,
				Icon:              a.Icon,
				CooldownRemaining: a.CooldownRemaining(m.now),
				Ready:             a.Ready(m.now),
			})
		}
		if p.Inventory != nil {
			s.Inventory = append([]entity.ItemID(nil), p.Inventory.Items...)
		}
		if p.Equipped != nil {
			s.Equipped = make(map[string]entity.ItemID, len(p.Equipped.Slots))
			for k, v := range p.Equipped.Slots {
				s.Equipped[k] = v
			}
			s.SlotNames = p.Equipped.SlotNames()
		}
	}

	s.Enemies = make([]ActorView, 0, len(m.enemies))
	for _, e := range m.enemies {
		v := m.actorView(&e.Body, &e.Resources, &e.Caster)
		v.State = e.State
		v.Targeted = target != entity.NoEntity && e.ID == target
		s.Enemies = append(s.Enemies, v)
	}

	s.Projectiles = make([]entity.Projectile, len(m.projectiles))
	for i, p := range m.projectiles {
		s.Projectiles[i] = *p
	}
	return s
}

func (m *Map) actorView(b *entity.Body, r *entity.Resources, c *entity.Caster) ActorView {
	v := ActorView{
		ID:           b.ID,
		Rect:         b.Rect,
		Image:        b.Image,
		Stats:        *r,
		CastProgress: system.CastProgress(m.now, c),
	}
	if a := c.ActiveAbility(); a != nil {
		v.Casting = a.Name
	}
	return v
}
