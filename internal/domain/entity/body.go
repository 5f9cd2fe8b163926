package entity

import "github.com/younwookim/spellsword/internal/domain/geom"

// Body represents the physical body of an entity.
// Rect position is mutable; its size is fixed after creation.
type Body struct {
	ID        EntityID
	Rect      geom.Rect
	Speed     float64  // pixels per second
	Direction geom.Vec // enemies: current travel direction, components in [-1, 1]
	Image     string
}

// Bounds returns the body rect
func (b *Body) Bounds() geom.Rect {
	return b.Rect
}

// Center returns the rect center in world space
func (b *Body) Center() geom.Point {
	return b.Rect.Center()
}

// Physical returns the body itself, satisfying Movable
func (b *Body) Physical() *Body {
	return b
}

// Resources holds the bounded stats of a living entity.
// Every value stays within [0, max].
type Resources struct {
	Health     int
	MaxHealth  int
	Mana       int
	MaxMana    int
	Stamina    int
	MaxStamina int
	XP         int
	MaxXP      int
}

// Stats returns the resources, satisfying Targetable
func (r *Resources) Stats() *Resources {
	return r
}

// Alive reports whether health is above zero
func (r *Resources) Alive() bool {
	return r.Health > 0
}

// TakeDamage lowers health, clamped at zero. Returns true if the hit was lethal.
func (r *Resources) TakeDamage(amount int) bool {
	r.Health = clamp(r.Health-amount, 0, r.MaxHealth)
	return r.Health == 0
}

// SpendMana deducts mana, clamped at zero
func (r *Resources) SpendMana(amount int) {
	r.Mana = clamp(r.Mana-amount, 0, r.MaxMana)
}

// GainXP adds experience, capped at MaxXP
func (r *Resources) GainXP(amount int) {
	r.XP = clamp(r.XP+amount, 0, r.MaxXP)
}

// Ratio returns value/max in [0, 1]; zero when max is not positive
func Ratio(value, max int) float64 {
	if max <= 0 {
		return 0
	}
	f := float64(value) / float64(max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DamageEntry is one hit the player took, kept for on-screen numbers
type DamageEntry struct {
	Amount int
	At     float64
}

// Player represents the player entity
type Player struct {
	Body
	Resources
	Caster

	Portrait  string
	DamageLog []DamageEntry

	Inventory *Inventory
	Equipped  *Equipped
}

// NewPlayer creates a player at the given rect with full-default loadout containers.
func NewPlayer(id EntityID, rect geom.Rect, speed float64, res Resources) *Player {
	return &Player{
		Body: Body{
			ID:    id,
			Rect:  rect,
			Speed: speed,
		},
		Resources: res,
		Inventory: NewInventory(nil),
		Equipped:  NewEquipped(nil),
	}
}

// RecordDamage appends a hit to the damage log
func (p *Player) RecordDamage(amount int, now float64) {
	p.DamageLog = append(p.DamageLog, DamageEntry{Amount: amount, At: now})
}

// RecentDamage drops entries older than window and returns the rest
func (p *Player) RecentDamage(now, window float64) []DamageEntry {
	kept := p.DamageLog[:0]
	for _, e := range p.DamageLog {
		if now-e.At <= window {
			kept = append(kept, e)
		}
	}
	p.DamageLog = kept
	return kept
}
