package entity

import (
	"math"

	"github.com/younwookim/spellsword/internal/domain/geom"
)

// Projectile is the visual trail of a resolved ranged ability.
// Damage is applied at resolution; the projectile only flies to the impact point.
type Projectile struct {
	X, Y     float64
	VX, VY   float64
	Active   bool
	IsPlayer bool // true if cast by the player
	Icon     string

	travelled float64
	distance  float64
}

// NewProjectile creates a projectile flying from one point to another at speed px/s
func NewProjectile(from, to geom.Point, speed float64, icon string, isPlayer bool) *Projectile {
	dir, ok := to.Sub(from).Normalize()
	dist := geom.Distance(from, to)
	if !ok || speed <= 0 {
		return &Projectile{X: to.X, Y: to.Y, Icon: icon, IsPlayer: isPlayer}
	}
	return &Projectile{
		X:        from.X,
		Y:        from.Y,
		VX:       dir.X * speed,
		VY:       dir.Y * speed,
		Active:   true,
		IsPlayer: isPlayer,
		Icon:     icon,
		distance: dist,
	}
}

// Update advances the projectile and deactivates it on arrival
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	step := math.Hypot(p.VX, p.VY) * dt
	if p.travelled+step >= p.distance {
		p.X += p.VX / math.Hypot(p.VX, p.VY) * (p.distance - p.travelled)
		p.Y += p.VY / math.Hypot(p.VX, p.VY) * (p.distance - p.travelled)
		p.travelled = p.distance
		p.Active = false
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.travelled += step
}

// Rotation returns the heading angle in radians
func (p *Projectile) Rotation() float64 {
	return math.Atan2(p.VY, p.VX)
}

// Progress returns the travelled fraction in [0, 1]
func (p *Projectile) Progress() float64 {
	if p.distance <= 0 {
		return 1
	}
	return p.travelled / p.distance
}

// Position returns the current world position
func (p *Projectile) Position() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}
