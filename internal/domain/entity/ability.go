package entity

// AbilityDef is the immutable catalog definition of an ability
type AbilityDef struct {
	Name     string
	Damage   int
	ManaCost int
	Cooldown float64 // seconds
	CastTime float64 // seconds
	Melee    bool
	Range    float64 // pixels, ranged abilities only
	Icon     string
}

// Ability is a per-caster instance of an AbilityDef with its own cooldown clock.
type Ability struct {
	AbilityDef
	LastUsed float64
}

// NewAbility creates an ability that is ready at time zero
func NewAbility(def AbilityDef) *Ability {
	return &Ability{
		AbilityDef: def,
		LastUsed:   -def.Cooldown,
	}
}

// Clone returns an independent copy with its own LastUsed
func (a *Ability) Clone() *Ability {
	c := *a
	return &c
}

// Ready reports whether the cooldown has elapsed. Elapsed == Cooldown counts as ready.
func (a *Ability) Ready(now float64) bool {
	return now-a.LastUsed >= a.Cooldown
}

// CooldownRemaining returns seconds left before the ability is ready
func (a *Ability) CooldownRemaining(now float64) float64 {
	left := a.Cooldown - (now - a.LastUsed)
	if left < 0 {
		return 0
	}
	return left
}

// CastState is the state of a caster's cast machine
type CastState int

const (
	CastIdle CastState = iota
	CastCasting
)

func (s CastState) String() string {
	switch s {
	case CastIdle:
		return "Idle"
	case CastCasting:
		return "Casting"
	default:
		return "Unknown"
	}
}

// Cast is the in-flight cast of a caster.
// Ability and Started are only meaningful while State == CastCasting.
type Cast struct {
	State   CastState
	Ability int
	Started float64
}

// Caster bundles the abilities, cast state and current target of an entity.
type Caster struct {
	Abilities []*Ability
	Cast      Cast
	Target    EntityID
}

// CasterState returns the caster, satisfying Castable
func (c *Caster) CasterState() *Caster {
	return c
}

// Casting reports whether a cast is in flight
func (c *Caster) Casting() bool {
	return c.Cast.State == CastCasting
}

// AbilityAt returns the ability at index i, or nil when out of range
func (c *Caster) AbilityAt(i int) *Ability {
	if i < 0 || i >= len(c.Abilities) {
		return nil
	}
	return c.Abilities[i]
}

// ActiveAbility returns the ability being cast, or nil when idle
func (c *Caster) ActiveAbility() *Ability {
	if !c.Casting() {
		return nil
	}
	return c.AbilityAt(c.Cast.Ability)
}

// BeginCast moves the machine to Casting
func (c *Caster) BeginCast(index int, now float64) {
	c.Cast = Cast{State: CastCasting, Ability: index, Started: now}
}

// ClearCast returns the machine to Idle
func (c *Caster) ClearCast() {
	c.Cast = Cast{}
}

// GrantAbilities installs per-owner clones of the given abilities
func (c *Caster) GrantAbilities(abilities ...*Ability) {
	for _, a := range abilities {
		c.Abilities = append(c.Abilities, a.Clone())
	}
}
