package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// CastOutcome is the result of advancing a cast for one frame
type CastOutcome int

const (
	OutcomeIdle CastOutcome = iota
	OutcomeInProgress
	OutcomeCancelled
	OutcomeResolved
)

func (o CastOutcome) String() string {
	switch o {
	case OutcomeIdle:
		return "Idle"
	case OutcomeInProgress:
		return "InProgress"
	case OutcomeCancelled:
		return "Cancelled"
	case OutcomeResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// AbilitySystem evaluates castability and drives the Idle/Casting machine.
// A failed prerequisite is never an error: the action is simply not taken.
type AbilitySystem struct {
	log *logrus.Entry

	// Event callbacks
	OnResolve func(caster entity.Castable, target entity.Targetable, ability *entity.Ability)
	OnCancel  func(caster entity.Castable, ability *entity.Ability)
}

// NewAbilitySystem creates a new ability system
func NewAbilitySystem() *AbilitySystem {
	return &AbilitySystem{log: logger.Component("ability")}
}

// CanUse reports whether ability may be cast at target right now.
// Cooldown elapsed exactly counts as ready; ranged distance must be strictly below Range.
func (s *AbilitySystem) CanUse(now float64, ability *entity.Ability, inContact bool, caster entity.Castable, target entity.Targetable, obstacles []geom.Rect) bool {
	if ability == nil || caster == nil || target == nil {
		return false
	}
	if !ability.Ready(now) {
		return false
	}
	if caster.Stats().Mana < ability.ManaCost {
		return false
	}
	if ability.Melee {
		return inContact
	}

	from := caster.Bounds().Center()
	to := target.Bounds().Center()
	if geom.Distance(from, to) >= ability.Range {
		return false
	}
	return !geom.LineOfSightBlocked(from, to, obstacles)
}

// TryStart begins casting the ability at index. Requests while already casting are ignored.
func (s *AbilitySystem) TryStart(now float64, caster entity.Castable, index int, target entity.Targetable, inContact bool, obstacles []geom.Rect) bool {
	if caster == nil {
		return false
	}
	c := caster.CasterState()
	if c.Casting() {
		return false
	}
	ability := c.AbilityAt(index)
	if !s.CanUse(now, ability, inContact, caster, target, obstacles) {
		return false
	}

	c.BeginCast(index, now)
	s.log.WithFields(logrus.Fields{
		"ability": ability.Name,
		"now":     now,
	}).Debug("cast started")
	return true
}

// TryStartAny begins casting the first castable ability, in list order.
func (s *AbilitySystem) TryStartAny(now float64, caster entity.Castable, target entity.Targetable, inContact bool, obstacles []geom.Rect) bool {
	if caster == nil {
		return false
	}
	for i := range caster.CasterState().Abilities {
		if s.TryStart(now, caster, i, target, inContact, obstacles) {
			return true
		}
	}
	return false
}

// Advance re-validates an in-flight cast and resolves it once CastTime has elapsed.
func (s *AbilitySystem) Advance(now float64, caster entity.Castable, target entity.Targetable, inContact bool, obstacles []geom.Rect) CastOutcome {
	if caster == nil {
		return OutcomeIdle
	}
	c := caster.CasterState()
	if !c.Casting() {
		return OutcomeIdle
	}

	ability := c.ActiveAbility()
	if !s.CanUse(now, ability, inContact, caster, target, obstacles) {
		c.ClearCast()
		s.log.WithField("now", now).Debug("cast cancelled")
		if s.OnCancel != nil && ability != nil {
			s.OnCancel(caster, ability)
		}
		return OutcomeCancelled
	}

	if now < c.Cast.Started+ability.CastTime {
		return OutcomeInProgress
	}

	target.Stats().TakeDamage(ability.Damage)
	caster.Stats().SpendMana(ability.ManaCost)
	ability.LastUsed = now
	c.ClearCast()

	s.log.WithFields(logrus.Fields{
		"ability": ability.Name,
		"damage":  ability.Damage,
		"now":     now,
	}).Debug("cast resolved")
	if s.OnResolve != nil {
		s.OnResolve(caster, target, ability)
	}
	return OutcomeResolved
}

// CastProgress returns the elapsed fraction of c's active cast
func CastProgress(now float64, c *entity.Caster) float64 {
	ability := c.ActiveAbility()
	if ability == nil {
		return 0
	}
	if ability.CastTime <= 0 {
		return 1
	}
	f := (now - c.Cast.Started) / ability.CastTime
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// InContact reports melee contact: the rects overlap once a is grown by reach.
func InContact(a, b geom.Rect, reach float64) bool {
	return geom.Intersects(a.Inflate(reach), b)
}
