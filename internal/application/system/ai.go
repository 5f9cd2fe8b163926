package system

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// Defaults used when the AI config leaves a field at zero
const (
	DefaultWanderChance    = 0.01
	DefaultPatrolTolerance = 5.0
)

// EnemyStep summarises one enemy update
type EnemyStep struct {
	State entity.AIState
	Move  MoveResult
	Cast  CastOutcome
}

// AISystem runs the enemy state machine: pick a state, move, then cast.
type AISystem struct {
	movement  *MovementSystem
	abilities *AbilitySystem
	rng       *rand.Rand
	log       *logrus.Entry

	WanderChance    float64
	PatrolTolerance float64
	MeleeReach      float64

	// Event callbacks
	OnStateChange func(enemy *entity.Enemy, from, to entity.AIState)
}

// NewAISystem creates a new AI system. rng must be seeded by the session for replays.
func NewAISystem(cfg *config.AIConfig, meleeReach float64, movement *MovementSystem, abilities *AbilitySystem, rng *rand.Rand) *AISystem {
	s := &AISystem{
		movement:        movement,
		abilities:       abilities,
		rng:             rng,
		log:             logger.Component("ai"),
		WanderChance:    DefaultWanderChance,
		PatrolTolerance: DefaultPatrolTolerance,
		MeleeReach:      meleeReach,
	}
	if cfg != nil {
		if cfg.WanderChance > 0 {
			s.WanderChance = cfg.WanderChance
		}
		if cfg.PatrolTolerance > 0 {
			s.PatrolTolerance = cfg.PatrolTolerance
		}
	}
	return s
}

// NextState applies the transition rule. Distance equal to ChaseRange chases.
// AIStand is never produced.
func (s *AISystem) NextState(e *entity.Enemy, playerCenter geom.Point) entity.AIState {
	if geom.Distance(e.Center(), playerCenter) <= e.ChaseRange {
		return entity.AIChase
	}
	if e.HasPatrol() {
		return entity.AIPatrol
	}
	return entity.AIWander
}

// Update advances one enemy by dt. obstacles must exclude the enemy itself;
// los holds the rects that block line of sight.
func (s *AISystem) Update(now, dt float64, e *entity.Enemy, player *entity.Player, obstacles []Obstacle, los []geom.Rect) EnemyStep {
	if player != nil {
		next := s.NextState(e, player.Center())
		if next != e.State {
			s.log.WithFields(logrus.Fields{
				"enemy": e.ID,
				"from":  e.State.String(),
				"to":    next.String(),
			}).Debug("state change")
			if s.OnStateChange != nil {
				s.OnStateChange(e, e.State, next)
			}
			e.State = next
		}
	}

	if e.State == entity.AIChase && player != nil {
		e.Target = player.ID
	} else {
		e.Target = entity.NoEntity
	}

	step := EnemyStep{State: e.State}
	if !e.Casting() {
		step.Move = s.move(dt, e, player, obstacles)
	}

	var target entity.Targetable
	inContact := false
	if e.Target != entity.NoEntity && player != nil && player.Alive() {
		target = player
		inContact = step.Move.BlockedBy(player.ID) || InContact(e.Rect, player.Rect, s.MeleeReach)
	}

	if e.Casting() {
		step.Cast = s.abilities.Advance(now, e, target, inContact, los)
	} else if target != nil && s.abilities.TryStartAny(now, e, target, inContact, los) {
		step.Cast = s.abilities.Advance(now, e, target, inContact, los)
	}

	return step
}

func (s *AISystem) move(dt float64, e *entity.Enemy, player *entity.Player, obstacles []Obstacle) MoveResult {
	switch e.State {
	case entity.AIWander:
		return s.updateWander(dt, e, obstacles)
	case entity.AIPatrol:
		return s.updatePatrol(dt, e, obstacles)
	case entity.AIChase:
		return s.updateChase(dt, e, player, obstacles)
	default:
		return MoveResult{}
	}
}

// updateWander occasionally picks a new diagonal heading and drifts at half speed
func (s *AISystem) updateWander(dt float64, e *entity.Enemy, obstacles []Obstacle) MoveResult {
	if s.rng.Float64() < s.WanderChance {
		e.Direction = geom.Vec{X: s.randomSign(), Y: s.randomSign()}
	}

	speed := e.Speed / 2 * dt
	return s.movement.Resolve(e, e.Direction.X*speed, e.Direction.Y*speed, obstacles, PolicyReverse)
}

// updatePatrol heads to the current waypoint's top-left and advances on arrival
func (s *AISystem) updatePatrol(dt float64, e *entity.Enemy, obstacles []Obstacle) MoveResult {
	wp, ok := e.CurrentWaypoint()
	if !ok {
		return MoveResult{}
	}

	var res MoveResult
	if dir, ok := wp.Sub(e.Rect.TopLeft()).Normalize(); ok {
		e.Direction = dir
		speed := e.Speed * dt
		res = s.movement.Resolve(e, dir.X*speed, dir.Y*speed, obstacles, PolicyReverse)
	}

	if math.Abs(wp.X-e.Rect.X) < s.PatrolTolerance && math.Abs(wp.Y-e.Rect.Y) < s.PatrolTolerance {
		e.AdvanceWaypoint()
	}
	return res
}

// updateChase re-aims at the player every frame
func (s *AISystem) updateChase(dt float64, e *entity.Enemy, player *entity.Player, obstacles []Obstacle) MoveResult {
	if player == nil {
		return MoveResult{}
	}
	dir, ok := player.Center().Sub(e.Center()).Normalize()
	if !ok {
		return MoveResult{}
	}

	e.Direction = dir
	speed := e.Speed * dt
	return s.movement.Resolve(e, dir.X*speed, dir.Y*speed, obstacles, PolicyReverse)
}

func (s *AISystem) randomSign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
