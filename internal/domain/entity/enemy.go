package entity

import "github.com/younwookim/spellsword/internal/domain/geom"

// AIState defines the behavior state of an enemy
type AIState int

const (
	AIWander AIState = iota
	AIPatrol
	AIChase
	AIStand // reserved: never produced by the transition rule
)

func (s AIState) String() string {
	switch s {
	case AIWander:
		return "Wander"
	case AIPatrol:
		return "Patrol"
	case AIChase:
		return "Chase"
	case AIStand:
		return "Stand"
	default:
		return "Unknown"
	}
}

// Enemy represents an enemy entity
type Enemy struct {
	Body
	Resources
	Caster

	Kind  string
	State AIState

	ChaseRange  float64
	Waypoints   []geom.Point
	PatrolIndex int
}

// NewEnemy creates a new enemy wandering in its initial direction
func NewEnemy(id EntityID, rect geom.Rect, kind string) *Enemy {
	return &Enemy{
		Body: Body{
			ID:        id,
			Rect:      rect,
			Direction: geom.Vec{X: 1, Y: 1},
		},
		Kind:  kind,
		State: AIWander,
	}
}

// HasPatrol reports whether patrol waypoints are configured
func (e *Enemy) HasPatrol() bool {
	return len(e.Waypoints) > 0
}

// CurrentWaypoint returns the waypoint the enemy is heading to
func (e *Enemy) CurrentWaypoint() (geom.Point, bool) {
	if !e.HasPatrol() {
		return geom.Point{}, false
	}
	return e.Waypoints[e.PatrolIndex%len(e.Waypoints)], true
}

// AdvanceWaypoint moves to the next waypoint, wrapping to the first
func (e *Enemy) AdvanceWaypoint() {
	if !e.HasPatrol() {
		return
	}
	e.PatrolIndex = (e.PatrolIndex + 1) % len(e.Waypoints)
}
