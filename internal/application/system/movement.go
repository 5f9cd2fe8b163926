package system

import (
	"math"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
)

// CollisionPolicy selects how a blocked axis is resolved
type CollisionPolicy int

const (
	// PolicyClamp snaps the leading edge to the obstacle's facing edge (player).
	PolicyClamp CollisionPolicy = iota
	// PolicyReverse discards the axis move and negates that direction component (enemies).
	PolicyReverse
)

func (p CollisionPolicy) String() string {
	switch p {
	case PolicyClamp:
		return "Clamp"
	case PolicyReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// Obstacle is a collidable rect with the id of its owner
type Obstacle struct {
	ID   entity.EntityID
	Rect geom.Rect
}

// MoveResult reports what happened during a resolve
type MoveResult struct {
	Blocked []entity.EntityID // obstacles that stopped the move, first hit first
	HitX    bool
	HitY    bool
}

// BlockedBy reports whether id stopped the move
func (r MoveResult) BlockedBy(id entity.EntityID) bool {
	for _, b := range r.Blocked {
		if b == id {
			return true
		}
	}
	return false
}

func (r *MoveResult) block(id entity.EntityID) {
	if !r.BlockedBy(id) {
		r.Blocked = append(r.Blocked, id)
	}
}

// MovementSystem resolves per-axis displacement against obstacles
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Resolve moves m by (dx, dy), X axis first, then Y from the X-resolved rect.
// An axis with zero displacement is skipped entirely.
func (s *MovementSystem) Resolve(m entity.Movable, dx, dy float64, obstacles []Obstacle, policy CollisionPolicy) MoveResult {
	body := m.Physical()
	var res MoveResult

	if dx != 0 {
		res.HitX = s.moveX(body, dx, obstacles, policy, &res)
	}
	if dy != 0 {
		res.HitY = s.moveY(body, dy, obstacles, policy, &res)
	}

	return res
}

// maxStep returns the largest sub-step along one axis that cannot skip over
// the body or any obstacle. size is the body's extent on that axis.
func maxStep(size float64, obstacles []Obstacle, horizontal bool) float64 {
	step := size
	for _, o := range obstacles {
		d := o.Rect.H
		if horizontal {
			d = o.Rect.W
		}
		if d > 0 && (step <= 0 || d < step) {
			step = d
		}
	}
	return step
}

// nextStep splits off the next sub-step of remaining
func nextStep(remaining, step float64) float64 {
	if step <= 0 || math.Abs(remaining) <= step {
		return remaining
	}
	return math.Copysign(step, remaining)
}

// moveX moves body horizontally in sub-steps, stopping at the first collision
func (s *MovementSystem) moveX(body *entity.Body, dx float64, obstacles []Obstacle, policy CollisionPolicy, res *MoveResult) bool {
	start := body.Rect
	step := maxStep(body.Rect.W, obstacles, true)

	for remaining := dx; remaining != 0; {
		d := nextStep(remaining, step)
		remaining -= d
		candidate := body.Rect.Translate(d, 0)
		hit := false

		for _, o := range obstacles {
			if !geom.Intersects(candidate, o.Rect) {
				continue
			}
			hit = true
			res.block(o.ID)
			if policy == PolicyReverse {
				continue
			}
			if dx > 0 {
				candidate.X = o.Rect.X - candidate.W
			} else {
				candidate.X = o.Rect.Right()
			}
		}

		if !hit {
			body.Rect = candidate
			continue
		}
		if policy == PolicyReverse {
			body.Rect = start
			body.Direction.X = -body.Direction.X
			return true
		}
		body.Rect = candidate
		return true
	}
	return false
}

// moveY moves body vertically in sub-steps, stopping at the first collision
func (s *MovementSystem) moveY(body *entity.Body, dy float64, obstacles []Obstacle, policy CollisionPolicy, res *MoveResult) bool {
	start := body.Rect
	step := maxStep(body.Rect.H, obstacles, false)

	for remaining := dy; remaining != 0; {
		d := nextStep(remaining, step)
		remaining -= d
		candidate := body.Rect.Translate(0, d)
		hit := false

		for _, o := range obstacles {
			if !geom.Intersects(candidate, o.Rect) {
				continue
			}
			hit = true
			res.block(o.ID)
			if policy == PolicyReverse {
				continue
			}
			if dy > 0 {
				candidate.Y = o.Rect.Y - candidate.H
			} else {
				candidate.Y = o.Rect.Bottom()
			}
		}

		if !hit {
			body.Rect = candidate
			continue
		}
		if policy == PolicyReverse {
			body.Rect = start
			body.Direction.Y = -body.Direction.Y
			return true
		}
		body.Rect = candidate
		return true
	}
	return false
}

// ObstacleSet collects obstacles from tiles and actors, skipping excluded ids
// and non-solid tiles.
type ObstacleSet struct {
	exclude map[entity.EntityID]bool
	list    []Obstacle
}

// NewObstacleSet creates an empty set that ignores the given ids
func NewObstacleSet(exclude ...entity.EntityID) *ObstacleSet {
	s := &ObstacleSet{exclude: make(map[entity.EntityID]bool, len(exclude))}
	for _, id := range exclude {
		s.exclude[id] = true
	}
	return s
}

// AddTiles adds every solid tile
func (s *ObstacleSet) AddTiles(tiles []*entity.Tile) *ObstacleSet {
	for _, t := range tiles {
		if t.Solid() {
			s.add(t.ID, t.Rect)
		}
	}
	return s
}

// AddEnemies adds living enemies
func (s *ObstacleSet) AddEnemies(enemies []*entity.Enemy) *ObstacleSet {
	for _, e := range enemies {
		if e.Alive() {
			s.add(e.ID, e.Rect)
		}
	}
	return s
}

// AddPlayer adds the player if present
func (s *ObstacleSet) AddPlayer(p *entity.Player) *ObstacleSet {
	if p != nil {
		s.add(p.ID, p.Rect)
	}
	return s
}

func (s *ObstacleSet) add(id entity.EntityID, r geom.Rect) {
	if s.exclude[id] {
		return
	}
	s.list = append(s.list, Obstacle{ID: id, Rect: r})
}

// List returns the collected obstacles in insertion order
func (s *ObstacleSet) List() []Obstacle {
	return s.list
}

// SolidRects returns the rects of solid tiles, used for line of sight
func SolidRects(tiles []*entity.Tile) []geom.Rect {
	out := make([]geom.Rect, 0, len(tiles))
	for _, t := range tiles {
		if t.Solid() {
			out = append(out, t.Rect)
		}
	}
	return out
}
