// Package world owns the entities of a running session and steps them each frame.
package world

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// InputCommand is the per-frame player command consumed by Update
type InputCommand = system.InputCommand

// Defaults for combat settings left at zero
const (
	DefaultMeleeReach      = 4.0
	DefaultInteractReach   = 4.0
	DefaultDamageLogWindow = 1.0
	DefaultProjectileSpeed = 600.0
)

// Map is the world coordinator. It owns tiles, doors, enemies and the player,
// hands out entity ids (never recycled) and runs the per-frame update order.
type Map struct {
	settings *config.SettingsConfig
	now      float64
	nextID   entity.EntityID

	tiles       []*entity.Tile // render order
	collidable  []*entity.Tile // walls and doors
	doors       []*entity.Tile
	enemies     []*entity.Enemy
	player      *entity.Player
	projectiles []*entity.Projectile

	movement  *system.MovementSystem
	abilities *system.AbilitySystem
	ai        *system.AISystem

	playerMove system.MoveResult
	log        *logrus.Entry

	meleeReach      float64
	interactReach   float64
	damageLogWindow float64
	projectileSpeed float64

	// Event callbacks
	OnEnemyDefeated func(e *entity.Enemy)
	OnDoorOpened    func(door *entity.Tile)
	OnPlayerDamaged func(amount int)
}

// New creates an empty map. rng drives enemy wandering and must be seeded
// by the session so replays are deterministic.
func New(settings *config.SettingsConfig, rng *rand.Rand) *Map {
	m := &Map{
		settings:        settings,
		movement:        system.NewMovementSystem(),
		abilities:       system.NewAbilitySystem(),
		log:             logger.Component("world"),
		meleeReach:      orDefault(settings.Combat.MeleeReach, DefaultMeleeReach),
		interactReach:   orDefault(settings.Combat.InteractReach, DefaultInteractReach),
		damageLogWindow: orDefault(settings.Combat.DamageLogWindow, DefaultDamageLogWindow),
		projectileSpeed: orDefault(settings.Combat.ProjectileSpeed, DefaultProjectileSpeed),
	}
	m.ai = system.NewAISystem(&settings.AI, m.meleeReach, m.movement, m.abilities, rng)
	m.abilities.OnResolve = m.onCastResolved
	return m
}

func orDefault(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// NextID allocates a fresh entity id
func (m *Map) NextID() entity.EntityID {
	m.nextID++
	return m.nextID
}

func (m *Map) addTile(kind entity.TileKind, rect geom.Rect, image string) *entity.Tile {
	t := &entity.Tile{ID: m.NextID(), Kind: kind, Rect: rect, Image: image}
	m.tiles = append(m.tiles, t)
	return t
}

// AddFloor adds a render-only floor tile
func (m *Map) AddFloor(rect geom.Rect, image string) *entity.Tile {
	return m.addTile(entity.TileFloor, rect, image)
}

// AddWall adds a collidable wall tile
func (m *Map) AddWall(rect geom.Rect, image string) *entity.Tile {
	t := m.addTile(entity.TileWall, rect, image)
	m.collidable = append(m.collidable, t)
	return t
}

// AddDoor adds a closed door
func (m *Map) AddDoor(rect geom.Rect, image string) *entity.Tile {
	t := m.addTile(entity.TileDoor, rect, image)
	m.collidable = append(m.collidable, t)
	m.doors = append(m.doors, t)
	return t
}

// AddPlayer installs the player. A second call replaces the first.
func (m *Map) AddPlayer(p *entity.Player) {
	m.player = p
}

// AddEnemy appends an enemy
func (m *Map) AddEnemy(e *entity.Enemy) {
	m.enemies = append(m.enemies, e)
}

// Now returns the session clock in seconds
func (m *Map) Now() float64 { return m.now }

// Player returns the player, nil before a level is loaded
func (m *Map) Player() *entity.Player { return m.player }

// Enemies returns the live enemy list
func (m *Map) Enemies() []*entity.Enemy { return m.enemies }

// Tiles returns the render list
func (m *Map) Tiles() []*entity.Tile { return m.tiles }

// Collidable returns walls and closed doors still in the world
func (m *Map) Collidable() []*entity.Tile { return m.collidable }

// Doors returns the doors still in the world
func (m *Map) Doors() []*entity.Tile { return m.doors }

// Projectiles returns in-flight ranged effects
func (m *Map) Projectiles() []*entity.Projectile { return m.projectiles }

// Enemy returns the enemy with id, or nil if it is gone
func (m *Map) Enemy(id entity.EntityID) *entity.Enemy {
	if id == entity.NoEntity {
		return nil
	}
	for _, e := range m.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Lookup resolves an id to a live actor. Removed entities resolve to nil.
func (m *Map) Lookup(id entity.EntityID) entity.Actor {
	if id == entity.NoEntity {
		return nil
	}
	if m.player != nil && m.player.ID == id {
		return m.player
	}
	if e := m.Enemy(id); e != nil {
		return e
	}
	return nil
}

// SelectTarget picks the first enemy under a screen point. The camera keeps the
// player centered on a screenW x screenH view. No hit clears the target.
func (m *Map) SelectTarget(screen geom.Point, screenW, screenH int) entity.EntityID {
	if m.player == nil {
		return entity.NoEntity
	}
	cam := system.NewCamera(screenW, screenH)
	m.player.Target = system.PickTarget(cam.ToWorld(screen, m.player.Rect), m.enemies)
	return m.player.Target
}

// Update advances the session by dt: projectiles in flight, the player,
// enemies, then doors.
func (m *Map) Update(cmd InputCommand, dt float64) {
	m.now += dt
	m.updateProjectiles(dt)

	if m.player != nil && m.player.Alive() {
		m.updatePlayer(cmd, dt)
	}
	m.updateEnemies(dt)
	m.updateDoors()

	if m.player != nil {
		m.player.RecentDamage(m.now, m.damageLogWindow)
	}
}

func (m *Map) updatePlayer(cmd InputCommand, dt float64) {
	p := m.player
	los := system.SolidRects(m.collidable)
	moved := false

	for _, intent := range system.Intents(cmd, p, dt) {
		switch in := intent.(type) {
		case system.TargetIntent:
			m.SelectTarget(in.Screen, m.settings.Display.ScreenWidth, m.settings.Display.ScreenHeight)
		case system.InteractIntent:
			m.openDoorsNear(p)
		case system.CastIntent:
			target := m.playerTarget()
			m.abilities.TryStart(m.now, p, in.Index, target, m.playerContact(target), los)
		case system.MoveIntent:
			obstacles := system.NewObstacleSet(p.ID).
				AddTiles(m.collidable).
				AddEnemies(m.enemies).
				List()
			m.playerMove = m.movement.Resolve(p, in.DX, in.DY, obstacles, system.PolicyClamp)
			moved = true
		}
	}
	if !moved {
		m.playerMove = system.MoveResult{}
	}

	target := m.playerTarget()
	m.abilities.Advance(m.now, p, target, m.playerContact(target), los)
}

// playerTarget resolves the player's target id, clearing it once the enemy is gone.
func (m *Map) playerTarget() entity.Targetable {
	e, ok := m.Lookup(m.player.Target).(*entity.Enemy)
	if !ok || !e.Alive() {
		m.player.Target = entity.NoEntity
		return nil
	}
	return e
}

func (m *Map) playerContact(target entity.Targetable) bool {
	if target == nil {
		return false
	}
	e, ok := target.(*entity.Enemy)
	if !ok {
		return false
	}
	return m.playerMove.BlockedBy(e.ID) || system.InContact(m.player.Rect, e.Rect, m.meleeReach)
}

func (m *Map) openDoorsNear(p *entity.Player) {
	for _, d := range m.doors {
		if !d.Open && system.InContact(p.Rect, d.Rect, m.interactReach) {
			d.Open = true
		}
	}
}

func (m *Map) updateEnemies(dt float64) {
	snapshot := append([]*entity.Enemy(nil), m.enemies...)
	los := system.SolidRects(m.collidable)

	for _, e := range snapshot {
		if !e.Alive() {
			m.removeEnemy(e)
			continue
		}

		set := system.NewObstacleSet(e.ID).AddTiles(m.collidable).AddEnemies(m.enemies)
		if m.player != nil && m.player.Alive() {
			set.AddPlayer(m.player)
		}

		var player *entity.Player
		if m.player != nil && m.player.Alive() {
			player = m.player
		}
		m.ai.Update(m.now, dt, e, player, set.List(), los)

		if !e.Alive() {
			m.removeEnemy(e)
		}
	}
}

func (m *Map) removeEnemy(e *entity.Enemy) {
	for i, other := range m.enemies {
		if other != e {
			continue
		}
		m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
		if m.player != nil && m.player.Target == e.ID {
			m.player.Target = entity.NoEntity
		}
		if m.player != nil {
			m.player.GainXP(m.settings.Combat.XPPerKill)
		}
		m.log.WithFields(logrus.Fields{"enemy": e.ID, "kind": e.Kind}).Info("enemy defeated")
		if m.OnEnemyDefeated != nil {
			m.OnEnemyDefeated(e)
		}
		return
	}
}

// updateDoors drops open doors from the door, collidable and render lists.
func (m *Map) updateDoors() {
	kept := m.doors[:0]
	for _, d := range m.doors {
		if !d.Open {
			kept = append(kept, d)
			continue
		}
		m.collidable = removeTile(m.collidable, d)
		m.tiles = removeTile(m.tiles, d)
		m.log.WithField("door", d.ID).Info("door opened")
		if m.OnDoorOpened != nil {
			m.OnDoorOpened(d)
		}
	}
	for i := len(kept); i < len(m.doors); i++ {
		m.doors[i] = nil
	}
	m.doors = kept
}

func removeTile(list []*entity.Tile, t *entity.Tile) []*entity.Tile {
	for i, other := range list {
		if other == t {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (m *Map) updateProjectiles(dt float64) {
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		p.Update(dt)
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(m.projectiles); i++ {
		m.projectiles[i] = nil
	}
	m.projectiles = kept
}

func (m *Map) onCastResolved(caster entity.Castable, target entity.Targetable, ability *entity.Ability) {
	if p, ok := target.(*entity.Player); ok {
		p.RecordDamage(ability.Damage, m.now)
		if m.OnPlayerDamaged != nil {
			m.OnPlayerDamaged(ability.Damage)
		}
	}
	if ability.Melee {
		return
	}
	_, byPlayer := caster.(*entity.Player)
	from := caster.Bounds().Center()
	to := target.Bounds().Center()
	m.projectiles = append(m.projectiles, entity.NewProjectile(from, to, m.projectileSpeed, ability.Icon, byPlayer))
}
