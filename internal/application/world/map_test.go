package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
)

func testSettings() *config.SettingsConfig {
	return &config.SettingsConfig{
		Display: config.DisplayConfig{ScreenWidth: 800, ScreenHeight: 600},
		Combat:  config.CombatConfig{XPPerKill: 25},
	}
}

func newTestMap() *Map {
	return New(testSettings(), rand.New(rand.NewSource(7)))
}

func addTestPlayer(m *Map) *entity.Player {
	p := entity.NewPlayer(m.NextID(), geom.Rect{X: 0, Y: 0, W: 50, H: 50}, 150, entity.Resources{
		Health: 50, MaxHealth: 100,
		Mana: 80, MaxMana: 100,
		MaxXP: 100,
	})
	p.GrantAbilities(entity.NewAbility(entity.AbilityDef{
		Name: "Fireball", Damage: 40, ManaCost: 20, Cooldown: 3, CastTime: 1, Range: 400, Icon: "fireball.png",
	}))
	m.AddPlayer(p)
	return p
}

// addIdleEnemy adds an enemy that never moves and never chases
func addIdleEnemy(m *Map, x, y float64) *entity.Enemy {
	e := entity.NewEnemy(m.NextID(), geom.Rect{X: x, Y: y, W: 50, H: 50}, "goblin")
	e.Resources = entity.Resources{Health: 50, MaxHealth: 100, Mana: 50, MaxMana: 100}
	m.AddEnemy(e)
	return e
}

func TestNextIDIsMonotonic(t *testing.T) {
	m := newTestMap()
	a := m.NextID()
	b := m.AddFloor(geom.Rect{W: 50, H: 50}, "floor.png").ID
	c := m.AddWall(geom.Rect{X: 50, W: 50, H: 50}, "wall.png").ID

	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.NotEqual(t, entity.NoEntity, a)
}

func TestTileLists(t *testing.T) {
	m := newTestMap()
	m.AddFloor(geom.Rect{W: 50, H: 50}, "floor.png")
	m.AddWall(geom.Rect{X: 50, W: 50, H: 50}, "wall.png")
	m.AddDoor(geom.Rect{X: 100, W: 50, H: 50}, "door.png")

	assert.Len(t, m.Tiles(), 3)
	assert.Len(t, m.Collidable(), 2)
	assert.Len(t, m.Doors(), 1)
}

func TestInteractOpensDoorOnce(t *testing.T) {
	m := newTestMap()
	addTestPlayer(m)
	door := m.AddDoor(geom.Rect{X: 52, Y: 0, W: 50, H: 50}, "door.png")
	far := m.AddDoor(geom.Rect{X: 500, Y: 0, W: 50, H: 50}, "door.png")

	opened := 0
	m.OnDoorOpened = func(d *entity.Tile) {
		assert.Equal(t, door.ID, d.ID)
		opened++
	}

	cmd := system.IdleCommand()
	cmd.Interact = true
	m.Update(cmd, 0.1)

	assert.True(t, door.Open)
	assert.False(t, far.Open)
	assert.Equal(t, 1, opened)
	assert.Equal(t, []*entity.Tile{far}, m.Doors())
	assert.NotContains(t, m.Collidable(), door)
	assert.NotContains(t, m.Tiles(), door)

	// a second pass finds nothing left to remove
	m.Update(cmd, 0.1)
	assert.Equal(t, 1, opened)
	assert.Len(t, m.Doors(), 1)
}

func TestOpenDoorNoLongerBlocks(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	m.AddDoor(geom.Rect{X: 52, Y: 0, W: 50, H: 50}, "door.png")

	right := system.IdleCommand()
	right.MoveRight = true
	m.Update(right, 0.1)
	assert.Equal(t, 2.0, p.Rect.X)

	open := system.IdleCommand()
	open.Interact = true
	m.Update(open, 0.1)

	m.Update(right, 0.1)
	assert.InDelta(t, 17.0, p.Rect.X, 1e-9)
}

func TestPlayerClampedByWall(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	m.AddWall(geom.Rect{X: 60, Y: 0, W: 50, H: 50}, "wall.png")

	cmd := system.IdleCommand()
	cmd.MoveRight = true
	m.Update(cmd, 1)

	assert.Equal(t, 10.0, p.Rect.X)
	assert.Equal(t, 0.0, p.Rect.Y)
}

func TestEnemiesReactToPlayerMoveInSameFrame(t *testing.T) {
	tests := []struct {
		name       string
		moveRight  bool
		wantState  entity.AIState
		wantTarget bool
	}{
		{"player walks into chase range", true, entity.AIChase, true},
		{"player stays outside chase range", false, entity.AIWander, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMap()
			p := addTestPlayer(m)
			e := addIdleEnemy(m, 200, 0)
			e.ChaseRange = 100 // centers start 200 apart

			cmd := system.IdleCommand()
			cmd.MoveRight = tt.moveRight
			m.Update(cmd, 1)

			assert.Equal(t, tt.wantState, e.State)
			if tt.wantTarget {
				assert.Equal(t, 150.0, p.Rect.X)
				assert.Equal(t, p.ID, e.Target)
			} else {
				assert.Equal(t, entity.NoEntity, e.Target)
			}
		})
	}
}

func TestDeadEnemiesAreReaped(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	dead := addIdleEnemy(m, 300, 300)
	alive := addIdleEnemy(m, 400, 300)
	dead.Health = 0
	p.Target = dead.ID

	var defeated []entity.EntityID
	m.OnEnemyDefeated = func(e *entity.Enemy) {
		defeated = append(defeated, e.ID)
	}

	m.Update(system.IdleCommand(), 0.1)

	assert.Equal(t, []entity.EntityID{dead.ID}, defeated)
	assert.Equal(t, []*entity.Enemy{alive}, m.Enemies())
	assert.Equal(t, entity.NoEntity, p.Target)
	assert.Equal(t, 25, p.XP)
	assert.Nil(t, m.Lookup(dead.ID))
	assert.NotNil(t, m.Lookup(alive.ID))
}

func TestSelectTarget(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 200, 0)

	// player center (25,25) sits at screen center (400,300)
	tests := []struct {
		name   string
		screen geom.Point
		want   entity.EntityID
	}{
		{"enemy center", geom.Point{X: 600, Y: 300}, e.ID},
		{"enemy top-left corner", geom.Point{X: 575, Y: 275}, e.ID},
		{"empty floor", geom.Point{X: 10, Y: 10}, entity.NoEntity},
		{"enemy right edge is outside", geom.Point{X: 625, Y: 300}, entity.NoEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.SelectTarget(tt.screen, 800, 600)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, p.Target)
		})
	}
}

func TestClickThroughCommandSelectsTarget(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 200, 0)

	cmd := system.IdleCommand()
	cmd.TargetAt = &geom.Point{X: 600, Y: 300}
	m.Update(cmd, 0.1)
	assert.Equal(t, e.ID, p.Target)

	cmd.TargetAt = &geom.Point{X: 10, Y: 10}
	m.Update(cmd, 0.1)
	assert.Equal(t, entity.NoEntity, p.Target)
}

func TestRangedCastEndToEnd(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 200, 0)
	m.SelectTarget(geom.Point{X: 600, Y: 300}, 800, 600)
	require.Equal(t, e.ID, p.Target)

	resolved := 0
	m.abilities.OnResolve = func(caster entity.Castable, target entity.Targetable, ability *entity.Ability) {
		resolved++
		m.onCastResolved(caster, target, ability)
	}

	cast := system.IdleCommand()
	cast.UseAbility = 0
	m.Update(cast, 0.5)
	require.True(t, p.Casting())
	assert.Equal(t, 0.5, p.Cast.Started)

	m.Update(system.IdleCommand(), 0.5)
	assert.True(t, p.Casting())
	assert.InDelta(t, 0.5, m.Snapshot().Player.CastProgress, 1e-9)
	assert.Equal(t, 80, p.Mana)

	m.Update(system.IdleCommand(), 0.5)
	assert.False(t, p.Casting())
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 60, p.Mana)
	assert.Equal(t, 10, e.Health)
	assert.Equal(t, 1.5, p.Abilities[0].LastUsed)
	require.Len(t, m.Projectiles(), 1)
	assert.True(t, m.Projectiles()[0].IsPlayer)

	// cooldown blocks an immediate recast
	m.Update(cast, 0.5)
	assert.False(t, p.Casting())
}

func TestCastCancelledWhenTargetDies(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 200, 0)
	p.Target = e.ID

	cast := system.IdleCommand()
	cast.UseAbility = 0
	m.Update(cast, 0.1)
	require.True(t, p.Casting())

	e.Health = 0
	m.Update(system.IdleCommand(), 0.1)
	m.Update(system.IdleCommand(), 0.1)

	assert.False(t, p.Casting())
	assert.Equal(t, 80, p.Mana)
	assert.Empty(t, m.Enemies())
}

func TestEnemyMeleeDamagesPlayer(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 52, 0)
	e.Speed = 80
	e.ChaseRange = 300
	e.GrantAbilities(entity.NewAbility(entity.AbilityDef{
		Name: "Claw Swipe", Damage: 10, ManaCost: 5, Cooldown: 5, Melee: true,
	}))

	var hits []int
	m.OnPlayerDamaged = func(amount int) { hits = append(hits, amount) }

	m.Update(system.IdleCommand(), 0.1)

	assert.Equal(t, entity.AIChase, e.State)
	assert.Equal(t, 52.0, e.Rect.X)
	assert.Equal(t, 40, p.Health)
	assert.Equal(t, 45, e.Mana)
	assert.Equal(t, []int{10}, hits)
	assert.Equal(t, []entity.DamageEntry{{Amount: 10, At: 0.1}}, m.Snapshot().Damage)
	assert.Empty(t, m.Projectiles())
}

func TestDamageLogExpires(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	p.RecordDamage(5, 0)

	m.Update(system.IdleCommand(), 0.5)
	assert.Len(t, p.DamageLog, 1)

	m.Update(system.IdleCommand(), 0.6)
	assert.Empty(t, p.DamageLog)
}

func TestSnapshotIsDetached(t *testing.T) {
	m := newTestMap()
	p := addTestPlayer(m)
	e := addIdleEnemy(m, 200, 0)
	p.Target = e.ID
	m.AddWall(geom.Rect{X: 0, Y: 100, W: 50, H: 50}, "wall.png")

	s := m.Snapshot()
	require.Len(t, s.Enemies, 1)
	assert.True(t, s.Enemies[0].Targeted)
	assert.True(t, s.PlayerAlive)
	assert.Equal(t, []string{"head", "body", "legs"}, s.SlotNames)
	require.Len(t, s.Abilities, 1)
	assert.True(t, s.Abilities[0].Ready)

	s.Tiles[0].Rect.X = 999
	s.Equipped["head"] = 42
	assert.Equal(t, 0.0, m.Tiles()[0].Rect.X)
	assert.Equal(t, entity.ItemID(0), p.Equipped.Slots["head"])
}

func TestBuildFromLevel(t *testing.T) {
	cfg := &config.GameConfig{
		Settings: &config.SettingsConfig{
			Map: config.MapConfig{TileSize: 50},
			Player: config.PlayerConfig{
				Speed: 150,
				Stats: config.StatsConfig{Health: 100, MaxHealth: 100},
			},
		},
		Abilities: config.NewCatalog(nil),
		Enemies: &config.EnemiesConfig{
			Default:    "goblin",
			Archetypes: map[string]config.EnemyArchetype{"goblin": {Speed: 80}},
		},
	}
	level := &config.LevelConfig{
		Name: "tiny",
		Tiles: [][]int{
			{2, 2, 2},
			{3, 1, 3},
			{3, 4, 5},
		},
	}

	m, err := Build(cfg, level, 1)
	require.NoError(t, err)

	require.NotNil(t, m.Player())
	assert.Equal(t, geom.Rect{X: 50, Y: 50, W: 50, H: 50}, m.Player().Rect)
	require.Len(t, m.Enemies(), 1)
	assert.Len(t, m.Doors(), 1)
	assert.Len(t, m.Collidable(), 7)

	_, err = Build(cfg, &config.LevelConfig{Name: "empty", Tiles: [][]int{{0}}}, 1)
	assert.Error(t, err)
}
