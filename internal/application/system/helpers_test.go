package system

import (
	"math/rand"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestPlayer() *entity.Player {
	return entity.NewPlayer(1, geom.Rect{X: 0, Y: 0, W: 50, H: 50}, 150, entity.Resources{
		Health: 50, MaxHealth: 100,
		Mana: 80, MaxMana: 100,
	})
}

func createTestEnemy(id entity.EntityID, x, y float64) *entity.Enemy {
	e := entity.NewEnemy(id, geom.Rect{X: x, Y: y, W: 50, H: 50}, "goblin")
	e.Speed = 80
	e.ChaseRange = 300
	e.Resources = entity.Resources{Health: 50, MaxHealth: 100, Mana: 50, MaxMana: 100}
	return e
}

func createTestMelee() entity.AbilityDef {
	return entity.AbilityDef{Name: "Claw Swipe", Damage: 10, ManaCost: 5, Cooldown: 5, CastTime: 2, Melee: true}
}

func createTestRanged() entity.AbilityDef {
	return entity.AbilityDef{Name: "Fireball", Damage: 40, ManaCost: 20, Cooldown: 3, CastTime: 1, Range: 400}
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Settings: &config.SettingsConfig{
			Map: config.MapConfig{
				TileSize: 50,
				Images: config.TileImages{
					Floor: "floor.png",
					WallX: "stone_walls_x.png",
					WallY: "stone_walls_y.png",
					Door:  "wooden_door.png",
				},
			},
			Player: config.PlayerConfig{
				Image:     "spellsword.png",
				Portrait:  "spellswordportrait.png",
				Speed:     150,
				Stats:     config.StatsConfig{Health: 50, MaxHealth: 100, Mana: 80, MaxMana: 100},
				Abilities: []string{"Fireball"},
			},
			AI: config.AIConfig{DefaultChaseRange: 300},
		},
		Abilities: config.NewCatalog([]config.AbilityConfig{
			{Name: "Fireball", Damage: 40, ManaCost: 20, Cooldown: 3},
			{Name: "Claw Swipe", Damage: 10, ManaCost: 5, Cooldown: 5},
		}),
		Enemies: &config.EnemiesConfig{
			Default: "goblin",
			Archetypes: map[string]config.EnemyArchetype{
				"goblin": {
					Image:     "goblin.png",
					Speed:     150,
					Stats:     config.StatsConfig{Health: 50, MaxHealth: 100},
					Abilities: []string{"Claw Swipe"},
				},
			},
		},
	}
}
