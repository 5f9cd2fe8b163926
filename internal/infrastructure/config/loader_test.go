package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 50, cfg.Map.TileSize)
	assert.Equal(t, "demo", cfg.Map.StartLevel)
	assert.Equal(t, 150.0, cfg.Player.Speed)
	assert.Equal(t, 80, cfg.Player.Stats.Mana)
	assert.Equal(t, []string{"Fireball"}, cfg.Player.Abilities)
	assert.Equal(t, 300.0, cfg.AI.DefaultChaseRange)
}

func TestLoader_LoadAbilities(t *testing.T) {
	loader := NewLoader(configDir)

	catalog, err := loader.LoadAbilities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Fireball", "Claw Swipe", "Dark Bolt"}, catalog.Names())

	tests := []struct {
		name string
		want entity.AbilityDef
	}{
		{"Fireball", entity.AbilityDef{Name: "Fireball", Damage: 40, ManaCost: 20, Cooldown: 3, CastTime: 1, Melee: false, Range: 400, Icon: "fireball_icon.png"}},
		{"Claw Swipe", entity.AbilityDef{Name: "Claw Swipe", Damage: 10, ManaCost: 5, Cooldown: 5, CastTime: DefaultCastTime, Melee: DefaultMelee, Range: DefaultRange, Icon: "claw_icon.png"}},
		{"Dark Bolt", entity.AbilityDef{Name: "Dark Bolt", Damage: 30, ManaCost: 5, Cooldown: 3, CastTime: 5, Melee: false, Range: 300, Icon: "dark_bolt_icon.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := catalog.Def(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, def)
		})
	}
}

func TestCatalog_AbilitiesAreIndependent(t *testing.T) {
	catalog := NewCatalog([]AbilityConfig{{Name: "Fireball", Damage: 40, ManaCost: 20, Cooldown: 3}})

	a, err := catalog.Abilities("Fireball")
	require.NoError(t, err)
	b, err := catalog.Abilities("Fireball")
	require.NoError(t, err)

	a[0].LastUsed = 10
	assert.Equal(t, -3.0, b[0].LastUsed)

	_, err = catalog.Abilities("Fireball", "Meteor")
	assert.ErrorContains(t, err, `unknown ability "Meteor"`)
}

func TestLoader_LoadItems(t *testing.T) {
	loader := NewLoader(configDir)

	items, err := loader.LoadItems()
	require.NoError(t, err)
	assert.Equal(t, 7, items.Len())

	sword, ok := items.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Iron Sword", sword.Name)
	assert.Equal(t, "One-Handed", sword.RequiredSkill)
	assert.Equal(t, 1, sword.RequiredLevel)
	assert.Equal(t, "main_hand", sword.Slot)

	helm, ok := items.ByName("Iron Helm")
	require.True(t, ok)
	assert.Equal(t, entity.ItemID(7), helm.ID)
	assert.Equal(t, 2, helm.RequiredLevel)

	_, ok = items.ByID(99)
	assert.False(t, ok)
}

func TestLoader_LoadLoadout(t *testing.T) {
	loader := NewLoader(configDir)

	loadout, err := loader.LoadLoadout()
	require.NoError(t, err)

	p := entity.NewPlayer(1, geom.Rect{W: 50, H: 50}, 150, entity.Resources{})
	loadout.Apply(p)

	assert.Equal(t, []entity.ItemID{1, 5, 6, 7}, p.Inventory.Items)
	assert.Equal(t, entity.ItemID(2), p.Equipped.Slots["head"])
	assert.Equal(t, []string{"head", "body", "legs", "main_hand"}, p.Equipped.SlotNames())
}

func TestLoader_LoadEnemies(t *testing.T) {
	loader := NewLoader(configDir)

	enemies, err := loader.LoadEnemies()
	require.NoError(t, err)

	goblin, kind, ok := enemies.Archetype("")
	require.True(t, ok)
	assert.Equal(t, "goblin", kind)
	assert.Equal(t, 80.0, goblin.Speed)
	assert.Equal(t, 300.0, goblin.ChaseRange)
	assert.Equal(t, 50, goblin.Stats.Health)
	assert.Equal(t, []string{"Claw Swipe", "Dark Bolt"}, goblin.Abilities)

	skeleton, _, ok := enemies.Archetype("skeleton")
	require.True(t, ok)
	assert.Equal(t, 80, skeleton.Stats.MaxHealth)

	_, _, ok = enemies.Archetype("dragon")
	assert.False(t, ok)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader(configDir)

	t.Run("object form", func(t *testing.T) {
		level, err := loader.LoadLevel("demo")
		require.NoError(t, err)
		assert.Equal(t, "demo", level.Name)
		assert.Len(t, level.Tiles, 8)
		require.Len(t, level.Patrols, 2)
		assert.Equal(t, TileCoord{Col: 10, Row: 1}, level.Patrols[0].Waypoints[0])
	})

	t.Run("bare grid", func(t *testing.T) {
		level, err := loader.LoadLevel("crypt")
		require.NoError(t, err)
		assert.Equal(t, "crypt", level.Name)
		assert.Len(t, level.Tiles, 6)
		assert.Empty(t, level.Patrols)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loader.LoadLevel("nowhere")
		assert.Error(t, err)
	})
}

func TestLoader_LoadAll(t *testing.T) {
	cfg, err := NewLoader(configDir).LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Settings)
	assert.NotNil(t, cfg.Abilities)
	assert.NotNil(t, cfg.Items)
	assert.NotNil(t, cfg.Loadout)
	assert.NotNil(t, cfg.Enemies)
}

func TestLevelConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		level   LevelConfig
		wantErr bool
	}{
		{"valid", LevelConfig{Tiles: [][]int{{1, 4}}, Patrols: []PatrolConfig{{Enemy: 0}}}, false},
		{"empty", LevelConfig{}, true},
		{"unknown code", LevelConfig{Tiles: [][]int{{1, 9}}}, true},
		{"negative code", LevelConfig{Tiles: [][]int{{-1}}}, true},
		{"patrol without enemy", LevelConfig{Tiles: [][]int{{1, 4}}, Patrols: []PatrolConfig{{Enemy: 1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTileCoord_JSON(t *testing.T) {
	var c TileCoord
	require.NoError(t, c.UnmarshalJSON([]byte("[3, 4]")))
	assert.Equal(t, TileCoord{Col: 3, Row: 4}, c)

	out, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, "[3,4]", string(out))

	assert.Error(t, c.UnmarshalJSON([]byte("[1]")))
}

func TestGameConfig_ValidateReferences(t *testing.T) {
	fsys := fstest.MapFS{
		"settings.json":  {Data: []byte(`{"player": {"abilities": ["Fireball"]}}`)},
		"abilities.json": {Data: []byte(`{"abilities": [{"name": "Claw Swipe", "damage": 10, "mana_cost": 5, "cooldown": 5}]}`)},
		"items.json":     {Data: []byte(`{"items": []}`)},
		"player.json":    {Data: []byte(`{"inventory": []}`)},
		"enemies.yaml":   {Data: []byte("default: goblin\narchetypes:\n  goblin:\n    abilities: [Claw Swipe]\n")},
	}

	_, err := NewFSLoader(fsys, ".").LoadAll()
	assert.ErrorContains(t, err, `player: unknown ability "Fireball"`)

	fsys["settings.json"] = &fstest.MapFile{Data: []byte(`{"player": {"abilities": ["Claw Swipe"]}, "map": {"enemy": "dragon"}}`)}
	_, err = NewFSLoader(fsys, ".").LoadAll()
	assert.ErrorContains(t, err, `unknown enemy archetype "dragon"`)

	fsys["settings.json"] = &fstest.MapFile{Data: []byte(`{"player": {"abilities": ["Claw Swipe"]}}`)}
	_, err = NewFSLoader(fsys, ".").LoadAll()
	assert.NoError(t, err)
}

func TestLoader_ParseErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"settings.json": {Data: []byte(`{"display": `)},
		"enemies.yaml":  {Data: []byte("archetypes: [unclosed")},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadSettings()
	assert.ErrorContains(t, err, "failed to parse settings.json")

	_, err = loader.LoadEnemies()
	assert.ErrorContains(t, err, "failed to parse enemies.yaml")

	_, err = loader.LoadAbilities()
	assert.ErrorContains(t, err, "failed to read abilities.json")
}
