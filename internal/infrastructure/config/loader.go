package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/spellsword/internal/domain/entity"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings  *SettingsConfig
	Abilities *Catalog
	Items     *entity.ItemCatalog
	Loadout   *LoadoutConfig
	Enemies   *EnemiesConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadSettings loads settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	var cfg SettingsConfig
	if err := l.readJSON("settings.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.json
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.readJSON("levels/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAbilities loads abilities.json into a catalog
func (l *Loader) LoadAbilities() (*Catalog, error) {
	var f AbilitiesFile
	if err := l.readJSON("abilities.json", &f); err != nil {
		return nil, err
	}
	return NewCatalog(f.Abilities), nil
}

// LoadItems loads items.json into a catalog
func (l *Loader) LoadItems() (*entity.ItemCatalog, error) {
	var f ItemsFile
	if err := l.readJSON("items.json", &f); err != nil {
		return nil, err
	}
	return f.ItemCatalog(), nil
}

// LoadLoadout loads player.json
func (l *Loader) LoadLoadout() (*LoadoutConfig, error) {
	var cfg LoadoutConfig
	if err := l.readJSON("player.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnemies loads enemies.yaml
func (l *Loader) LoadEnemies() (*EnemiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read enemies.yaml: %w", err)
	}

	var cfg EnemiesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemies.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads every base configuration and checks ability references
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	abilities, err := l.LoadAbilities()
	if err != nil {
		return nil, err
	}

	items, err := l.LoadItems()
	if err != nil {
		return nil, err
	}

	loadout, err := l.LoadLoadout()
	if err != nil {
		return nil, err
	}

	enemies, err := l.LoadEnemies()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Settings:  settings,
		Abilities: abilities,
		Items:     items,
		Loadout:   loadout,
		Enemies:   enemies,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every referenced ability and archetype exists
func (c *GameConfig) Validate() error {
	if _, err := c.Abilities.Abilities(c.Settings.Player.Abilities...); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	for kind, a := range c.Enemies.Archetypes {
		if _, err := c.Abilities.Abilities(a.Abilities...); err != nil {
			return fmt.Errorf("enemy %s: %w", kind, err)
		}
	}
	if kind := c.Settings.Map.Enemy; kind != "" {
		if _, _, ok := c.Enemies.Archetype(kind); !ok {
			return fmt.Errorf("unknown enemy archetype %q", kind)
		}
	}
	if _, kind, ok := c.Enemies.Archetype(""); !ok {
		return fmt.Errorf("unknown default enemy archetype %q", kind)
	}
	return nil
}
