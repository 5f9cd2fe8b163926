package config

// EnemiesConfig is the root of enemies.yaml
type EnemiesConfig struct {
	Default    string                    `yaml:"default"`
	Archetypes map[string]EnemyArchetype `yaml:"archetypes"`
}

// EnemyArchetype describes an enemy kind spawned by tile code 4
type EnemyArchetype struct {
	Image      string      `yaml:"image"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Speed      float64     `yaml:"speed"`
	ChaseRange float64     `yaml:"chaseRange"`
	Stats      StatsConfig `yaml:"stats"`
	Abilities  []string    `yaml:"abilities"`
}

// Archetype resolves kind, falling back to the default archetype when kind is empty.
func (c *EnemiesConfig) Archetype(kind string) (EnemyArchetype, string, bool) {
	if kind == "" {
		kind = c.Default
	}
	a, ok := c.Archetypes[kind]
	return a, kind, ok
}
