package config

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display DisplayConfig `json:"display"`
	Map     MapConfig     `json:"map"`
	Player  PlayerConfig  `json:"player"`
	Combat  CombatConfig  `json:"combat"`
	AI      AIConfig      `json:"ai"`
	HUD     HUDConfig     `json:"hud"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// MapConfig configures tile geometry and the images used per tile code
type MapConfig struct {
	TileSize   int        `json:"tileSize"`
	StartLevel string     `json:"startLevel"`
	Images     TileImages `json:"images"`
	Enemy      string     `json:"enemy"` // archetype spawned by tile code 4
}

type TileImages struct {
	Floor string `json:"floor"`
	WallX string `json:"wallX"`
	WallY string `json:"wallY"`
	Door  string `json:"door"`
}

type PlayerConfig struct {
	Image     string      `json:"image"`
	Portrait  string      `json:"portrait"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Speed     float64     `json:"speed"`
	Stats     StatsConfig `json:"stats"`
	Abilities []string    `json:"abilities"`
}

// StatsConfig holds starting resources. Shared by settings.json and enemies.yaml.
type StatsConfig struct {
	Health     int `json:"health" yaml:"health"`
	MaxHealth  int `json:"maxHealth" yaml:"maxHealth"`
	Mana       int `json:"mana" yaml:"mana"`
	MaxMana    int `json:"maxMana" yaml:"maxMana"`
	Stamina    int `json:"stamina" yaml:"stamina"`
	MaxStamina int `json:"maxStamina" yaml:"maxStamina"`
	XP         int `json:"xp" yaml:"xp"`
	MaxXP      int `json:"maxXP" yaml:"maxXP"`
}

type CombatConfig struct {
	MeleeReach      float64 `json:"meleeReach"`      // contact slack in pixels
	InteractReach   float64 `json:"interactReach"`   // door interaction slack in pixels
	ProjectileSpeed float64 `json:"projectileSpeed"` // visual only
	DamageLogWindow float64 `json:"damageLogWindow"` // seconds
	XPPerKill       int     `json:"xpPerKill"`
}

type AIConfig struct {
	WanderChance      float64 `json:"wanderChance"`
	PatrolTolerance   float64 `json:"patrolTolerance"`
	DefaultChaseRange float64 `json:"defaultChaseRange"`
}

type HUDConfig struct {
	FontSize  float64 `json:"fontSize"`
	BarWidth  int     `json:"barWidth"`
	BarHeight int     `json:"barHeight"`
	ShowDebug bool    `json:"showDebug"`
}
