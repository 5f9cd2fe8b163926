package system

import (
	"fmt"

	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// DefaultTileSize is used when settings leave map.tileSize at zero
const DefaultTileSize = 50

// LevelBuilder receives the entities of a loaded level, in tile order
type LevelBuilder interface {
	NextID() entity.EntityID
	AddFloor(rect geom.Rect, image string) *entity.Tile
	AddWall(rect geom.Rect, image string) *entity.Tile
	AddDoor(rect geom.Rect, image string) *entity.Tile
	AddPlayer(p *entity.Player)
	AddEnemy(e *entity.Enemy)
}

// LoadLevel populates b from a level grid. Only the first player spawn is used;
// player, enemy and door cells get a floor tile beneath them.
func LoadLevel(level *config.LevelConfig, cfg *config.GameConfig, b LevelBuilder) error {
	log := logger.Component("level")
	ts := tileSize(cfg)
	images := cfg.Settings.Map.Images

	patrols := make(map[int][]geom.Point, len(level.Patrols))
	for _, p := range level.Patrols {
		wps := make([]geom.Point, 0, len(p.Waypoints))
		for _, c := range p.Waypoints {
			wps = append(wps, geom.Point{X: float64(c.Col) * ts, Y: float64(c.Row) * ts})
		}
		patrols[p.Enemy] = wps
	}

	kind := level.Enemy
	if kind == "" {
		kind = cfg.Settings.Map.Enemy
	}

	playerPlaced := false
	enemyIndex := 0
	for row, cols := range level.Tiles {
		for col, code := range cols {
			rect := geom.Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}

			switch code {
			case config.CodeFloor:
				b.AddFloor(rect, images.Floor)
			case config.CodeWallX:
				b.AddWall(rect, images.WallX)
			case config.CodeWallY:
				b.AddWall(rect, images.WallY)
			case config.CodePlayer:
				b.AddFloor(rect, images.Floor)
				if playerPlaced {
					log.WithField("row", row).WithField("col", col).Warn("extra player spawn ignored")
					continue
				}
				p, err := NewPlayerFromConfig(b.NextID(), rect.TopLeft(), cfg)
				if err != nil {
					return err
				}
				b.AddPlayer(p)
				playerPlaced = true
			case config.CodeEnemy:
				b.AddFloor(rect, images.Floor)
				e, err := NewEnemyFromConfig(b.NextID(), rect.TopLeft(), kind, cfg)
				if err != nil {
					return err
				}
				e.Waypoints = patrols[enemyIndex]
				b.AddEnemy(e)
				enemyIndex++
			case config.CodeDoor:
				b.AddFloor(rect, images.Floor)
				b.AddDoor(rect, images.Door)
			default:
				return fmt.Errorf("level %s: unknown tile code %d at row %d col %d", level.Name, code, row, col)
			}
		}
	}

	if !playerPlaced {
		return fmt.Errorf("level %s has no player spawn", level.Name)
	}

	log.WithField("level", level.Name).WithField("enemies", enemyIndex).Info("level loaded")
	return nil
}

// NewPlayerFromConfig builds the player at pos from settings, abilities and loadout.
func NewPlayerFromConfig(id entity.EntityID, pos geom.Point, cfg *config.GameConfig) (*entity.Player, error) {
	pc := cfg.Settings.Player
	w, h := pc.Width, pc.Height
	if w <= 0 || h <= 0 {
		w, h = tileSize(cfg), tileSize(cfg)
	}

	p := entity.NewPlayer(id, geom.Rect{X: pos.X, Y: pos.Y, W: w, H: h}, pc.Speed, ResourcesFrom(pc.Stats))
	p.Image = pc.Image
	p.Portrait = pc.Portrait

	abilities, err := cfg.Abilities.Abilities(pc.Abilities...)
	if err != nil {
		return nil, fmt.Errorf("failed to build player: %w", err)
	}
	p.GrantAbilities(abilities...)

	if cfg.Loadout != nil {
		cfg.Loadout.Apply(p)
	}
	return p, nil
}

// NewEnemyFromConfig builds an enemy of the given archetype at pos.
// An empty kind selects the default archetype.
func NewEnemyFromConfig(id entity.EntityID, pos geom.Point, kind string, cfg *config.GameConfig) (*entity.Enemy, error) {
	arch, resolved, ok := cfg.Enemies.Archetype(kind)
	if !ok {
		return nil, fmt.Errorf("unknown enemy archetype %q", resolved)
	}

	w, h := arch.Width, arch.Height
	if w <= 0 || h <= 0 {
		w, h = tileSize(cfg), tileSize(cfg)
	}

	e := entity.NewEnemy(id, geom.Rect{X: pos.X, Y: pos.Y, W: w, H: h}, resolved)
	e.Speed = arch.Speed
	e.Image = arch.Image
	e.Resources = ResourcesFrom(arch.Stats)
	e.ChaseRange = arch.ChaseRange
	if e.ChaseRange <= 0 {
		e.ChaseRange = cfg.Settings.AI.DefaultChaseRange
	}

	abilities, err := cfg.Abilities.Abilities(arch.Abilities...)
	if err != nil {
		return nil, fmt.Errorf("failed to build enemy %s: %w", resolved, err)
	}
	e.GrantAbilities(abilities...)
	return e, nil
}

// ResourcesFrom converts configured stats into domain resources
func ResourcesFrom(s config.StatsConfig) entity.Resources {
	return entity.Resources{
		Health:     s.Health,
		MaxHealth:  s.MaxHealth,
		Mana:       s.Mana,
		MaxMana:    s.MaxMana,
		Stamina:    s.Stamina,
		MaxStamina: s.MaxStamina,
		XP:         s.XP,
		MaxXP:      s.MaxXP,
	}
}

func tileSize(cfg *config.GameConfig) float64 {
	if ts := cfg.Settings.Map.TileSize; ts > 0 {
		return float64(ts)
	}
	return DefaultTileSize
}
