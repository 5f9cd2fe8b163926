package world

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
)

// Build creates a map populated from a level. seed drives every random
// choice of the session.
func Build(cfg *config.GameConfig, level *config.LevelConfig, seed int64) (*Map, error) {
	if cfg == nil || cfg.Settings == nil {
		return nil, fmt.Errorf("failed to build level: missing settings")
	}
	m := New(cfg.Settings, rand.New(rand.NewSource(seed)))
	if err := system.LoadLevel(level, cfg, m); err != nil {
		return nil, fmt.Errorf("failed to build level %q: %w", level.Name, err)
	}
	return m, nil
}
