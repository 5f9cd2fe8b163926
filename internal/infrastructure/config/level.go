package config

import (
	"encoding/json"
	"fmt"
)

// Tile codes used by level files
const (
	CodeFloor  = 0
	CodePlayer = 1
	CodeWallX  = 2
	CodeWallY  = 3
	CodeEnemy  = 4
	CodeDoor   = 5
)

// LevelConfig is the root config for levels/<name>.json.
// The file is either a bare nested int array or an object with tiles and patrols.
type LevelConfig struct {
	Name    string         `json:"name"`
	Enemy   string         `json:"enemy"` // archetype override for this level
	Tiles   [][]int        `json:"tiles"`
	Patrols []PatrolConfig `json:"patrols"`
}

// PatrolConfig assigns waypoints to the n-th enemy spawn (row-major order)
type PatrolConfig struct {
	Enemy     int         `json:"enemy"`
	Waypoints []TileCoord `json:"waypoints"`
}

// TileCoord is a [col, row] pair
type TileCoord struct {
	Col int
	Row int
}

// UnmarshalJSON decodes a [col, row] pair
func (c *TileCoord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("tile coordinate needs 2 values, got %d", len(pair))
	}
	c.Col, c.Row = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes as a [col, row] pair
func (c TileCoord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{c.Col, c.Row})
}

type levelObject LevelConfig

// UnmarshalJSON accepts both level layouts
func (l *LevelConfig) UnmarshalJSON(data []byte) error {
	var grid [][]int
	if err := json.Unmarshal(data, &grid); err == nil {
		*l = LevelConfig{Tiles: grid}
		return nil
	}

	var obj levelObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*l = LevelConfig(obj)
	return nil
}

// Validate checks tile codes and patrol references
func (l *LevelConfig) Validate() error {
	if len(l.Tiles) == 0 {
		return fmt.Errorf("level has no tiles")
	}
	enemies := 0
	for row, cols := range l.Tiles {
		for col, code := range cols {
			if code < CodeFloor || code > CodeDoor {
				return fmt.Errorf("unknown tile code %d at row %d col %d", code, row, col)
			}
			if code == CodeEnemy {
				enemies++
			}
		}
	}
	for _, p := range l.Patrols {
		if p.Enemy < 0 || p.Enemy >= enemies {
			return fmt.Errorf("patrol references enemy %d, level has %d", p.Enemy, enemies)
		}
	}
	return nil
}
