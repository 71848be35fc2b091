package config

import (
	"fmt"
	"unicode/utf8"
)

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	CellSize    int                          `json:"cellSize"`
	PlayerSpawn SpawnConfig                  `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

// SpawnConfig is the starting pose in world pixels
type SpawnConfig struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	AngleDeg float64 `json:"angleDeg"`
}

type LayersConfig struct {
	Collision []string `json:"collision"` // One string per row, one glyph per cell
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

// Rows returns the number of map rows
func (s *StageConfig) Rows() int {
	return len(s.Layers.Collision)
}

// Cols returns the number of map columns
func (s *StageConfig) Cols() int {
	if len(s.Layers.Collision) == 0 {
		return 0
	}
	return utf8.RuneCountInString(s.Layers.Collision[0])
}

// Validate checks the map is a non-empty rectangle of known glyphs
// with the spawn point inside it.
func (s *StageConfig) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: stage %s: cellSize %d", ErrInvalidConfig, s.ID, s.CellSize)
	}
	if s.Rows() == 0 || s.Cols() == 0 {
		return fmt.Errorf("%w: stage %s: empty collision layer", ErrInvalidConfig, s.ID)
	}

	cols := s.Cols()
	for y, row := range s.Layers.Collision {
		if n := utf8.RuneCountInString(row); n != cols {
			return fmt.Errorf("%w: stage %s: row %d has %d cells, want %d", ErrInvalidConfig, s.ID, y, n, cols)
		}
		for x, glyph := range []rune(row) {
			if _, ok := s.TileMapping[string(glyph)]; !ok {
				return fmt.Errorf("%w: stage %s: unknown glyph %q at row %d col %d", ErrInvalidConfig, s.ID, glyph, y, x)
			}
		}
	}

	width := float64(cols * s.CellSize)
	height := float64(s.Rows() * s.CellSize)
	if !(s.PlayerSpawn.X >= 0 && s.PlayerSpawn.X < width && s.PlayerSpawn.Y >= 0 && s.PlayerSpawn.Y < height) {
		return fmt.Errorf("%w: stage %s: spawn (%v, %v) outside %vx%v map",
			ErrInvalidConfig, s.ID, s.PlayerSpawn.X, s.PlayerSpawn.Y, width, height)
	}
	return nil
}
