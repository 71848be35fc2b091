package system

import (
	"math"

	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

// LoadGrid converts a StageConfig into a Grid.
// Glyphs mapped as solid or of type "wall" become walls; anything else,
// including unmapped glyphs, is empty.
func LoadGrid(cfg *config.StageConfig) *entity.Grid {
	cols := cfg.Cols()

	walls := make([][]bool, len(cfg.Layers.Collision))
	for y, row := range cfg.Layers.Collision {
		walls[y] = make([]bool, cols)
		for x, char := range []rune(row) {
			if x >= cols {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			walls[y][x] = mapping.Solid || mapping.Type == "wall"
		}
	}

	return entity.NewGrid(walls, float64(cfg.CellSize))
}

// SpawnPlayer creates the player at the stage's spawn pose
func SpawnPlayer(cfg *config.StageConfig) *entity.Player {
	angle := cfg.PlayerSpawn.AngleDeg * math.Pi / 180
	return entity.NewPlayer(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, angle)
}
