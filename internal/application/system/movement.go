package system

import (
	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

// MovementSystem applies one frame of input to the player
type MovementSystem struct {
	config *config.MovementConfig
	grid   *entity.Grid
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.MovementConfig, grid *entity.Grid) *MovementSystem {
	return &MovementSystem{
		config: cfg,
		grid:   grid,
	}
}

// MoveResult reports what Apply did
type MoveResult struct {
	Moved   bool // At least one translation succeeded
	Blocked bool // At least one translation hit a wall
	Turned  bool
}

// Apply moves and turns the player. Each active command is applied in turn,
// so pressing forward and backward together nets out to no movement.
// Translations are all-or-nothing against the destination point.
func (s *MovementSystem) Apply(player *entity.Player, input InputState) MoveResult {
	var res MoveResult

	if input.Forward {
		s.translate(player, entity.Forward, &res)
	}
	if input.Backward {
		s.translate(player, entity.Backward, &res)
	}

	// Screen y grows downward, so a positive angle turns clockwise (right)
	if input.TurnRight {
		res.Turned = player.Rotate(s.config.RotateStep()) || res.Turned
	}
	if input.TurnLeft {
		res.Turned = player.Rotate(-s.config.RotateStep()) || res.Turned
	}

	return res
}

func (s *MovementSystem) translate(player *entity.Player, dir entity.Direction, res *MoveResult) {
	if player.TryMove(s.grid, dir, s.config.StepDistance) {
		res.Moved = true
	} else {
		res.Blocked = true
	}
}
