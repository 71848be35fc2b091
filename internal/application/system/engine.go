package system

import (
	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

// Frame is everything one tick produces for the renderer
type Frame struct {
	Rays    []entity.Ray
	Columns []Column
	Move    MoveResult
}

// Engine runs the per-frame pipeline: movement, ray fan, projection.
// It holds no per-frame state; the player is owned by the caller.
type Engine struct {
	grid      *entity.Grid
	movement  *MovementSystem
	caster    *RayCaster
	fan       *FanBuilder
	projector *Projector
}

// NewEngine wires the systems for a grid
func NewEngine(cfg *config.EngineConfig, grid *entity.Grid) *Engine {
	wallHeight := cfg.Camera.WallHeight
	if wallHeight == 0 {
		wallHeight = grid.CellSize
	}

	caster := NewRayCaster(grid)
	return &Engine{
		grid:      grid,
		movement:  NewMovementSystem(&cfg.Movement, grid),
		caster:    caster,
		fan:       NewFanBuilder(caster, cfg.Camera.FOV(), cfg.NumRays(), cfg.Camera.Workers),
		projector: NewProjector(cfg, wallHeight),
	}
}

// Tick advances one frame: apply input to the player, then render its view
func (e *Engine) Tick(input InputState, player *entity.Player) Frame {
	move := e.movement.Apply(player, input)
	frame := e.View(player)
	frame.Move = move
	return frame
}

// View casts and projects the player's view without moving it.
// A player with a non-finite pose gets an empty frame.
func (e *Engine) View(player *entity.Player) Frame {
	if !player.IsFinite() {
		return Frame{}
	}

	rays := e.fan.Cast(player.X, player.Y, player.Angle)
	return Frame{
		Rays:    rays,
		Columns: e.projector.ProjectAll(rays, player.Angle),
	}
}

// Draw hands the frame's columns to the drawer
func (e *Engine) Draw(d Drawer, frame Frame) {
	e.projector.Draw(d, frame.Columns)
}

// Grid returns the world grid
func (e *Engine) Grid() *entity.Grid {
	return e.grid
}

// Projector returns the projector, e.g. to toggle fisheye correction
func (e *Engine) Projector() *Projector {
	return e.projector
}
