package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem polls the keyboard for movement commands
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds which movement commands are active this frame.
// Every field is independent; Forward and Backward may both be set.
type InputState struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Idle reports whether no command is active
func (in InputState) Idle() bool {
	return !in.Forward && !in.Backward && !in.TurnLeft && !in.TurnRight
}

// GetInput reads the current input state. Arrow keys and WASD are equivalent.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}
