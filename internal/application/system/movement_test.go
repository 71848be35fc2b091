package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

func createTestMovementConfig() *config.MovementConfig {
	return &config.MovementConfig{
		StepDistance: 1,
		RotateDeg:    0.5,
	}
}

func TestNewMovementSystem(t *testing.T) {
	cfg := createTestMovementConfig()
	grid := createRoomGrid()

	sys := NewMovementSystem(cfg, grid)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Equal(t, grid, sys.grid)
}

func TestMovementSystem_Apply(t *testing.T) {
	sys := NewMovementSystem(createTestMovementConfig(), createRoomGrid())
	halfDegree := math.Pi / 360

	tests := []struct {
		name      string
		input     InputState
		wantX     float64
		wantY     float64
		wantAngle float64
		wantMoved bool
		wantTurn  bool
	}{
		{"idle", InputState{}, 80, 80, 0, false, false},
		{"forward", InputState{Forward: true}, 81, 80, 0, true, false},
		{"backward", InputState{Backward: true}, 79, 80, 0, true, false},
		{"forward and backward cancel", InputState{Forward: true, Backward: true}, 80, 80, 0, true, false},
		{"turn right", InputState{TurnRight: true}, 80, 80, halfDegree, false, true},
		{"turn left", InputState{TurnLeft: true}, 80, 80, -halfDegree, false, true},
		{"both turns cancel", InputState{TurnLeft: true, TurnRight: true}, 80, 80, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := entity.NewPlayer(80, 80, 0)

			res := sys.Apply(player, tt.input)

			assert.InDelta(t, tt.wantX, player.X, 1e-9)
			assert.InDelta(t, tt.wantY, player.Y, 1e-9)
			assert.InDelta(t, tt.wantAngle, player.Angle, 1e-12)
			assert.Equal(t, tt.wantMoved, res.Moved)
			assert.Equal(t, tt.wantTurn, res.Turned)
			assert.False(t, res.Blocked)
		})
	}
}

func TestMovementSystem_BlockedByWall(t *testing.T) {
	sys := NewMovementSystem(createTestMovementConfig(), createRoomGrid())
	// One unit short of the east wall at x=128
	player := entity.NewPlayer(127.5, 80, 0)

	for i := 0; i < 10; i++ {
		res := sys.Apply(player, InputState{Forward: true})
		assert.False(t, res.Moved)
		assert.True(t, res.Blocked)
	}

	assert.Equal(t, 127.5, player.X)
	assert.Equal(t, 80.0, player.Y)
}

func TestMovementSystem_WalksUntilWall(t *testing.T) {
	sys := NewMovementSystem(createTestMovementConfig(), createRoomGrid())
	player := entity.NewPlayer(80, 80, 0)

	steps := 0
	for i := 0; i < 200; i++ {
		if sys.Apply(player, InputState{Forward: true}).Moved {
			steps++
		}
	}

	// From x=80 a 1-unit step reaches 127 and the next would land on 128
	assert.Equal(t, 47, steps)
	assert.InDelta(t, 127.0, player.X, 1e-9)
	assert.False(t, createRoomGrid().WallAt(player.X, player.Y))
}
