package main

import (
	"fmt"
	"log"
	"math"

	"github.com/younwookim/boom/internal/application/replay"
	"github.com/younwookim/boom/internal/application/system"
	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

// poseTolerance is the allowed drift between a recorded and a replayed end pose
const poseTolerance = 1e-9

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames  int
	Moved   int
	Blocked int
	Final   replay.Pose
	// Matches is true when the recording has no end pose or the replay reached it
	Matches bool
}

// runReplay plays the recorded inputs against the configured stage without a window
func runReplay(cfg *config.GameConfig, data *replay.ReplayData) (ReplayResult, error) {
	if data.Stage != cfg.Stage.ID {
		return ReplayResult{}, fmt.Errorf("failed to replay: recorded on stage %q, loaded %q", data.Stage, cfg.Stage.ID)
	}

	grid := system.LoadGrid(cfg.Stage)
	engine := system.NewEngine(cfg.Engine, grid)
	replayer := replay.NewReplayer(*data)

	start := replayer.Start()
	player := entity.NewPlayer(start.X, start.Y, start.Angle)
	if grid.WallAt(player.X, player.Y) {
		return ReplayResult{}, fmt.Errorf("failed to replay: start (%.2f, %.2f) is inside a wall", player.X, player.Y)
	}

	var result ReplayResult
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		frame := engine.Tick(input, player)
		if frame.Move.Moved {
			result.Moved++
		}
		if frame.Move.Blocked {
			result.Blocked++
		}
	}

	result.Frames = replayer.CurrentFrame()
	result.Final = replay.Pose{X: player.X, Y: player.Y, Angle: player.Angle}
	result.Matches = data.End == nil || samePose(*data.End, result.Final)

	return result, nil
}

// replayFile loads a recording and logs the outcome of replaying it
func replayFile(cfg *config.GameConfig, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return fmt.Errorf("failed to load replay: %w", err)
	}

	result, err := runReplay(cfg, data)
	if err != nil {
		return err
	}

	log.Printf("Replay %s: %d frames (%d moved, %d blocked), final pose x=%.3f y=%.3f angle=%.4f",
		path, result.Frames, result.Moved, result.Blocked, result.Final.X, result.Final.Y, result.Final.Angle)

	if !result.Matches {
		return fmt.Errorf("replay diverged: recorded end x=%.3f y=%.3f angle=%.4f",
			data.End.X, data.End.Y, data.End.Angle)
	}

	return nil
}

func samePose(a, b replay.Pose) bool {
	return math.Abs(a.X-b.X) <= poseTolerance &&
		math.Abs(a.Y-b.Y) <= poseTolerance &&
		math.Abs(a.Angle-b.Angle) <= poseTolerance
}
