package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/boom/internal/application/replay"
	"github.com/younwookim/boom/internal/application/system"
	"github.com/younwookim/boom/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder starting from the given pose
func NewRecorder(stage string, start *entity.Player) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Start:     poseOf(start),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.frame,
		Fw: input.Forward,
		Bw: input.Backward,
		L:  input.TurnLeft,
		R:  input.TurnRight,
	})
	r.frame++
}

// Save writes the replay data to a file, stamping the pose reached so far
func (r *Recorder) Save(filename string, end *entity.Player) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	data := r.data
	if end != nil {
		pose := poseOf(end)
		data.End = &pose
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

func poseOf(p *entity.Player) replay.Pose {
	return replay.Pose{X: p.X, Y: p.Y, Angle: p.Angle}
}
