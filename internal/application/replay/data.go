package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	Fw bool `json:"fw,omitempty"` // Forward
	Bw bool `json:"bw,omitempty"` // Backward
	L  bool `json:"l,omitempty"`  // TurnLeft
	R  bool `json:"r,omitempty"`  // TurnRight
}

// Pose is a player position and facing angle (radians)
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// ReplayData contains all data needed to replay a session.
// End is filled in when the recording is saved and lets a replay check
// that it reproduced the same walk.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Start     Pose         `json:"start"`
	End       *Pose        `json:"end,omitempty"`
	Frames    []FrameInput `json:"frames"`
}
