package entity

// Orientation tells which family of grid lines a ray's hit point lies on.
// It only drives shading.
type Orientation int

const (
	// VerticalLine: the ray stopped on a line x = k*cell (an east/west step)
	VerticalLine Orientation = iota
	// HorizontalLine: the ray stopped on a line y = k*cell (a north/south step)
	HorizontalLine
)

// String returns the string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case VerticalLine:
		return "VerticalLine"
	case HorizontalLine:
		return "HorizontalLine"
	default:
		return "Unknown"
	}
}

// Ray is the result of one cast. Rays are rebuilt every frame.
type Ray struct {
	Angle       float64
	Distance    float64 // from the cast origin to the hit point, world units
	Orientation Orientation
	HitX, HitY  float64
	Steps       int  // grid-line crossings marched
	Hit         bool // false if marching gave up before finding a wall
}
