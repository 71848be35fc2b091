package entity

import "math"

// Direction selects which way along the facing angle a move goes
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// WallQuery answers point-in-wall questions in world coordinates.
// *Grid implements it.
type WallQuery interface {
	WallAt(x, y float64) bool
}

// Player is the viewer's pose.
// Position is in world units (pixels); Angle is in radians and is never
// normalized, so it may grow without bound as the player keeps turning.
type Player struct {
	X, Y  float64
	Angle float64
}

// NewPlayer creates a player at the given world position and facing angle
func NewPlayer(x, y, angle float64) *Player {
	return &Player{X: x, Y: y, Angle: angle}
}

// Heading returns the unit vector of the facing angle
func (p *Player) Heading() (dx, dy float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

// IsFinite reports whether every pose component is a finite number
func (p *Player) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Angle)
}

// TryMove translates the player by distance along the facing angle (Forward)
// or its reverse (Backward). Only the destination point is tested; if it is a
// wall the move is rejected and the player is left untouched.
// Returns true if the player moved.
func (p *Player) TryMove(world WallQuery, dir Direction, distance float64) bool {
	if !isFinite(distance) || !p.IsFinite() {
		return false
	}
	if dir == Backward {
		distance = -distance
	}

	dx, dy := p.Heading()
	nextX := p.X + distance*dx
	nextY := p.Y + distance*dy
	if world.WallAt(nextX, nextY) {
		return false
	}

	p.X = nextX
	p.Y = nextY
	return true
}

// Rotate adds delta to the facing angle. Rotation is never blocked;
// only a non-finite delta is refused.
func (p *Player) Rotate(delta float64) bool {
	if !isFinite(delta) {
		return false
	}
	p.Angle += delta
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
