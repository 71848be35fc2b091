package system

import (
	"math"

	"github.com/younwookim/boom/internal/domain/entity"
)

const (
	// castEpsilon nudges the ray start and every snapped point past its grid
	// line so the following WallAt lands inside the next cell.
	castEpsilon = 1e-4

	// slopeEpsilon: below this |cos| (or |sin|) the ray runs parallel to that
	// family of grid lines and never meets one.
	slopeEpsilon = 1e-12
)

// RayCaster finds the first wall along a ray by marching from one grid-line
// crossing to the next.
type RayCaster struct {
	grid *entity.Grid
}

// NewRayCaster creates a new ray caster over the grid
func NewRayCaster(grid *entity.Grid) *RayCaster {
	return &RayCaster{grid: grid}
}

// Cast marches from (originX, originY) along angle until it lands in a wall.
//
// Every step advances to whichever grid line is nearer: the next vertical line
// x = k*cell or the next horizontal line y = k*cell. The ray cannot leave the
// map without hitting a wall (out of bounds is a wall), so it stops within
// rows+cols crossings. Marching is capped there; Hit is false only when the
// cap is reached or the input is not finite.
func (c *RayCaster) Cast(originX, originY, angle float64) entity.Ray {
	ray := entity.Ray{Angle: angle}
	if !finite(originX) || !finite(originY) || !finite(angle) {
		ray.Distance = math.Inf(1)
		return ray
	}

	cos, sin := math.Cos(angle), math.Sin(angle)
	x := originX + cos*castEpsilon
	y := originY + sin*castEpsilon

	maxSteps := c.grid.Rows + c.grid.Cols
	if maxSteps < 1 {
		maxSteps = 1
	}

	for ray.Steps < maxSteps {
		x, y, ray.Orientation = c.step(x, y, cos, sin)
		ray.Steps++
		if c.grid.WallAt(x, y) {
			ray.Hit = true
			break
		}
	}

	ray.HitX, ray.HitY = x, y
	ray.Distance = math.Hypot(x-originX, y-originY)
	return ray
}

// step returns the nearer of the two next grid-line crossings from (x, y).
// The horizontal-line candidate is evaluated first so it wins ties.
func (c *RayCaster) step(x, y, cos, sin float64) (nx, ny float64, orientation entity.Orientation) {
	cell := c.grid.CellSize
	best := math.Inf(1)

	// Next horizontal line, solving x from the slope
	if math.Abs(sin) > slopeEpsilon {
		ys := snapToLine(y, sin > 0, cell)
		xs := (ys-y)*cos/sin + x
		if d := math.Hypot(xs-x, ys-y); d < best {
			best = d
			nx, ny, orientation = xs, ys, entity.HorizontalLine
		}
	}

	// Next vertical line, solving y = tan(angle) * (xs - x) + y
	if math.Abs(cos) > slopeEpsilon {
		xs := snapToLine(x, cos >= 0, cell)
		ys := sin/cos*(xs-x) + y
		if d := math.Hypot(xs-x, ys-y); d < best {
			nx, ny, orientation = xs, ys, entity.VerticalLine
		}
	}

	return nx, ny, orientation
}

// snapToLine rounds v to the next multiple of cell in the direction of travel,
// then steps castEpsilon past it.
func snapToLine(v float64, increasing bool, cell float64) float64 {
	if increasing {
		return math.Ceil(v/cell)*cell + castEpsilon
	}
	return math.Floor(v/cell)*cell - castEpsilon
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
