package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/boom/internal/domain/entity"
)

// createSingleCellGrid returns a 3x3 map whose only open cell is the center.
func createSingleCellGrid() *entity.Grid {
	return entity.NewGrid([][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, true},
	}, 32)
}

// createRoomGrid returns a 5x5 map with a solid border around a 3x3 room.
// Cells are 32px; the room spans [32, 128) on both axes.
func createRoomGrid() *entity.Grid {
	walls := make([][]bool, 5)
	for r := 0; r < 5; r++ {
		walls[r] = make([]bool, 5)
		for c := 0; c < 5; c++ {
			walls[r][c] = r == 0 || r == 4 || c == 0 || c == 4
		}
	}
	return entity.NewGrid(walls, 32)
}

// createDemoGrid mirrors the shipped demo stage (15x10, 96px cells)
func createDemoGrid() *entity.Grid {
	rows := []string{
		"###############",
		"#..#.......#..#",
		"#..#...###.#..#",
		"#.............#",
		"####......#####",
		"#....#........#",
		"#....#.....#..#",
		"#....#........#",
		"#....#........#",
		"###############",
	}
	walls := make([][]bool, len(rows))
	for r, row := range rows {
		walls[r] = make([]bool, len(row))
		for c, ch := range row {
			walls[r][c] = ch == '#'
		}
	}
	return entity.NewGrid(walls, 96)
}

func TestRayCaster_SingleCell(t *testing.T) {
	caster := NewRayCaster(createSingleCellGrid())

	tests := []struct {
		name            string
		angle           float64
		wantOrientation entity.Orientation
	}{
		{"east", 0, entity.VerticalLine},
		{"south", math.Pi / 2, entity.HorizontalLine},
		{"west", math.Pi, entity.VerticalLine},
		{"north", -math.Pi / 2, entity.HorizontalLine},
		{"north as 3pi/2", 3 * math.Pi / 2, entity.HorizontalLine},
		{"east after many turns", 8 * math.Pi, entity.VerticalLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := caster.Cast(48, 48, tt.angle)

			require.True(t, ray.Hit)
			assert.InDelta(t, 16.0, ray.Distance, 1e-3, "half a cell to the wall")
			assert.Equal(t, tt.wantOrientation, ray.Orientation)
			assert.Equal(t, 1, ray.Steps)
			assert.Equal(t, tt.angle, ray.Angle)
		})
	}
}

func TestRayCaster_Diagonal(t *testing.T) {
	caster := NewRayCaster(createSingleCellGrid())

	ray := caster.Cast(48, 48, math.Pi/4)

	require.True(t, ray.Hit)
	assert.InDelta(t, 16*math.Sqrt2, ray.Distance, 1e-3)
	assert.InDelta(t, 64.0, ray.HitX, 1e-3)
	assert.InDelta(t, 64.0, ray.HitY, 1e-3)
}

func TestRayCaster_NoNaNAtCardinalAngles(t *testing.T) {
	caster := NewRayCaster(createRoomGrid())

	for k := -8; k <= 8; k++ {
		angle := float64(k) * math.Pi / 2
		ray := caster.Cast(70, 90, angle)

		assert.True(t, ray.Hit, "angle %v", angle)
		assert.False(t, math.IsNaN(ray.Distance), "angle %v", angle)
		assert.False(t, math.IsInf(ray.Distance, 0), "angle %v", angle)
		assert.Greater(t, ray.Distance, 0.0)
	}
}

func TestRayCaster_HitsRoomWalls(t *testing.T) {
	caster := NewRayCaster(createRoomGrid())

	tests := []struct {
		name            string
		x, y, angle     float64
		wantDistance    float64
		wantOrientation entity.Orientation
	}{
		{"east wall", 80, 80, 0, 48, entity.VerticalLine},
		{"west wall", 40, 80, math.Pi, 8, entity.VerticalLine},
		{"south wall", 80, 100, math.Pi / 2, 28, entity.HorizontalLine},
		{"north wall", 80, 50, -math.Pi / 2, 18, entity.HorizontalLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := caster.Cast(tt.x, tt.y, tt.angle)

			require.True(t, ray.Hit)
			assert.InDelta(t, tt.wantDistance, ray.Distance, 1e-3)
			assert.Equal(t, tt.wantOrientation, ray.Orientation)
		})
	}
}

func TestRayCaster_HitPointOnGridLine(t *testing.T) {
	grid := createDemoGrid()
	caster := NewRayCaster(grid)

	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		ray := caster.Cast(720, 480, angle)

		require.True(t, ray.Hit, "angle %d", i)
		assert.True(t, grid.WallAt(ray.HitX, ray.HitY), "angle %d: hit point must be in a wall", i)

		// The hit coordinate of the crossed family sits castEpsilon past a line
		var coord float64
		if ray.Orientation == entity.VerticalLine {
			coord = ray.HitX
		} else {
			coord = ray.HitY
		}
		offset := math.Mod(coord, grid.CellSize)
		nearLine := offset < 2*castEpsilon || offset > grid.CellSize-2*castEpsilon
		assert.True(t, nearLine, "angle %d: %v not on a grid line", i, coord)
	}
}

func TestRayCaster_TerminatesWithinBound(t *testing.T) {
	grid := createDemoGrid()
	caster := NewRayCaster(grid)
	bound := grid.Rows + grid.Cols

	origins := [][2]float64{
		{720, 480},
		{150, 150},
		{1300, 700},
		{500, 320},
	}

	for _, o := range origins {
		require.False(t, grid.WallAt(o[0], o[1]))
		for i := 0; i < 720; i++ {
			angle := float64(i)*math.Pi/360 + 0.0001
			ray := caster.Cast(o[0], o[1], angle)

			require.True(t, ray.Hit)
			assert.LessOrEqual(t, ray.Steps, bound)
			assert.Greater(t, ray.Distance, 0.0)
		}
	}
}

func TestRayCaster_OutOfBoundsIsWall(t *testing.T) {
	// An all-empty map still stops every ray at the map edge
	walls := [][]bool{
		{false, false, false, false},
		{false, false, false, false},
	}
	grid := entity.NewGrid(walls, 10)
	caster := NewRayCaster(grid)

	ray := caster.Cast(5, 5, 0)
	require.True(t, ray.Hit)
	assert.InDelta(t, 35.0, ray.Distance, 1e-3)
	assert.Equal(t, 4, ray.Steps)

	ray = caster.Cast(5, 5, math.Pi/2)
	require.True(t, ray.Hit)
	assert.InDelta(t, 15.0, ray.Distance, 1e-3)
}

func TestRayCaster_OriginOutsideMap(t *testing.T) {
	caster := NewRayCaster(createRoomGrid())

	ray := caster.Cast(-50, 80, 0)

	assert.True(t, ray.Hit)
	assert.Equal(t, 1, ray.Steps)
}

func TestRayCaster_NonFiniteInput(t *testing.T) {
	caster := NewRayCaster(createRoomGrid())

	inputs := []struct {
		name        string
		x, y, angle float64
	}{
		{"NaN x", math.NaN(), 80, 0},
		{"Inf y", 80, math.Inf(1), 0},
		{"NaN angle", 80, 80, math.NaN()},
		{"Inf angle", 80, 80, math.Inf(-1)},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			ray := caster.Cast(in.x, in.y, in.angle)

			assert.False(t, ray.Hit)
			assert.Equal(t, 0, ray.Steps)
			assert.True(t, math.IsInf(ray.Distance, 1))
		})
	}
}

func TestSnapToLine(t *testing.T) {
	tests := []struct {
		name       string
		v          float64
		increasing bool
		want       float64
	}{
		{"up from inside cell", 48, true, 64 + castEpsilon},
		{"down from inside cell", 48, false, 32 - castEpsilon},
		{"up from just past a line", 64 + castEpsilon, true, 96 + castEpsilon},
		{"down from just before a line", 64 - castEpsilon, false, 32 - castEpsilon},
		{"down from just past a line", 32 - castEpsilon, false, 0 - castEpsilon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, snapToLine(tt.v, tt.increasing, 32), 1e-9)
		})
	}
}
