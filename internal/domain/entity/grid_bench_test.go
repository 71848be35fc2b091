package entity

import "testing"

// Row-of-rows tiles (what Grid uses) against a flat row-major bitmap,
// probed along a diagonal the way a ray walks the map.

const benchCells = 64

func benchWalls() [][]bool {
	walls := make([][]bool, benchCells)
	for y := range walls {
		walls[y] = make([]bool, benchCells)
		for x := range walls[y] {
			walls[y][x] = x == 0 || y == 0 || x == benchCells-1 || y == benchCells-1 || (x*7+y*3)%11 == 0
		}
	}
	return walls
}

type flatGrid struct {
	cols     int
	cellSize float64
	walls    []bool
}

func newFlatGrid(walls [][]bool, cellSize float64) *flatGrid {
	g := &flatGrid{cols: len(walls[0]), cellSize: cellSize, walls: make([]bool, 0, len(walls)*len(walls[0]))}
	for _, row := range walls {
		g.walls = append(g.walls, row...)
	}
	return g
}

func (g *flatGrid) wallAt(x, y float64) bool {
	w := float64(g.cols) * g.cellSize
	h := float64(len(g.walls)/g.cols) * g.cellSize
	if !(x >= 0 && x < w && y >= 0 && y < h) {
		return true
	}
	return g.walls[int(y/g.cellSize)*g.cols+int(x/g.cellSize)]
}

func BenchmarkWallAt_Rows(b *testing.B) {
	g := NewGrid(benchWalls(), 32)
	limit := g.Width()
	hits := 0
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for d := 0.5; d < limit; d += 8 {
			if g.WallAt(d, d*0.75) {
				hits++
			}
		}
	}
	_ = hits
}

func BenchmarkWallAt_Flat(b *testing.B) {
	walls := benchWalls()
	g := newFlatGrid(walls, 32)
	limit := float64(benchCells) * 32
	hits := 0
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for d := 0.5; d < limit; d += 8 {
			if g.wallAt(d, d*0.75) {
				hits++
			}
		}
	}
	_ = hits
}

func TestFlatGridAgreesWithGrid(t *testing.T) {
	walls := benchWalls()
	g := NewGrid(walls, 32)
	f := newFlatGrid(walls, 32)

	for x := -16.0; x < g.Width()+16; x += 13 {
		for y := -16.0; y < g.Height()+16; y += 17 {
			if g.WallAt(x, y) != f.wallAt(x, y) {
				t.Fatalf("disagree at (%v, %v)", x, y)
			}
		}
	}
}
