package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single cell of the map
type Tile struct {
	Type TileType
}

// IsWall reports whether the tile blocks rays and movement
func (t Tile) IsWall() bool {
	return t.Type == TileWall
}

// Grid is the static tile map the viewer walks in.
// Tiles are row-major, indexed [row][col]; row 0 is the top of the map.
// A Grid is read-only once built and safe to share between goroutines.
type Grid struct {
	Rows     int
	Cols     int
	CellSize float64
	Tiles    [][]Tile
}

// NewGrid builds a grid from wall flags. Each row must have the same length.
func NewGrid(walls [][]bool, cellSize float64) *Grid {
	rows := len(walls)
	cols := 0
	if rows > 0 {
		cols = len(walls[0])
	}

	tiles := make([][]Tile, rows)
	for r := range walls {
		tiles[r] = make([]Tile, cols)
		for c := 0; c < cols && c < len(walls[r]); c++ {
			if walls[r][c] {
				tiles[r][c] = Tile{Type: TileWall}
			}
		}
	}

	return &Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Tiles:    tiles,
	}
}

// Width returns the map width in world units
func (g *Grid) Width() float64 {
	return float64(g.Cols) * g.CellSize
}

// Height returns the map height in world units
func (g *Grid) Height() float64 {
	return float64(g.Rows) * g.CellSize
}

// TileAt returns the tile at the given cell coordinates.
// Cells outside the map are walls.
func (g *Grid) TileAt(row, col int) Tile {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return Tile{Type: TileWall}
	}
	return g.Tiles[row][col]
}

// WallAt reports whether the world point (x, y) is inside a wall.
// Points outside [0, width) x [0, height) are walls, which is what keeps
// every ray search bounded. NaN coordinates also report a wall.
func (g *Grid) WallAt(x, y float64) bool {
	if !(x >= 0 && x < g.Width() && y >= 0 && y < g.Height()) {
		return true
	}
	return g.TileAt(int(y/g.CellSize), int(x/g.CellSize)).IsWall()
}
