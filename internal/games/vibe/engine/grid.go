package engine

// Tile is the kind of a single arena cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileIndestructible
	TileDestructible
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileIndestructible:
		return "indestructible"
	case TileDestructible:
		return "destructible"
	default:
		return "unknown"
	}
}

// Grid is the arena as a rectangular grid of tiles.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Tile
}

// NewGrid creates a grid with every cell empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at c. Out-of-bounds cells read as indestructible.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return TileIndestructible
	}
	return g.Cells[g.index(c)]
}

// Set changes the tile at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == t {
			n++
		}
	}
	return n
}

// IsBorder reports whether c is on the outer ring.
func (g *Grid) IsBorder(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.W-1 || c.Y == g.H-1
}

// IsPillar reports whether c is an interior checkerboard pillar.
func IsPillar(c Coord) bool {
	return c.X%2 == 0 && c.Y%2 == 0
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
