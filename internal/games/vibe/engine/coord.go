package engine

import "fmt"

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Scale multiplies both components by n.
func (c Coord) Scale(n int) Coord {
	return Coord{X: c.X * n, Y: c.Y * n}
}

// Dir is one of the four cardinal facings.
// The numeric order matches the random draw used for enemy facings.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// dirCount is the number of cardinal directions.
const dirCount = 4

// Delta returns the unit step for the direction.
func (d Dir) Delta() Coord {
	switch d {
	case DirUp:
		return C(0, -1)
	case DirRight:
		return C(1, 0)
	case DirDown:
		return C(0, 1)
	case DirLeft:
		return C(-1, 0)
	default:
		return C(0, 0)
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// blastRays are the ray directions walked by a detonation.
var blastRays = []Coord{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}
