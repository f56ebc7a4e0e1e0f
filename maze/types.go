// Package maze defines the grid abstraction, room and side types
// shared by the search engine and renderers.
package maze

import "fmt"

// Side names one of the four walls of a room.
type Side int

const (
	// North is the side facing row-1.
	North Side = iota
	// South is the side facing row+1.
	South
	// East is the side facing col+1.
	East
	// West is the side facing col-1.
	West
)

// Sides lists the four sides in the fixed order searches expand them.
var Sides = [4]Side{North, South, East, West}

// deltas holds the (row, col) offset of each side, indexed by Side.
var deltas = [4][2]int{
	{-1, 0}, // North
	{1, 0},  // South
	{0, 1},  // East
	{0, -1}, // West
}

// Delta returns the (row, col) offset of moving through side s.
func (s Side) Delta() (dr, dc int) {
	d := deltas[s]
	return d[0], d[1]
}

// Opposite returns the side facing s on the neighbouring room.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Grid is the read-only view of a maze consumed by searches.
// Implementations must not change while a search is running.
type Grid interface {
	// Rows returns the number of room rows.
	Rows() int
	// Columns returns the number of room columns.
	Columns() int
	// HasWall reports whether room (row, col) is walled on side.
	HasWall(row, col int, side Side) bool
}

// Position identifies a room by row and column.
type Position struct {
	Row, Col int
}

// Step returns the position adjacent to p through side s.
func (p Position) Step(s Side) Position {
	dr, dc := s.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Room holds the four wall flags of a single room.
type Room struct {
	North, South, East, West bool
}

// HasWall reports whether the room is walled on side s.
func (r Room) HasWall(s Side) bool {
	switch s {
	case North:
		return r.North
	case South:
		return r.South
	case East:
		return r.East
	case West:
		return r.West
	}
	return true
}

// with returns a copy of r with side s set to wall.
func (r Room) with(s Side, wall bool) Room {
	switch s {
	case North:
		r.North = wall
	case South:
		r.South = wall
	case East:
		r.East = wall
	case West:
		r.West = wall
	}
	return r
}

// Closed is a room walled on every side.
var Closed = Room{North: true, South: true, East: true, West: true}

// Maze is an immutable rectangular grid of rooms. It implements Grid.
// rooms is stored row-major: rooms[row*cols+col].
type Maze struct {
	rows, cols int
	rooms      []Room
}
