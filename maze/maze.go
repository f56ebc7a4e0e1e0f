package maze

import "fmt"

// New constructs a Maze from a non-empty, rectangular 2D slice of rooms,
// where rooms[row][col] describes room (row, col).
// It deep-copies the input so later changes to rooms do not leak in.
// Returns ErrEmptyMaze if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(rooms [][]Room) (*Maze, error) {
	if len(rooms) == 0 || len(rooms[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	rows, cols := len(rooms), len(rooms[0])
	for _, row := range rooms {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	m := filled(rows, cols, Room{})
	for r := 0; r < rows; r++ {
		copy(m.rooms[r*cols:(r+1)*cols], rooms[r])
	}

	return m, nil
}

// Open returns a rows×cols maze with walls only along the outer boundary.
func Open(rows, cols int) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMaze
	}
	m := filled(rows, cols, Room{})
	for c := 0; c < cols; c++ {
		m.setWall(Position{0, c}, North, true)
		m.setWall(Position{rows - 1, c}, South, true)
	}
	for r := 0; r < rows; r++ {
		m.setWall(Position{r, 0}, West, true)
		m.setWall(Position{r, cols - 1}, East, true)
	}

	return m, nil
}

// filled allocates a rows×cols maze with every room set to room.
// Callers own the result until they return it.
func filled(rows, cols int, room Room) *Maze {
	rooms := make([]Room, rows*cols)
	for i := range rooms {
		rooms[i] = room
	}
	return &Maze{rows: rows, cols: cols, rooms: rooms}
}

// setWall sets side s of room p and the facing side of its neighbour, if any.
// Only used while a maze is still being built.
func (m *Maze) setWall(p Position, s Side, wall bool) {
	i := m.Index(p.Row, p.Col)
	m.rooms[i] = m.rooms[i].with(s, wall)
	n := p.Step(s)
	if m.InBounds(n.Row, n.Col) {
		j := m.Index(n.Row, n.Col)
		m.rooms[j] = m.rooms[j].with(s.Opposite(), wall)
	}
}

// Rows returns the number of room rows, 0 for a nil maze.
func (m *Maze) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Columns returns the number of room columns, 0 for a nil maze.
func (m *Maze) Columns() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// HasWall reports whether room (row, col) is walled on side.
// Rooms outside the grid report a wall on every side.
// Complexity: O(1).
func (m *Maze) HasWall(row, col int, side Side) bool {
	if !m.InBounds(row, col) {
		return true
	}
	return m.rooms[m.Index(row, col)].HasWall(side)
}

// Room returns the wall flags of room (row, col).
func (m *Maze) Room(row, col int) (Room, error) {
	if !m.InBounds(row, col) {
		return Room{}, fmt.Errorf("%w: (%d,%d) in %dx%d maze", ErrOutOfBounds, row, col, m.Rows(), m.Columns())
	}
	return m.rooms[m.Index(row, col)], nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows() && col >= 0 && col < m.Columns()
}

// Index maps (row, col) to a row-major index: row*Columns + col.
// Complexity: O(1).
func (m *Maze) Index(row, col int) int {
	return row*m.cols + col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (m *Maze) Position(idx int) Position {
	return Position{Row: idx / m.cols, Col: idx % m.cols}
}
