package mazepath

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mazepath/maze"
)

// Engine answers shortest-path and reachability queries over one maze.Grid.
// The zero value and New return an engine that must be initialized first.
//
// Search state is stored in row-major slices of length rows×cols and is
// fully reset by every PathSearch.
type Engine struct {
	opts Options

	grid       maze.Grid
	rows, cols int

	visited  []bool
	minSteps []int
	parent   []int
	onPath   []bool
	path     []maze.Position
	queue    []int
}

// New returns an uninitialized Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Initialize binds the engine to g and allocates search state sized to it.
// Previous results are discarded. The grid itself is never modified.
// g's methods must be safe to call; a nil *maze.Maze reads as a 0×0 grid.
// Returns ErrNilGrid if g is nil.
func (e *Engine) Initialize(g maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if e.opts.Logger == nil {
		e.opts = DefaultOptions()
	}
	rows, cols := g.Rows(), g.Columns()
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	n := rows * cols

	e.grid = g
	e.rows, e.cols = rows, cols
	e.visited = make([]bool, n)
	e.minSteps = make([]int, n)
	e.parent = make([]int, n)
	e.onPath = make([]bool, n)
	e.queue = make([]int, 0, n)
	e.path = nil
	e.reset()

	return nil
}

// PathSearch resets the search state and runs one BFS from
// (startRow, startCol). It returns the number of moves on a shortest path to
// (endRow, endCol) with ok == true, or 0 and ok == false if the end room is
// unreachable. Rooms on the retained shortest path are marked for OnPath.
//
// Returns ErrUninitialized before Initialize and ErrInvalidCoordinate if any
// coordinate lies outside the grid; in both cases no state is changed.
func (e *Engine) PathSearch(startRow, startCol, endRow, endCol int) (steps int, ok bool, err error) {
	if e.grid == nil {
		return 0, false, ErrUninitialized
	}
	if !e.inBounds(startRow, startCol) || !e.inBounds(endRow, endCol) {
		return 0, false, fmt.Errorf("%w: start (%d,%d), end (%d,%d) in %dx%d grid",
			ErrInvalidCoordinate, startRow, startCol, endRow, endCol, e.rows, e.cols)
	}

	e.reset()
	w := walker{
		e:      e,
		queue:  e.queue[:0],
		target: e.index(endRow, endCol),
	}
	w.run(e.index(startRow, startCol))
	e.queue = w.queue[:0]
	if w.found {
		e.markPath(w.target)
	}

	if e.opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		e.opts.Logger.Debug("path search finished",
			"start", maze.Position{Row: startRow, Col: startCol}.String(),
			"end", maze.Position{Row: endRow, Col: endCol}.String(),
			"reached", w.found,
			"steps", w.steps,
			"explored", len(w.queue),
		)
	}
	return w.steps, w.found, nil
}

// NumReachable returns how many rooms have a shortest distance of exactly k
// moves from the start of the latest PathSearch. Before any search every room
// is unreached and the count is 0. Negative k always yields 0; unreached
// rooms are never counted.
// Returns ErrUninitialized before Initialize.
func (e *Engine) NumReachable(k int) (int, error) {
	if e.grid == nil {
		return 0, ErrUninitialized
	}
	if k < 0 {
		return 0, nil
	}
	n := 0
	for _, d := range e.minSteps {
		if d == k {
			n++
		}
	}
	return n, nil
}

// OnPath reports whether room (row, col) lies on the path marked by the
// latest PathSearch. It is false outside the grid and before Initialize.
func (e *Engine) OnPath(row, col int) bool {
	if !e.inBounds(row, col) {
		return false
	}
	return e.onPath[e.index(row, col)]
}

// Path returns a copy of the marked path from start to end, or nil if the
// latest search did not reach its end room or no search has run.
func (e *Engine) Path() []maze.Position {
	if e.path == nil {
		return nil
	}
	out := make([]maze.Position, len(e.path))
	copy(out, e.path)
	return out
}

// Steps returns the shortest distance recorded for room (row, col) by the
// latest PathSearch; ok is false if the room was not reached.
func (e *Engine) Steps(row, col int) (steps int, ok bool) {
	if !e.inBounds(row, col) {
		return 0, false
	}
	d := e.minSteps[e.index(row, col)]
	if d == unreached {
		return 0, false
	}
	return d, true
}

// Rows returns the row count of the bound grid, 0 before Initialize.
func (e *Engine) Rows() int { return e.rows }

// Columns returns the column count of the bound grid, 0 before Initialize.
func (e *Engine) Columns() int { return e.cols }

// reset clears visited flags, distances, parents and path marks.
func (e *Engine) reset() {
	for i := range e.minSteps {
		e.visited[i] = false
		e.minSteps[i] = unreached
		e.parent[i] = -1
		e.onPath[i] = false
	}
	e.path = nil
}

// markPath walks parent links back from target and marks every room on the
// way, storing the path in start → target order.
func (e *Engine) markPath(target int) {
	path := make([]maze.Position, 0, e.minSteps[target]+1)
	for at := target; at >= 0; at = e.parent[at] {
		e.onPath[at] = true
		path = append(path, e.position(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	e.path = path
}

// inBounds reports whether (row, col) addresses a room of the bound grid.
func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.rows && col >= 0 && col < e.cols
}

// index maps (row, col) to a row-major index.
func (e *Engine) index(row, col int) int {
	return row*e.cols + col
}

// position converts a row-major index back to a Position.
func (e *Engine) position(idx int) maze.Position {
	return maze.Position{Row: idx / e.cols, Col: idx % e.cols}
}
