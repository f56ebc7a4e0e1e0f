package mazepath

import "github.com/katalvlaran/mazepath/maze"

// walker holds the per-search BFS state that does not outlive PathSearch.
// Distances, parents and visited flags live on the Engine.
type walker struct {
	e      *Engine
	queue  []int // row-major indices, in discovery order
	head   int
	target int
	found  bool
	steps  int
}

// run seeds the queue with start and drains it. Traversal continues past the
// target so every room of the start's region gets its distance.
func (w *walker) run(start int) {
	w.enqueue(start, 0, -1)
	for w.head < len(w.queue) {
		cur := w.dequeue()
		depth := w.e.minSteps[cur]
		if cur == w.target && !w.found {
			w.found = true
			w.steps = depth
		}
		w.expand(cur, depth)
	}
}

// enqueue records the distance and parent of a newly discovered room,
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.e.minSteps[idx] = depth
	w.e.parent[idx] = parent
	w.e.opts.OnEnqueue(w.e.position(idx), depth)
	w.queue = append(w.queue, idx)
}

// dequeue pops the head room, marks it visited and calls OnDequeue.
func (w *walker) dequeue() int {
	idx := w.queue[w.head]
	w.head++
	w.e.visited[idx] = true
	w.e.opts.OnDequeue(w.e.position(idx), w.e.minSteps[idx])
	return idx
}

// expand enqueues every undiscovered room reachable in one move from cur,
// trying sides in the order of maze.Sides. A room is discovered at most once,
// so its first recorded distance is its shortest.
func (w *walker) expand(cur, depth int) {
	p := w.e.position(cur)
	for _, side := range maze.Sides {
		if !w.canGo(p, side) {
			continue
		}
		n := p.Step(side)
		ni := w.e.index(n.Row, n.Col)
		if w.e.visited[ni] || w.e.minSteps[ni] != unreached {
			continue
		}
		w.enqueue(ni, depth+1, cur)
	}
}

// canGo reports whether a move from p through side stays in the grid and is
// not blocked by p's own wall.
func (w *walker) canGo(p maze.Position, side maze.Side) bool {
	n := p.Step(side)
	if !w.e.inBounds(n.Row, n.Col) {
		return false
	}
	return !w.e.grid.HasWall(p.Row, p.Col, side)
}
