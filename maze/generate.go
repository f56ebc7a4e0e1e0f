package maze

import (
	"math/rand"
	"time"
)

// Generate builds a rows×cols perfect maze (exactly one simple path between
// any two rooms) with Wilson's algorithm: loop-erased random walks from rooms
// outside the maze until they hit it, then carving the erased walk.
// The same rng seed always yields the same maze. A nil rng is seeded from
// the clock.
// Returns ErrEmptyMaze for non-positive dimensions.
func Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMaze
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := filled(rows, cols, Closed)
	total := rows * cols
	inMaze := make([]bool, total)
	// exit[i] is the side the current walk last left room i through
	exit := make([]Side, total)

	inMaze[rng.Intn(total)] = true
	added := 1
	for added < total {
		start := rng.Intn(total)
		for inMaze[start] {
			start = rng.Intn(total)
		}

		// walk until the maze is hit; revisits overwrite exit, erasing loops
		for cur := start; !inMaze[cur]; {
			s := m.randomSide(m.Position(cur), rng)
			exit[cur] = s
			n := m.Position(cur).Step(s)
			cur = m.Index(n.Row, n.Col)
		}

		// carve the loop-erased path
		for cur := start; !inMaze[cur]; {
			p := m.Position(cur)
			m.setWall(p, exit[cur], false)
			inMaze[cur] = true
			added++
			n := p.Step(exit[cur])
			cur = m.Index(n.Row, n.Col)
		}
	}

	return m, nil
}

// randomSide picks a side of p that leads to a room inside the grid.
func (m *Maze) randomSide(p Position, rng *rand.Rand) Side {
	var options [4]Side
	n := 0
	for _, s := range Sides {
		q := p.Step(s)
		if m.InBounds(q.Row, q.Col) {
			options[n] = s
			n++
		}
	}
	return options[rng.Intn(n)]
}
