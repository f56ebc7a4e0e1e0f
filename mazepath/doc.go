// Package mazepath computes shortest paths and exact-distance reachability
// counts in a maze.Grid with a reusable breadth-first search engine.
//
// What
//
//   - Engine binds to a read-only maze.Grid with Initialize.
//   - PathSearch runs one BFS from a start room and returns the number of
//     moves to a target room, or ok == false when it cannot be reached.
//   - Every room on one shortest path is marked; OnPath and Path expose the
//     marks to renderers.
//   - NumReachable(k) counts rooms whose shortest distance from the latest
//     start is exactly k.
//
// Movement
//
//	A move leaves a room through one of its four sides and is legal when the
//	neighbour is inside the grid and the room being left has no wall on that
//	side. The neighbour's own facing wall is not consulted.
//
// Determinism
//
//	Sides are expanded in the fixed order North, South, East, West. Among
//	shortest paths of equal length, the one retained is the first discovered
//	under that order, so repeated searches mark the same path.
//
// Full traversal
//
//	PathSearch never stops early at the target: BFS drains the whole region of
//	the start so that every reachable room has its distance recorded for
//	NumReachable.
//
// Complexity (R×C rooms)
//
//   - Initialize:   O(R×C) memory.
//   - PathSearch:   O(R×C) time; the queue is reused, only the marked path
//     is allocated.
//   - NumReachable: O(R×C) time.
//
// Usage
//
//	e := mazepath.New()
//	if err := e.Initialize(m); err != nil {
//		// ErrNilGrid
//	}
//	steps, ok, err := e.PathSearch(0, 0, 3, 3)
//	if err != nil {
//		// ErrUninitialized or ErrInvalidCoordinate
//	}
//	n, _ := e.NumReachable(2)
//
// Options
//
//   - WithLogger(l):     debug summary of each search.
//   - WithOnEnqueue(fn): hook when a room is discovered.
//   - WithOnDequeue(fn): hook when a room is expanded.
//
// Errors
//
//   - ErrUninitialized      if PathSearch or NumReachable runs before Initialize.
//   - ErrInvalidCoordinate  if a PathSearch coordinate is outside the grid.
//   - ErrNilGrid            if Initialize receives a nil grid.
//
// An Engine is not safe for concurrent use.
package mazepath
