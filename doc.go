// Package mazepath is the module root for shortest-path and reachability
// queries over rectangular mazes of rooms and walls.
//
// What is in the module?
//
//	maze/      - Grid, Side, Position; the immutable Maze, its '#'-art text
//	             format, connected regions and Wilson-generated perfect mazes
//	mazepath/  - Engine: Initialize, PathSearch and NumReachable over a Grid
//	             with a BFS that records distances and one shortest path
//	render/    - text and tcell drawings of a maze with its marked path
//	queryfile/ - HCL files describing batches of path queries
//	telemetry/ - OpenTelemetry tracer setup for the command line tool
//	cmd/mazesolve - the command line driver
//
// Quick ASCII example (4×4 sample, path from (0,0) to (3,3) marked '*'):
//
//	#########
//	#*  #   #
//	# # # # #
//	#*#   # #
//	# ##### #
//	#* * * *#
//	### ### #
//	#   #  *#
//	#########
//
// Usage:
//
//	m, _ := maze.ReadFile("maze-sample.txt")
//	e := mazepath.New()
//	_ = e.Initialize(m)
//	steps, ok, _ := e.PathSearch(0, 0, 3, 3) // 6, true
//	n, _ := e.NumReachable(4)                // 3
//	_ = render.Text(os.Stdout, m, e)
//
// Errors are package sentinels matched with errors.Is.
package mazepath
