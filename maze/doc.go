// Package maze models a rectangular grid of rooms separated by optional walls,
// the read-only topology that path searches run over.
//
// What:
//
//   - Grid is the minimal read-only view a search needs: Rows, Columns and
//     HasWall(row, col, side) for the four sides North, South, East, West.
//   - Maze is the immutable Grid implementation, built from [][]Room,
//     parsed from the classic '#'-art maze files, or generated at random.
//   - Regions groups rooms into connected areas.
//
// Walls:
//
//	Each room owns four independent wall flags. A wall on one side of a room
//	need not be mirrored on the facing side of its neighbour; consumers that
//	move out of a room consult only that room's flag.
//
// Text format:
//
//	A maze of R×C rooms is 2R+1 lines of 2C+1 characters. '#' is a wall,
//	any other character is open. Room (r,c) sits at line 2r+1, column 2c+1:
//
//	    #####
//	    #   #      room (0,0) and (0,1), open between them
//	    # ###      room (1,0) open to the north, (1,1) walled
//	    #   #
//	    #####
//
// Complexity:
//
//   - New, Parse, MarshalText: O(R×C) time and memory.
//   - Regions:                 O(R×C×4) time, O(R×C) memory.
//   - Generate:                expected O(R×C×log(R×C)) steps of random walk.
//
// Errors:
//
//   - ErrEmptyMaze:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrMalformed:      text input that is not a valid maze drawing.
//   - ErrOutOfBounds:    room coordinates outside the grid.
package maze
