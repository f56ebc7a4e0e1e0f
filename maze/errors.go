package maze

import "errors"

var (
	// ErrEmptyMaze indicates the maze has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMalformed indicates text input that does not describe a maze.
	ErrMalformed = errors.New("maze: malformed maze text")
	// ErrOutOfBounds indicates room coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: room coordinates out of bounds")
)
