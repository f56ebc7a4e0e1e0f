package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/maze"
)

// PathMarker reports whether a room lies on the path to draw.
type PathMarker interface {
	OnPath(row, col int) bool
}

// PathChar is drawn in place of an on-path room.
const PathChar = '*'

// Lines returns the drawing of g, one byte slice per line, with on-path
// rooms replaced by PathChar. A nil marker draws no path.
func Lines(g maze.Grid, m PathMarker) [][]byte {
	canvas := maze.Canvas(g)
	if m == nil {
		return canvas
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if m.OnPath(r, c) {
				canvas[2*r+1][2*c+1] = PathChar
			}
		}
	}
	return canvas
}

// Text writes the drawing of g to w, one line per row of characters.
func Text(w io.Writer, g maze.Grid, m PathMarker) error {
	for _, line := range Lines(g, m) {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return fmt.Errorf("render: write: %w", err)
		}
	}
	return nil
}
